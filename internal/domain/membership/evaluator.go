package membership

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// pointsDivisor converts a sale amount into base loyalty points.
const pointsDivisor = 25

// Evaluation is the outcome of applying promotions to one sale.
type Evaluation struct {
	// PromotionID is the winning promotion, nil when nothing applied
	PromotionID *uuid.UUID
	// Discount is the monetary discount, rounded to the nearest whole unit
	Discount decimal.Decimal
	// Points is the final points the member earns for the sale
	Points int64
}

// BasePoints computes the points a sale amount earns before multipliers.
func BasePoints(amount decimal.Decimal) int64 {
	return amount.Div(decimal.NewFromInt(pointsDivisor)).Floor().IntPart()
}

// Evaluate applies the given promotions to a sale amount.
//
// Promotions are visited in the order the store returned them; no priority
// field exists. At most one discount applies: the first qualifying discount
// contributes its value rounded to the nearest whole unit and ends discount
// evaluation, but iteration continues so multipliers can still apply.
// Point multipliers do not compound: each qualifying multiplier recomputes
// the points from the base, so the last one wins, and its promotion id
// overwrites any previously recorded winner. Freebie promotions are
// recognized but contribute nothing; the giveaway total stays zero.
func Evaluate(promotions []Promotion, amount decimal.Decimal) Evaluation {
	basePoints := BasePoints(amount)
	result := Evaluation{
		Discount: decimal.Zero,
		Points:   basePoints,
	}

	discountApplied := false
	for i := range promotions {
		promo := &promotions[i]
		if !promo.Qualifies(amount) {
			continue
		}

		switch promo.Kind {
		case PromotionKindDiscount:
			if discountApplied {
				continue
			}
			result.Discount = promo.Value.Round(0)
			id := promo.ID
			result.PromotionID = &id
			discountApplied = true

		case PromotionKindPointMultiplier:
			result.Points = decimal.NewFromInt(basePoints).Mul(promo.Value).Floor().IntPart()
			id := promo.ID
			result.PromotionID = &id

		case PromotionKindFreebie:
			// no giveaway is recorded for freebies
		}
	}

	return result
}
