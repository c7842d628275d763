package sales

import (
	"context"
	"errors"
	"time"

	"github.com/fuelstation/backend/internal/domain/membership"
	"github.com/fuelstation/backend/internal/domain/sales"
	"github.com/fuelstation/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CommitService is the transaction commit engine. A sale is committed as one
// atomic unit: promotion evaluation and member points, retail stock
// deduction, nozzle meter advance, tank depletion with a reading, and the
// immutable transaction row. Either every effect lands or none do.
type CommitService struct {
	scope  TransactionScope
	logger *zap.Logger
}

// NewCommitService creates a new CommitService
func NewCommitService(scope TransactionScope, logger *zap.Logger) *CommitService {
	return &CommitService{
		scope:  scope,
		logger: logger,
	}
}

// Commit applies the sale inside one transactional scope and returns the
// transaction id and points earned. Any failing step rolls back every effect.
func (s *CommitService) Commit(ctx context.Context, req CommitSaleRequest) (*CommitSaleResponse, error) {
	if req.Amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Sale amount cannot be negative")
	}
	if req.Liters.IsNegative() {
		return nil, shared.NewDomainError("INVALID_LITERS", "Sale liters cannot be negative")
	}

	var resp *CommitSaleResponse
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		record := sales.TransactionRecord{
			ShiftID:        req.ShiftID,
			DispenserID:    req.DispenserID,
			ProductID:      req.ProductID,
			Amount:         req.Amount,
			Liters:         req.Liters,
			PaymentType:    sales.PaymentType(req.PaymentType),
			ReceivedAmount: req.ReceivedAmount,
		}

		if err := s.applyLoyalty(ctx, repos, req, &record); err != nil {
			return err
		}
		if err := s.deductCartStock(ctx, repos, req); err != nil {
			return err
		}
		if err := s.advanceMeterAndTank(ctx, repos, req, &record); err != nil {
			return err
		}

		tx, err := sales.NewTransaction(record)
		if err != nil {
			return err
		}
		if err := repos.TransactionRepo().Create(ctx, tx); err != nil {
			return err
		}

		resp = &CommitSaleResponse{
			TransactionID: tx.ID,
			PointsEarned:  tx.PointsEarned,
			TotalDiscount: tx.TotalDiscount,
			ChangeAmount:  tx.ChangeAmount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// applyLoyalty resolves the member, evaluates promotions and credits points.
// A sale naming an unknown member is still committed, just without loyalty
// effects.
func (s *CommitService) applyLoyalty(ctx context.Context, repos TransactionalRepositories, req CommitSaleRequest, record *sales.TransactionRecord) error {
	if req.MemberID == nil {
		return nil
	}

	member, err := repos.MemberRepo().FindByID(ctx, *req.MemberID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("sale references unknown member, skipping loyalty",
				zap.String("member_id", req.MemberID.String()))
			return nil
		}
		return err
	}

	promotions, err := repos.PromotionRepo().FindActiveForProduct(ctx, time.Now(), req.ProductID)
	if err != nil {
		return err
	}

	evaluation := membership.Evaluate(promotions, req.Amount)
	if err := member.EarnPoints(evaluation.Points); err != nil {
		return err
	}
	if err := repos.MemberRepo().SaveWithLock(ctx, member); err != nil {
		return err
	}

	record.MemberID = &member.ID
	record.PromotionID = evaluation.PromotionID
	record.TotalDiscount = evaluation.Discount
	record.PointsEarned = evaluation.Points
	return nil
}

// deductCartStock decrements stock for every goods line in the cart.
// Zero-quantity lines are skipped. Stock has no lower bound; dropping below
// zero is tolerated and surfaced through the log.
func (s *CommitService) deductCartStock(ctx context.Context, repos TransactionalRepositories, req CommitSaleRequest) error {
	for _, line := range req.Cart {
		if line.Quantity.IsNegative() {
			return shared.NewDomainError("INVALID_QUANTITY", "Cart line quantity cannot be negative")
		}
		if line.Quantity.IsZero() {
			continue
		}

		product, err := repos.ProductRepo().FindByID(ctx, line.ProductID)
		if err != nil {
			return err
		}
		if !product.IsGoods() {
			continue
		}

		newLevel, err := product.DeductStock(line.Quantity)
		if err != nil {
			return err
		}
		if newLevel.IsNegative() {
			s.logger.Warn("product stock below zero after sale",
				zap.String("product_id", product.ID.String()),
				zap.String("product_name", product.Name),
				zap.String("stock_quantity", newLevel.String()))
		}
		if err := repos.ProductRepo().SaveWithLock(ctx, product); err != nil {
			return err
		}
	}
	return nil
}

// advanceMeterAndTank locates the nozzle serving the dispenser/product pair,
// advances its meter and depletes the assigned tank. Exactly one nozzle may
// serve the pair; zero or several is an error.
func (s *CommitService) advanceMeterAndTank(ctx context.Context, repos TransactionalRepositories, req CommitSaleRequest, record *sales.TransactionRecord) error {
	if req.DispenserID == nil || req.ProductID == nil {
		return nil
	}

	nozzles, err := repos.NozzleRepo().FindByDispenserAndProduct(ctx, *req.DispenserID, *req.ProductID)
	if err != nil {
		return err
	}
	switch {
	case len(nozzles) == 0:
		return shared.NewDomainError("NOZZLE_NOT_FOUND", "No nozzle serves this dispenser and product")
	case len(nozzles) > 1:
		return shared.NewDomainError("AMBIGUOUS_NOZZLE", "Multiple nozzles serve this dispenser and product")
	}

	nozzle := &nozzles[0]
	snapshot, err := nozzle.Advance(req.Liters)
	if err != nil {
		return err
	}
	if err := repos.NozzleRepo().SaveWithLock(ctx, nozzle); err != nil {
		return err
	}
	record.StartMeter = snapshot.StartMeter
	record.EndMeter = snapshot.EndMeter

	if nozzle.TankID == nil {
		return nil
	}

	tank, err := repos.TankRepo().FindByID(ctx, *nozzle.TankID)
	if err != nil {
		return err
	}
	if err := tank.Dispense(req.Liters); err != nil {
		return err
	}
	if tank.IsDepleted() {
		s.logger.Warn("tank volume below zero after sale",
			zap.String("tank_id", tank.ID.String()),
			zap.String("tank_name", tank.Name),
			zap.String("current_volume", tank.CurrentVolume.String()))
	}
	if err := repos.TankRepo().SaveWithLock(ctx, tank); err != nil {
		return err
	}
	return repos.TankReadingRepo().Append(ctx, tank.NewReading())
}
