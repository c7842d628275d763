package sales

import (
	"time"

	"github.com/fuelstation/backend/internal/domain/sales"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine is one retail goods line within a sale
type CartLine struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
}

// CommitSaleRequest represents a sale to commit atomically.
// Fuel sales carry a dispenser, product and liters; pure-goods sales
// carry only cart lines.
type CommitSaleRequest struct {
	ShiftID        *uuid.UUID      `json:"shift_id"`
	DispenserID    *uuid.UUID      `json:"dispenser_id"`
	ProductID      *uuid.UUID      `json:"product_id"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Liters         decimal.Decimal `json:"liters"`
	PaymentType    string          `json:"payment_type" binding:"required,oneof=cash card transfer"`
	MemberID       *uuid.UUID      `json:"member_id"`
	Cart           []CartLine      `json:"cart"`
	ReceivedAmount decimal.Decimal `json:"received_amount"`
}

// CommitSaleResponse is returned after a successful commit
type CommitSaleResponse struct {
	TransactionID uuid.UUID       `json:"transaction_id"`
	PointsEarned  int64           `json:"points_earned"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
	ChangeAmount  decimal.Decimal `json:"change_amount"`
}

// TransactionResponse represents a committed transaction in API responses
type TransactionResponse struct {
	ID             uuid.UUID       `json:"id"`
	ShiftID        *uuid.UUID      `json:"shift_id"`
	DispenserID    *uuid.UUID      `json:"dispenser_id"`
	ProductID      *uuid.UUID      `json:"product_id"`
	Amount         decimal.Decimal `json:"amount"`
	Liters         decimal.Decimal `json:"liters"`
	PaymentType    string          `json:"payment_type"`
	Status         string          `json:"status"`
	MemberID       *uuid.UUID      `json:"member_id"`
	ReceivedAmount decimal.Decimal `json:"received_amount"`
	ChangeAmount   decimal.Decimal `json:"change_amount"`
	PromotionID    *uuid.UUID      `json:"promotion_id"`
	TotalDiscount  decimal.Decimal `json:"total_discount"`
	PointsEarned   int64           `json:"points_earned"`
	StartMeter     decimal.Decimal `json:"start_meter"`
	EndMeter       decimal.Decimal `json:"end_meter"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ToTransactionResponse converts a domain transaction to a response DTO
func ToTransactionResponse(tx *sales.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:             tx.ID,
		ShiftID:        tx.ShiftID,
		DispenserID:    tx.DispenserID,
		ProductID:      tx.ProductID,
		Amount:         tx.Amount,
		Liters:         tx.Liters,
		PaymentType:    string(tx.PaymentType),
		Status:         string(tx.Status),
		MemberID:       tx.MemberID,
		ReceivedAmount: tx.ReceivedAmount,
		ChangeAmount:   tx.ChangeAmount,
		PromotionID:    tx.PromotionID,
		TotalDiscount:  tx.TotalDiscount,
		PointsEarned:   tx.PointsEarned,
		StartMeter:     tx.StartMeter,
		EndMeter:       tx.EndMeter,
		CreatedAt:      tx.CreatedAt,
	}
}

// OpenShiftRequest opens a new cashier shift
type OpenShiftRequest struct {
	CashierName string `json:"cashier_name" binding:"required"`
}

// CloseShiftRequest closes the current shift
type CloseShiftRequest struct {
	Notes string `json:"notes"`
}

// ShiftResponse represents a shift in API responses
type ShiftResponse struct {
	ID          uuid.UUID  `json:"id"`
	CashierName string     `json:"cashier_name"`
	Status      string     `json:"status"`
	OpenedAt    time.Time  `json:"opened_at"`
	ClosedAt    *time.Time `json:"closed_at"`
	Notes       string     `json:"notes"`
}

// ToShiftResponse converts a domain shift to a response DTO
func ToShiftResponse(shift *sales.Shift) ShiftResponse {
	return ShiftResponse{
		ID:          shift.ID,
		CashierName: shift.CashierName,
		Status:      string(shift.Status),
		OpenedAt:    shift.OpenedAt,
		ClosedAt:    shift.ClosedAt,
		Notes:       shift.Notes,
	}
}
