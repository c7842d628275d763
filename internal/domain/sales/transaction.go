package sales

import (
	"time"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentType represents how a sale was paid
type PaymentType string

const (
	PaymentTypeCash     PaymentType = "cash"
	PaymentTypeCard     PaymentType = "card"
	PaymentTypeTransfer PaymentType = "transfer"
)

// IsValid checks if the payment type is known
func (p PaymentType) IsValid() bool {
	switch p {
	case PaymentTypeCash, PaymentTypeCard, PaymentTypeTransfer:
		return true
	}
	return false
}

// TransactionStatus represents the final state of a committed sale
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusVoided    TransactionStatus = "voided"
)

// Transaction is the immutable record of one committed sale. It is written
// exactly once, inside the same transactional scope as the meter, tank, stock
// and member updates it describes; corrections are not modeled.
type Transaction struct {
	ID             uuid.UUID         `gorm:"type:uuid;primary_key"`
	ShiftID        *uuid.UUID        `gorm:"type:uuid;index"`
	DispenserID    *uuid.UUID        `gorm:"type:uuid;index"`
	ProductID      *uuid.UUID        `gorm:"type:uuid;index"`
	Amount         decimal.Decimal   `gorm:"type:decimal(18,4);not null"`
	Liters         decimal.Decimal   `gorm:"type:decimal(18,4);not null;default:0"`
	PaymentType    PaymentType       `gorm:"type:varchar(20);not null"`
	Status         TransactionStatus `gorm:"type:varchar(20);not null;default:'completed'"`
	MemberID       *uuid.UUID        `gorm:"type:uuid;index"`
	ReceivedAmount decimal.Decimal   `gorm:"type:decimal(18,4);not null;default:0"`
	ChangeAmount   decimal.Decimal   `gorm:"type:decimal(18,4);not null;default:0"`
	PromotionID    *uuid.UUID        `gorm:"type:uuid"`
	TotalDiscount  decimal.Decimal   `gorm:"type:decimal(18,4);not null;default:0"`
	TotalGiveaway  decimal.Decimal   `gorm:"type:decimal(18,4);not null;default:0"`
	PointsEarned   int64             `gorm:"not null;default:0"`
	StartMeter     decimal.Decimal   `gorm:"type:decimal(18,4);not null;default:0"`
	EndMeter       decimal.Decimal   `gorm:"type:decimal(18,4);not null;default:0"`
	CreatedAt      time.Time         `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (Transaction) TableName() string {
	return "transactions"
}

// TransactionRecord carries everything the commit engine resolved for a sale.
type TransactionRecord struct {
	ShiftID        *uuid.UUID
	DispenserID    *uuid.UUID
	ProductID      *uuid.UUID
	Amount         decimal.Decimal
	Liters         decimal.Decimal
	PaymentType    PaymentType
	MemberID       *uuid.UUID
	ReceivedAmount decimal.Decimal
	PromotionID    *uuid.UUID
	TotalDiscount  decimal.Decimal
	PointsEarned   int64
	StartMeter     decimal.Decimal
	EndMeter       decimal.Decimal
}

// NewTransaction builds the immutable row for a committed sale.
// The change amount is derived from the received amount; the giveaway total
// is carried for schema compatibility and is always zero.
func NewTransaction(record TransactionRecord) (*Transaction, error) {
	if record.Amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Sale amount cannot be negative")
	}
	if !record.PaymentType.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_TYPE", "Unknown payment type")
	}
	if record.EndMeter.LessThan(record.StartMeter) {
		return nil, shared.NewDomainError("INVALID_METER", "End meter cannot precede start meter")
	}

	change := decimal.Zero
	if record.ReceivedAmount.GreaterThan(record.Amount) {
		change = record.ReceivedAmount.Sub(record.Amount)
	}

	return &Transaction{
		ID:             uuid.New(),
		ShiftID:        record.ShiftID,
		DispenserID:    record.DispenserID,
		ProductID:      record.ProductID,
		Amount:         record.Amount,
		Liters:         record.Liters,
		PaymentType:    record.PaymentType,
		Status:         TransactionStatusCompleted,
		MemberID:       record.MemberID,
		ReceivedAmount: record.ReceivedAmount,
		ChangeAmount:   change,
		PromotionID:    record.PromotionID,
		TotalDiscount:  record.TotalDiscount,
		TotalGiveaway:  decimal.Zero,
		PointsEarned:   record.PointsEarned,
		StartMeter:     record.StartMeter,
		EndMeter:       record.EndMeter,
		CreatedAt:      time.Now(),
	}, nil
}
