package sales

import (
	"context"
	"errors"

	"github.com/fuelstation/backend/internal/domain/sales"
	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ShiftService manages cashier shifts
type ShiftService struct {
	shiftRepo       sales.ShiftRepository
	transactionRepo sales.TransactionRepository
}

// NewShiftService creates a new ShiftService
func NewShiftService(shiftRepo sales.ShiftRepository, transactionRepo sales.TransactionRepository) *ShiftService {
	return &ShiftService{
		shiftRepo:       shiftRepo,
		transactionRepo: transactionRepo,
	}
}

// OpenShift opens a new shift. At most one shift may be open at a time.
func (s *ShiftService) OpenShift(ctx context.Context, req OpenShiftRequest) (*ShiftResponse, error) {
	existing, err := s.shiftRepo.FindOpen(ctx)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("DUPLICATE_OPEN_SHIFT", "A shift is already open")
	}

	shift, err := sales.OpenShift(req.CashierName)
	if err != nil {
		return nil, err
	}
	if err := s.shiftRepo.Save(ctx, shift); err != nil {
		return nil, err
	}

	resp := ToShiftResponse(shift)
	return &resp, nil
}

// CloseShift closes the given shift
func (s *ShiftService) CloseShift(ctx context.Context, shiftID uuid.UUID, req CloseShiftRequest) (*ShiftResponse, error) {
	shift, err := s.shiftRepo.FindByID(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	if err := shift.Close(req.Notes); err != nil {
		return nil, err
	}
	if err := s.shiftRepo.SaveWithLock(ctx, shift); err != nil {
		return nil, err
	}

	resp := ToShiftResponse(shift)
	return &resp, nil
}

// GetShift returns a shift by id
func (s *ShiftService) GetShift(ctx context.Context, shiftID uuid.UUID) (*ShiftResponse, error) {
	shift, err := s.shiftRepo.FindByID(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	resp := ToShiftResponse(shift)
	return &resp, nil
}

// ListShifts returns shifts matching the filter with the total count
func (s *ShiftService) ListShifts(ctx context.Context, filter shared.Filter) ([]ShiftResponse, int64, error) {
	shifts, count, err := s.shiftRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ShiftResponse, 0, len(shifts))
	for _, shift := range shifts {
		responses = append(responses, ToShiftResponse(shift))
	}
	return responses, count, nil
}

// GetTransaction returns a committed transaction by id
func (s *ShiftService) GetTransaction(ctx context.Context, id uuid.UUID) (*TransactionResponse, error) {
	transaction, err := s.transactionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToTransactionResponse(transaction)
	return &resp, nil
}

// ListTransactions returns transactions matching the filter with the total count
func (s *ShiftService) ListTransactions(ctx context.Context, filter shared.Filter) ([]TransactionResponse, int64, error) {
	transactions, count, err := s.transactionRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		responses = append(responses, ToTransactionResponse(tx))
	}
	return responses, count, nil
}

// ListShiftTransactions returns every transaction committed during a shift
func (s *ShiftService) ListShiftTransactions(ctx context.Context, shiftID uuid.UUID) ([]TransactionResponse, error) {
	if _, err := s.shiftRepo.FindByID(ctx, shiftID); err != nil {
		return nil, err
	}
	transactions, err := s.transactionRepo.FindByShift(ctx, shiftID)
	if err != nil {
		return nil, err
	}

	responses := make([]TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		responses = append(responses, ToTransactionResponse(tx))
	}
	return responses, nil
}
