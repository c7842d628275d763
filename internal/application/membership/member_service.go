package membership

import (
	"context"
	"errors"

	"github.com/fuelstation/backend/internal/domain/membership"
	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MemberService manages loyalty members
type MemberService struct {
	memberRepo membership.MemberRepository
}

// NewMemberService creates a new MemberService
func NewMemberService(memberRepo membership.MemberRepository) *MemberService {
	return &MemberService{memberRepo: memberRepo}
}

// CreateMember registers a new member. Phone numbers are unique.
func (s *MemberService) CreateMember(ctx context.Context, req CreateMemberRequest) (*MemberResponse, error) {
	existing, err := s.memberRepo.FindByPhone(ctx, req.Phone)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("DUPLICATE_PHONE", "A member with this phone already exists")
	}

	member, err := membership.NewMember(req.Name, req.Phone)
	if err != nil {
		return nil, err
	}
	if err := s.memberRepo.Save(ctx, member); err != nil {
		return nil, err
	}

	resp := ToMemberResponse(member)
	return &resp, nil
}

// GetMember returns a member by id
func (s *MemberService) GetMember(ctx context.Context, id uuid.UUID) (*MemberResponse, error) {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToMemberResponse(member)
	return &resp, nil
}

// GetMemberByPhone looks a member up by phone number
func (s *MemberService) GetMemberByPhone(ctx context.Context, phone string) (*MemberResponse, error) {
	member, err := s.memberRepo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	resp := ToMemberResponse(member)
	return &resp, nil
}
