package membership

import (
	"context"
	"errors"
	"testing"

	"github.com/fuelstation/backend/internal/domain/membership"
	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMemberRepository is a mock implementation of membership.MemberRepository
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) FindByID(ctx context.Context, id uuid.UUID) (*membership.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Member), args.Error(1)
}

func (m *MockMemberRepository) FindByPhone(ctx context.Context, phone string) (*membership.Member, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Member), args.Error(1)
}

func (m *MockMemberRepository) Save(ctx context.Context, member *membership.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) SaveWithLock(ctx context.Context, member *membership.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func TestCreateMember(t *testing.T) {
	ctx := context.Background()

	t.Run("creates member", func(t *testing.T) {
		repo := new(MockMemberRepository)
		service := NewMemberService(repo)

		repo.On("FindByPhone", ctx, "0901234567").Return(nil, shared.ErrNotFound)
		repo.On("Save", ctx, mock.AnythingOfType("*membership.Member")).Return(nil)

		resp, err := service.CreateMember(ctx, CreateMemberRequest{Name: "Alice", Phone: "0901234567"})
		require.NoError(t, err)
		assert.Equal(t, "Alice", resp.Name)
		assert.Equal(t, int64(0), resp.Points)
	})

	t.Run("duplicate phone rejected", func(t *testing.T) {
		repo := new(MockMemberRepository)
		service := NewMemberService(repo)

		existing, err := membership.NewMember("Bob", "0901234567")
		require.NoError(t, err)
		repo.On("FindByPhone", ctx, "0901234567").Return(existing, nil)

		_, err = service.CreateMember(ctx, CreateMemberRequest{Name: "Alice", Phone: "0901234567"})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "DUPLICATE_PHONE", domainErr.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
