package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/fuelstation/backend/internal/domain/membership"
	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPromotion(t *testing.T, repo *GormPromotionRepository, name string, productID *uuid.UUID, start, end time.Time, active bool) *membership.Promotion {
	t.Helper()

	promo, err := membership.NewPromotion(
		name,
		membership.PromotionKindDiscount,
		decimal.NewFromInt(100),
		decimal.NewFromInt(10),
		productID,
		start,
		end,
	)
	require.NoError(t, err)
	promo.Active = active
	require.NoError(t, repo.Save(context.Background(), promo))
	return promo
}

func TestGormPromotionRepository_FindActiveForProduct(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPromotionRepository(db)
	ctx := context.Background()

	now := time.Now()
	fuelID := uuid.New()
	goodsID := uuid.New()

	unscoped := seedPromotion(t, repo, "all products", nil, now.Add(-time.Hour), now.Add(time.Hour), true)
	fuelOnly := seedPromotion(t, repo, "fuel only", &fuelID, now.Add(-time.Hour), now.Add(time.Hour), true)
	seedPromotion(t, repo, "other product", &goodsID, now.Add(-time.Hour), now.Add(time.Hour), true)
	seedPromotion(t, repo, "expired", nil, now.Add(-48*time.Hour), now.Add(-24*time.Hour), true)
	seedPromotion(t, repo, "disabled", nil, now.Add(-time.Hour), now.Add(time.Hour), false)

	t.Run("with product returns scoped and unscoped promotions", func(t *testing.T) {
		promotions, err := repo.FindActiveForProduct(ctx, now, &fuelID)
		require.NoError(t, err)
		require.Len(t, promotions, 2)

		ids := []uuid.UUID{promotions[0].ID, promotions[1].ID}
		assert.Contains(t, ids, unscoped.ID)
		assert.Contains(t, ids, fuelOnly.ID)
	})

	t.Run("without product returns only unscoped promotions", func(t *testing.T) {
		promotions, err := repo.FindActiveForProduct(ctx, now, nil)
		require.NoError(t, err)
		require.Len(t, promotions, 1)
		assert.Equal(t, unscoped.ID, promotions[0].ID)
	})

	t.Run("instant outside the window excludes the promotion", func(t *testing.T) {
		promotions, err := repo.FindActiveForProduct(ctx, now.Add(48*time.Hour), nil)
		require.NoError(t, err)
		assert.Empty(t, promotions)
	})
}

func TestGormPromotionRepository_FindActive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPromotionRepository(db)
	ctx := context.Background()

	now := time.Now()
	fuelID := uuid.New()

	unscoped := seedPromotion(t, repo, "all products", nil, now.Add(-time.Hour), now.Add(time.Hour), true)
	fuelOnly := seedPromotion(t, repo, "fuel only", &fuelID, now.Add(-time.Hour), now.Add(time.Hour), true)
	seedPromotion(t, repo, "expired", nil, now.Add(-48*time.Hour), now.Add(-24*time.Hour), true)
	seedPromotion(t, repo, "disabled", &fuelID, now.Add(-time.Hour), now.Add(time.Hour), false)

	promotions, err := repo.FindActive(ctx, now)
	require.NoError(t, err)
	require.Len(t, promotions, 2)

	ids := []uuid.UUID{promotions[0].ID, promotions[1].ID}
	assert.Contains(t, ids, unscoped.ID)
	assert.Contains(t, ids, fuelOnly.ID)
}

func TestGormPromotionRepository_FindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPromotionRepository(db)
	ctx := context.Background()

	now := time.Now()
	promo := seedPromotion(t, repo, "lookup", nil, now, now.Add(time.Hour), true)

	found, err := repo.FindByID(ctx, promo.ID)
	require.NoError(t, err)
	assert.Equal(t, "lookup", found.Name)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
