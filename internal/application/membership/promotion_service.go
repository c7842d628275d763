package membership

import (
	"context"
	"time"

	"github.com/fuelstation/backend/internal/domain/membership"
	"github.com/fuelstation/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// PromotionService manages promotions. Read queries for the currently
// active list go through the cache; writes invalidate it.
type PromotionService struct {
	promotionRepo membership.PromotionRepository
	cache         membership.PromotionCache
	logger        *zap.Logger
}

// NewPromotionService creates a new PromotionService
func NewPromotionService(promotionRepo membership.PromotionRepository, cache membership.PromotionCache, logger *zap.Logger) *PromotionService {
	return &PromotionService{
		promotionRepo: promotionRepo,
		cache:         cache,
		logger:        logger,
	}
}

// CreatePromotion registers a new promotion and invalidates the cached
// active list
func (s *PromotionService) CreatePromotion(ctx context.Context, req CreatePromotionRequest) (*PromotionResponse, error) {
	promotion, err := membership.NewPromotion(
		req.Name,
		membership.PromotionKind(req.Kind),
		req.ConditionAmount,
		req.Value,
		req.ProductID,
		req.StartDate,
		req.EndDate,
	)
	if err != nil {
		return nil, err
	}
	if err := s.promotionRepo.Save(ctx, promotion); err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("failed to invalidate promotion cache", zap.Error(err))
	}

	resp := ToPromotionResponse(promotion)
	return &resp, nil
}

// ListActivePromotions returns every promotion currently in its active
// window, unscoped or scoped to any product. Served from cache when warm.
func (s *PromotionService) ListActivePromotions(ctx context.Context) ([]PromotionResponse, error) {
	promotions, err := s.cache.GetActive(ctx)
	if err != nil {
		s.logger.Warn("promotion cache read failed, falling back to store", zap.Error(err))
	}
	if promotions == nil {
		promotions, err = s.promotionRepo.FindActive(ctx, time.Now())
		if err != nil {
			return nil, err
		}
		if cacheErr := s.cache.SetActive(ctx, promotions, membership.DefaultActivePromotionTTL); cacheErr != nil {
			s.logger.Warn("failed to cache active promotions", zap.Error(cacheErr))
		}
	}

	responses := make([]PromotionResponse, 0, len(promotions))
	for i := range promotions {
		responses = append(responses, ToPromotionResponse(&promotions[i]))
	}
	return responses, nil
}

// ListPromotions returns all promotions matching the filter
func (s *PromotionService) ListPromotions(ctx context.Context, filter shared.Filter) ([]PromotionResponse, error) {
	promotions, err := s.promotionRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]PromotionResponse, 0, len(promotions))
	for i := range promotions {
		responses = append(responses, ToPromotionResponse(&promotions[i]))
	}
	return responses, nil
}
