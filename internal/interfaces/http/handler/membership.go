package handler

import (
	membershipapp "github.com/fuelstation/backend/internal/application/membership"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MembershipHandler handles members and promotions
type MembershipHandler struct {
	BaseHandler
	memberService    *membershipapp.MemberService
	promotionService *membershipapp.PromotionService
}

// NewMembershipHandler creates a new MembershipHandler
func NewMembershipHandler(memberService *membershipapp.MemberService, promotionService *membershipapp.PromotionService) *MembershipHandler {
	return &MembershipHandler{
		memberService:    memberService,
		promotionService: promotionService,
	}
}

// CreateMember enrolls a new member
func (h *MembershipHandler) CreateMember(c *gin.Context) {
	var req membershipapp.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	member, err := h.memberService.CreateMember(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, member)
}

// GetMember returns a member by ID
func (h *MembershipHandler) GetMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid member ID format")
		return
	}

	member, err := h.memberService.GetMember(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, member)
}

// GetMemberByPhone looks up a member by phone number
func (h *MembershipHandler) GetMemberByPhone(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		h.BadRequest(c, "phone query parameter is required")
		return
	}

	member, err := h.memberService.GetMemberByPhone(c.Request.Context(), phone)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, member)
}

// CreatePromotion creates a promotion rule
func (h *MembershipHandler) CreatePromotion(c *gin.Context) {
	var req membershipapp.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	promotion, err := h.promotionService.CreatePromotion(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, promotion)
}

// ListActivePromotions lists promotions currently in effect
func (h *MembershipHandler) ListActivePromotions(c *gin.Context) {
	promotions, err := h.promotionService.ListActivePromotions(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, promotions)
}

// ListPromotions lists all promotions
func (h *MembershipHandler) ListPromotions(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	promotions, err := h.promotionService.ListPromotions(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, promotions)
}

// RegisterRoutes registers all membership routes
func (h *MembershipHandler) RegisterRoutes(rg *gin.RouterGroup) {
	members := rg.Group("/members")
	{
		members.POST("", h.CreateMember)
		members.GET("/lookup", h.GetMemberByPhone)
		members.GET("/:id", h.GetMember)
	}

	promotions := rg.Group("/promotions")
	{
		promotions.POST("", h.CreatePromotion)
		promotions.GET("", h.ListPromotions)
		promotions.GET("/active", h.ListActivePromotions)
	}
}
