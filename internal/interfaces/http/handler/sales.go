package handler

import (
	salesapp "github.com/fuelstation/backend/internal/application/sales"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SalesHandler handles sale commits, transactions and shifts
type SalesHandler struct {
	BaseHandler
	commitService *salesapp.CommitService
	shiftService  *salesapp.ShiftService
}

// NewSalesHandler creates a new SalesHandler
func NewSalesHandler(commitService *salesapp.CommitService, shiftService *salesapp.ShiftService) *SalesHandler {
	return &SalesHandler{
		commitService: commitService,
		shiftService:  shiftService,
	}
}

// CommitSale commits a sale atomically: loyalty, stock, meters, tank and
// the transaction row all move together or not at all.
func (h *SalesHandler) CommitSale(c *gin.Context) {
	var req salesapp.CommitSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.commitService.Commit(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// GetTransaction returns a single committed transaction
func (h *SalesHandler) GetTransaction(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid transaction ID format")
		return
	}

	transaction, err := h.shiftService.GetTransaction(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, transaction)
}

// ListTransactions lists committed transactions with pagination
func (h *SalesHandler) ListTransactions(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if v := c.Query("shift_id"); v != "" {
		filter.Filters["shift_id"] = v
	}
	if v := c.Query("product_id"); v != "" {
		filter.Filters["product_id"] = v
	}
	if v := c.Query("payment_type"); v != "" {
		filter.Filters["payment_type"] = v
	}

	transactions, total, err := h.shiftService.ListTransactions(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, transactions, total, filter.Page, filter.PageSize)
}

// OpenShift opens a new cashier shift
func (h *SalesHandler) OpenShift(c *gin.Context) {
	var req salesapp.OpenShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	shift, err := h.shiftService.OpenShift(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, shift)
}

// CloseShift closes a shift
func (h *SalesHandler) CloseShift(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid shift ID format")
		return
	}

	var req salesapp.CloseShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	shift, err := h.shiftService.CloseShift(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, shift)
}

// GetShift returns a shift by ID
func (h *SalesHandler) GetShift(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid shift ID format")
		return
	}

	shift, err := h.shiftService.GetShift(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, shift)
}

// ListShifts lists shifts with pagination
func (h *SalesHandler) ListShifts(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if v := c.Query("status"); v != "" {
		filter.Filters["status"] = v
	}

	shifts, total, err := h.shiftService.ListShifts(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, shifts, total, filter.Page, filter.PageSize)
}

// ListShiftTransactions returns every transaction committed during a shift
func (h *SalesHandler) ListShiftTransactions(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid shift ID format")
		return
	}

	transactions, err := h.shiftService.ListShiftTransactions(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, transactions)
}

// RegisterRoutes registers all sales routes
func (h *SalesHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sales := rg.Group("/sales")
	{
		sales.POST("/commit", h.CommitSale)
	}

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.ListTransactions)
		transactions.GET("/:id", h.GetTransaction)
	}

	shifts := rg.Group("/shifts")
	{
		shifts.POST("", h.OpenShift)
		shifts.GET("", h.ListShifts)
		shifts.GET("/:id", h.GetShift)
		shifts.POST("/:id/close", h.CloseShift)
		shifts.GET("/:id/transactions", h.ListShiftTransactions)
	}
}
