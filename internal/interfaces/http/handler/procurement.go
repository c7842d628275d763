package handler

import (
	procurementapp "github.com/fuelstation/backend/internal/application/procurement"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProcurementHandler handles import batches and profit windows
type ProcurementHandler struct {
	BaseHandler
	importService *procurementapp.ImportService
	profitService *procurementapp.ProfitService
}

// NewProcurementHandler creates a new ProcurementHandler
func NewProcurementHandler(importService *procurementapp.ImportService, profitService *procurementapp.ProfitService) *ProcurementHandler {
	return &ProcurementHandler{
		importService: importService,
		profitService: profitService,
	}
}

// CreateBatch registers a pending import batch
func (h *ProcurementHandler) CreateBatch(c *gin.Context) {
	var req procurementapp.CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	batch, err := h.importService.CreateBatch(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, batch)
}

// ReceiveBatch marks a batch received and applies its stock and tank deltas
func (h *ProcurementHandler) ReceiveBatch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid batch ID format")
		return
	}

	batch, err := h.importService.ReceiveBatch(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, batch)
}

// GetBatch returns a batch with its line items
func (h *ProcurementHandler) GetBatch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid batch ID format")
		return
	}

	batch, err := h.importService.GetBatch(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, batch)
}

// ListBatches lists import batches with pagination
func (h *ProcurementHandler) ListBatches(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if v := c.Query("status"); v != "" {
		filter.Filters["status"] = v
	}
	if v := c.Query("supplier_name"); v != "" {
		filter.Filters["supplier_name"] = v
	}

	batches, total, err := h.importService.ListBatches(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, batches, total, filter.Page, filter.PageSize)
}

// CalculateProfit computes profit for the batch preceding the given one
func (h *ProcurementHandler) CalculateProfit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid batch ID format")
		return
	}

	result, err := h.profitService.CalculateProfit(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// RegisterRoutes registers all procurement routes
func (h *ProcurementHandler) RegisterRoutes(rg *gin.RouterGroup) {
	batches := rg.Group("/import-batches")
	{
		batches.POST("", h.CreateBatch)
		batches.GET("", h.ListBatches)
		batches.GET("/:id", h.GetBatch)
		batches.POST("/:id/receive", h.ReceiveBatch)
		batches.POST("/:id/profit", h.CalculateProfit)
	}
}
