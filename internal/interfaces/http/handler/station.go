package handler

import (
	stationapp "github.com/fuelstation/backend/internal/application/station"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StationHandler handles dispensers, nozzles, tanks and tank readings
type StationHandler struct {
	BaseHandler
	stationService *stationapp.StationService
}

// NewStationHandler creates a new StationHandler
func NewStationHandler(stationService *stationapp.StationService) *StationHandler {
	return &StationHandler{stationService: stationService}
}

// CreateDispenser registers a new dispenser
func (h *StationHandler) CreateDispenser(c *gin.Context) {
	var req stationapp.CreateDispenserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	dispenser, err := h.stationService.CreateDispenser(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, dispenser)
}

// ListDispenserNozzles lists all nozzles mounted on a dispenser
func (h *StationHandler) ListDispenserNozzles(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid dispenser ID format")
		return
	}

	nozzles, err := h.stationService.ListDispenserNozzles(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, nozzles)
}

// CreateTank registers a new storage tank
func (h *StationHandler) CreateTank(c *gin.Context) {
	var req stationapp.CreateTankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	tank, err := h.stationService.CreateTank(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, tank)
}

// ListTanks lists all tanks
func (h *StationHandler) ListTanks(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	tanks, err := h.stationService.ListTanks(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tanks)
}

// ListTankReadings returns a tank's volume history
func (h *StationHandler) ListTankReadings(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid tank ID format")
		return
	}

	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	readings, err := h.stationService.ListTankReadings(c.Request.Context(), id, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, readings)
}

// CreateNozzle mounts a new nozzle on a dispenser
func (h *StationHandler) CreateNozzle(c *gin.Context) {
	var req stationapp.CreateNozzleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	nozzle, err := h.stationService.CreateNozzle(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, nozzle)
}

// LockNozzle takes a nozzle out of service
func (h *StationHandler) LockNozzle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid nozzle ID format")
		return
	}

	nozzle, err := h.stationService.LockNozzle(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, nozzle)
}

// UnlockNozzle returns a nozzle to service
func (h *StationHandler) UnlockNozzle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid nozzle ID format")
		return
	}

	nozzle, err := h.stationService.UnlockNozzle(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, nozzle)
}

// RegisterRoutes registers all station routes
func (h *StationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	dispensers := rg.Group("/dispensers")
	{
		dispensers.POST("", h.CreateDispenser)
		dispensers.GET("/:id/nozzles", h.ListDispenserNozzles)
	}

	tanks := rg.Group("/tanks")
	{
		tanks.POST("", h.CreateTank)
		tanks.GET("", h.ListTanks)
		tanks.GET("/:id/readings", h.ListTankReadings)
	}

	nozzles := rg.Group("/nozzles")
	{
		nozzles.POST("", h.CreateNozzle)
		nozzles.POST("/:id/lock", h.LockNozzle)
		nozzles.POST("/:id/unlock", h.UnlockNozzle)
	}
}
