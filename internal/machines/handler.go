package machines

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"planner-backend/internal/schedule"
	"planner-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches machine routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/machines", h.list)
	rg.POST("/machines", h.create)
	rg.GET("/machines/:id", h.get)
	rg.PUT("/machines/:id", h.update)
	rg.DELETE("/machines/:id", h.remove)
	rg.POST("/machines/:id/plans", h.addPlan)
	rg.DELETE("/machines/:id/plans/:index", h.removePlan)
	rg.POST("/machines/:id/plans/:index/move", h.movePlan)
	rg.POST("/machines/:id/recalculate", h.recalculate)
}

type machineRequest struct {
	Name          string  `json:"name"`
	Class         string  `json:"class"`
	Status        string  `json:"status"`
	CurrentClient string  `json:"currentClient"`
	CurrentFabric string  `json:"currentFabric"`
	DailyRate     float64 `json:"dailyRate"`
	RemainingMfg  float64 `json:"remainingMfg"`
	Gauge         string  `json:"gauge"`
	Diameter      string  `json:"diameter"`
}

func (req machineRequest) toMachine() Machine {
	class := schedule.ConstructionClass(strings.ToLower(strings.TrimSpace(req.Class)))
	if !class.Valid() {
		// Tolerate legacy free-text labels like "Single Jersey 30inch".
		class = schedule.ParseConstructionClass(req.Class)
	}
	status := Status(strings.ToUpper(strings.TrimSpace(req.Status)))
	return Machine{
		Name:          req.Name,
		Class:         class,
		Status:        status,
		CurrentClient: strings.TrimSpace(req.CurrentClient),
		CurrentFabric: strings.TrimSpace(req.CurrentFabric),
		DailyRate:     req.DailyRate,
		RemainingMfg:  req.RemainingMfg,
		Gauge:         strings.TrimSpace(req.Gauge),
		Diameter:      strings.TrimSpace(req.Diameter),
	}
}

func (h *Handler) list(c *gin.Context) {
	roster, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list machines", nil)
		return
	}
	resp := make([]MachineResponse, 0, len(roster))
	for _, m := range roster {
		resp = append(resp, toResponse(m))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) create(c *gin.Context) {
	var req machineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	m, err := h.Svc.Create(c.Request.Context(), req.toMachine())
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "name is required and rate must be non-negative", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create machine", nil)
		}
		return
	}
	respond.JSON(c, http.StatusCreated, toResponse(m))
}

func (h *Handler) get(c *gin.Context) {
	m, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondMachineError(c, err, "failed to fetch machine")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(m))
}

func (h *Handler) update(c *gin.Context) {
	var req machineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	m := req.toMachine()
	m.ID = c.Param("id")
	updated, err := h.Svc.Update(c.Request.Context(), m)
	if err != nil {
		respondMachineError(c, err, "failed to update machine")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(updated))
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondMachineError(c, err, "failed to delete machine")
		return
	}
	c.Status(http.StatusNoContent)
}

type addPlanRequest struct {
	Kind      string  `json:"kind"`
	Fabric    string  `json:"fabric"`
	Client    string  `json:"client"`
	Quantity  float64 `json:"quantity"`
	DailyRate float64 `json:"dailyRate"`
	Days      int     `json:"days"`
	Notes     string  `json:"notes"`
	OrderID   string  `json:"orderId"`
	FabricID  string  `json:"fabricId"`
}

func (h *Handler) addPlan(c *gin.Context) {
	var req addPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	item := schedule.WorkItem{
		Kind:      schedule.Kind(strings.ToUpper(strings.TrimSpace(req.Kind))),
		Fabric:    strings.TrimSpace(req.Fabric),
		Client:    strings.TrimSpace(req.Client),
		Quantity:  req.Quantity,
		DailyRate: req.DailyRate,
		Days:      req.Days,
		Notes:     strings.TrimSpace(req.Notes),
		OrderID:   strings.TrimSpace(req.OrderID),
		FabricID:  strings.TrimSpace(req.FabricID),
	}

	m, err := h.Svc.AddPlan(c.Request.Context(), c.Param("id"), item)
	if err != nil {
		respondMachineError(c, err, "failed to add plan")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(m))
}

func (h *Handler) removePlan(c *gin.Context) {
	index, ok := planIndex(c)
	if !ok {
		return
	}
	m, err := h.Svc.RemovePlan(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		respondMachineError(c, err, "failed to remove plan")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(m))
}

type movePlanRequest struct {
	To        *int   `json:"to"`
	Direction string `json:"direction"`
}

func (h *Handler) movePlan(c *gin.Context) {
	index, ok := planIndex(c)
	if !ok {
		return
	}

	var req movePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	to := index
	switch {
	case req.To != nil:
		to = *req.To
	case strings.EqualFold(req.Direction, "up"):
		to = index - 1
	case strings.EqualFold(req.Direction, "down"):
		to = index + 1
	default:
		respond.Error(c, http.StatusBadRequest, "validation_error", "either to or direction is required", nil)
		return
	}

	m, err := h.Svc.MovePlan(c.Request.Context(), c.Param("id"), index, to)
	if err != nil {
		respondMachineError(c, err, "failed to move plan")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(m))
}

func (h *Handler) recalculate(c *gin.Context) {
	m, err := h.Svc.Recalculate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondMachineError(c, err, "failed to recalculate plans")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(m))
}

func planIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "index must be a non-negative integer", nil)
		return 0, false
	}
	return index, true
}

func respondMachineError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "machine not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
