package planner

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"planner-backend/internal/llm"
	"planner-backend/internal/orders"
	"planner-backend/internal/recommend"
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

// RegisterRoutes attaches planner routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/planner/active-day", h.activeDay)
	rg.PUT("/planner/active-day", h.setActiveDay)
	rg.POST("/planner/recommendations", h.recommendations)
	rg.POST("/planner/parse-plan", h.parsePlan)
}

func (h *Handler) activeDay(c *gin.Context) {
	day, err := h.Svc.ActiveDay(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read active day", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"activeDay": day})
}

type setActiveDayRequest struct {
	ActiveDay string `json:"activeDay"`
}

func (h *Handler) setActiveDay(c *gin.Context) {
	var req setActiveDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if err := h.Svc.SetActiveDay(c.Request.Context(), req.ActiveDay); err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "activeDay must be an ISO date (YYYY-MM-DD)", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to store active day", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"activeDay": req.ActiveDay})
}

type recommendationsRequest struct {
	OrderID      string           `json:"orderId"`
	Fabric       string           `json:"fabric"`
	AllowedSpecs []recommend.Spec `json:"allowedSpecs"`
}

func (h *Handler) recommendations(c *gin.Context) {
	var req recommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	recs, err := h.Svc.Recommend(c.Request.Context(), RecommendTarget{
		OrderID:      req.OrderID,
		Fabric:       req.Fabric,
		AllowedSpecs: req.AllowedSpecs,
	})
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "order not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "orderId or fabric is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to build recommendations", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, recs)
}

type parsePlanRequest struct {
	Text string `json:"text"`
}

func (h *Handler) parsePlan(c *gin.Context) {
	var req parsePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	item, err := h.Svc.ParsePlan(c.Request.Context(), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "text is required", nil)
		case errors.Is(err, ErrNoMatch):
			respond.Error(c, http.StatusUnprocessableEntity, "no_match", "no plannable work item found", nil)
		case errors.Is(err, llm.ErrNotImplemented):
			respond.Error(c, http.StatusServiceUnavailable, "parser_unavailable", "plan parser is not configured", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to parse plan", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, item)
}
