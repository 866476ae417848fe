package orders

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

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

// RegisterRoutes attaches order routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/orders", h.list)
	rg.POST("/orders", h.create)
	rg.GET("/orders/:id", h.get)
	rg.PUT("/orders/:id", h.update)
	rg.DELETE("/orders/:id", h.remove)
	rg.POST("/orders/:id/place", h.place)
	rg.GET("/fabrics/:fabric/history", h.history)
}

type orderRequest struct {
	Customer     string           `json:"customer"`
	Fabric       string           `json:"fabric"`
	Quantity     float64          `json:"quantity"`
	AllowedSpecs []recommend.Spec `json:"allowedSpecs"`
	DueDate      string           `json:"dueDate"`
	Status       string           `json:"status"`
	MachineName  string           `json:"machineName"`
	Notes        string           `json:"notes"`
}

func (req orderRequest) toOrder() Order {
	return Order{
		Customer:     req.Customer,
		Fabric:       req.Fabric,
		Quantity:     req.Quantity,
		AllowedSpecs: req.AllowedSpecs,
		DueDate:      strings.TrimSpace(req.DueDate),
		Status:       Status(strings.ToUpper(strings.TrimSpace(req.Status))),
		MachineName:  strings.TrimSpace(req.MachineName),
		Notes:        strings.TrimSpace(req.Notes),
	}
}

func (h *Handler) list(c *gin.Context) {
	all, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list orders", nil)
		return
	}
	resp := make([]OrderResponse, 0, len(all))
	for _, o := range all {
		resp = append(resp, toResponse(o))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) create(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	o, err := h.Svc.Create(c.Request.Context(), req.toOrder())
	if err != nil {
		respondOrderError(c, err, "failed to create order")
		return
	}
	respond.JSON(c, http.StatusCreated, toResponse(o))
}

func (h *Handler) get(c *gin.Context) {
	o, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondOrderError(c, err, "failed to fetch order")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(o))
}

func (h *Handler) update(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	o := req.toOrder()
	o.ID = c.Param("id")
	updated, err := h.Svc.Update(c.Request.Context(), o)
	if err != nil {
		respondOrderError(c, err, "failed to update order")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(updated))
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondOrderError(c, err, "failed to delete order")
		return
	}
	c.Status(http.StatusNoContent)
}

type placeRequest struct {
	MachineName string `json:"machineName"`
}

func (h *Handler) place(c *gin.Context) {
	var req placeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	o, err := h.Svc.MarkPlaced(c.Request.Context(), c.Param("id"), req.MachineName)
	if err != nil {
		respondOrderError(c, err, "failed to place order")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(o))
}

func (h *Handler) history(c *gin.Context) {
	names, err := h.Svc.History(c.Request.Context(), c.Param("fabric"))
	if err != nil {
		respondOrderError(c, err, "failed to fetch fabric history")
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"fabric": c.Param("fabric"), "machines": names})
}

func respondOrderError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "order not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}
