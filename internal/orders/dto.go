package orders

import (
	"time"

	"planner-backend/internal/recommend"
)

// OrderResponse is the outward-facing representation of an order.
type OrderResponse struct {
	OrderID      string           `json:"orderId"`
	Customer     string           `json:"customer"`
	Fabric       string           `json:"fabric"`
	Quantity     float64          `json:"quantity"`
	AllowedSpecs []recommend.Spec `json:"allowedSpecs"`
	DueDate      string           `json:"dueDate,omitempty"`
	Status       string           `json:"status"`
	MachineName  string           `json:"machineName,omitempty"`
	Notes        string           `json:"notes,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
}

func toResponse(o Order) OrderResponse {
	specs := o.AllowedSpecs
	if specs == nil {
		specs = []recommend.Spec{}
	}
	return OrderResponse{
		OrderID:      o.ID,
		Customer:     o.Customer,
		Fabric:       o.Fabric,
		Quantity:     o.Quantity,
		AllowedSpecs: specs,
		DueDate:      o.DueDate,
		Status:       string(o.Status),
		MachineName:  o.MachineName,
		Notes:        o.Notes,
		CreatedAt:    o.CreatedAt,
	}
}
