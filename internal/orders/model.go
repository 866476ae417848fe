package orders

import (
	"time"

	"planner-backend/internal/recommend"
)

// Status tracks where an order sits in the planning flow.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusPlaced    Status = "PLACED"
	StatusCompleted Status = "COMPLETED"
)

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPlaced, StatusCompleted:
		return true
	default:
		return false
	}
}

// Order is a customer request for a quantity of fabric. AllowedSpecs lists
// the gauge/diameter pairings the fabric may be knitted on; MachineName
// records which machine the order was placed on and feeds the per-fabric
// production history used by the recommendation engine.
type Order struct {
	ID           string
	Customer     string
	Fabric       string
	Quantity     float64
	AllowedSpecs []recommend.Spec
	DueDate      string
	Status       Status
	MachineName  string
	Notes        string
	CreatedAt    time.Time
}
