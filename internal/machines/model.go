package machines

import (
	"time"

	"planner-backend/internal/schedule"
)

// Status is a machine's current operating state.
type Status string

const (
	StatusWorking        Status = "WORKING"
	StatusUnderOperation Status = "UNDER_OPERATION"
	StatusNoOrder        Status = "NO_ORDER"
	StatusOutOfService   Status = "OUT_OF_SERVICE"
	StatusChangeover     Status = "CHANGEOVER"
	StatusOther          Status = "OTHER"
)

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	switch s {
	case StatusWorking, StatusUnderOperation, StatusNoOrder, StatusOutOfService, StatusChangeover, StatusOther:
		return true
	default:
		return false
	}
}

// Machine is a production resource. The in-progress job (current fabric,
// client and remaining quantity) lives on the machine itself, never in the
// FuturePlans list; there is at most one in-progress job per machine.
// The machine record, embedded plan list included, is the unit of storage.
type Machine struct {
	ID             string
	Name           string
	Class          schedule.ConstructionClass
	Status         Status
	CurrentClient  string
	CurrentFabric  string
	DailyRate      float64
	RemainingMfg   float64
	Gauge          string
	Diameter       string
	FuturePlans    []schedule.WorkItem
	RecalculatedAt *time.Time
	CreatedAt      time.Time
}

// State projects the live machine fields the recalculation engine reads.
// Only a working machine counts as having an in-progress job.
func (m Machine) State() schedule.MachineState {
	return schedule.MachineState{
		Class:      m.Class,
		InProgress: m.Status == StatusWorking,
		Fabric:     m.CurrentFabric,
		Client:     m.CurrentClient,
		DailyRate:  m.DailyRate,
		Remaining:  m.RemainingMfg,
	}
}
