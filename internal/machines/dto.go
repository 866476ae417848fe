package machines

import (
	"time"

	"planner-backend/internal/schedule"
)

// MachineResponse is the outward-facing representation of a machine.
type MachineResponse struct {
	MachineID      string              `json:"machineId"`
	Name           string              `json:"name"`
	Class          string              `json:"class"`
	Status         string              `json:"status"`
	CurrentClient  string              `json:"currentClient,omitempty"`
	CurrentFabric  string              `json:"currentFabric,omitempty"`
	DailyRate      float64             `json:"dailyRate"`
	RemainingMfg   float64             `json:"remainingMfg"`
	Gauge          string              `json:"gauge,omitempty"`
	Diameter       string              `json:"diameter,omitempty"`
	FuturePlans    []schedule.WorkItem `json:"futurePlans"`
	RecalculatedAt *time.Time          `json:"recalculatedAt,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
}

func toResponse(m Machine) MachineResponse {
	plans := m.FuturePlans
	if plans == nil {
		plans = []schedule.WorkItem{}
	}
	return MachineResponse{
		MachineID:      m.ID,
		Name:           m.Name,
		Class:          string(m.Class),
		Status:         string(m.Status),
		CurrentClient:  m.CurrentClient,
		CurrentFabric:  m.CurrentFabric,
		DailyRate:      m.DailyRate,
		RemainingMfg:   m.RemainingMfg,
		Gauge:          m.Gauge,
		Diameter:       m.Diameter,
		FuturePlans:    plans,
		RecalculatedAt: m.RecalculatedAt,
		CreatedAt:      m.CreatedAt,
	}
}
