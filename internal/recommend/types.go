package recommend

import "planner-backend/internal/schedule"

// Spec is one allowed gauge/diameter pairing for an order. An empty value
// on either axis means "any".
type Spec struct {
	Gauge    string `json:"gauge,omitempty"`
	Diameter string `json:"diameter,omitempty"`
}

// Candidate is the slice of machine state the ranking algorithm reads.
type Candidate struct {
	MachineID    string
	Name         string
	Class        schedule.ConstructionClass
	Gauge        string
	Diameter     string
	RemainingMfg float64
	DailyRate    float64
	Plans        []schedule.WorkItem
}

// Target describes the order being placed: the fabric, which machines have
// produced it before, and which gauge/diameter pairings the order allows.
type Target struct {
	Fabric             string
	HistoricalMachines []string
	AllowedSpecs       []Spec
}

// Recommendation is the ranked verdict for one machine. It is derived state:
// recomputed per planning session, never persisted. The compatibility flag
// is advisory and independent of the score sign; callers may still place
// work on an incompatible machine if a user overrides.
type Recommendation struct {
	MachineID     string   `json:"machineId"`
	MachineName   string   `json:"machineName"`
	Score         int      `json:"score"`
	Reasons       []string `json:"reasons"`
	Compatible    bool     `json:"compatible"`
	FreeDate      string   `json:"freeDate"`
	DaysUntilFree int      `json:"daysUntilFree"`
}
