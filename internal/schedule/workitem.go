package schedule

// Kind distinguishes productive work from non-productive placeholders.
type Kind string

const (
	// KindProduction makes fabric; its day count derives from quantity and rate.
	KindProduction Kind = "PRODUCTION"
	// KindSettings is a changeover/maintenance placeholder with a user-set
	// day count and no fabric output.
	KindSettings Kind = "SETTINGS"
)

// WorkItem is one scheduled unit of future work on a machine. Items are
// persisted as an embedded ordered list on the machine record, so the JSON
// tags double as the storage format.
type WorkItem struct {
	ID                string  `json:"id"`
	Kind              Kind    `json:"kind"`
	Fabric            string  `json:"fabric"`
	Client            string  `json:"client"`
	Quantity          float64 `json:"quantity"`
	DailyRate         float64 `json:"dailyRate"`
	Days              int     `json:"days"`
	StartDate         string  `json:"startDate"`
	EndDate           string  `json:"endDate"`
	Remaining         float64 `json:"remaining"`
	PartiallyConsumed bool    `json:"partiallyConsumed"`
	Notes             string  `json:"notes,omitempty"`
	OrderID           string  `json:"orderId,omitempty"`
	FabricID          string  `json:"fabricId,omitempty"`
}

// MachineState is the slice of live machine state the recalculation engine
// needs: what the machine is running right now and how fast it runs.
type MachineState struct {
	Class      ConstructionClass
	InProgress bool
	Fabric     string
	Client     string
	DailyRate  float64
	Remaining  float64
}
