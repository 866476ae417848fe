package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"planner-backend/internal/llm"
	"planner-backend/internal/machines"
	"planner-backend/internal/orders"
	"planner-backend/internal/recommend"
	"planner-backend/internal/schedule"
	"planner-backend/internal/settings"
)

// activeDayKey is the settings-collection key for the shared planning day.
const activeDayKey = "active_day"

// Service owns the planning session: the shared active day, machine
// recommendations for pending orders, and AI plan parsing. It holds no
// state of its own; recommendations are recomputed on every call and never
// persisted.
type Service struct {
	Machines machines.Repo
	Orders   orders.Repo
	Settings settings.Repo
	Parser   llm.Client
}

// NewService constructs a Service.
func NewService(machineRepo machines.Repo, orderRepo orders.Repo, settingRepo settings.Repo, parser llm.Client) *Service {
	return &Service{
		Machines: machineRepo,
		Orders:   orderRepo,
		Settings: settingRepo,
		Parser:   parser,
	}
}

// ActiveDay returns the shared planning day, falling back to today's UTC
// date when none is set. It satisfies machines.Clock so every plan mutation
// schedules against the same simulated day.
func (s *Service) ActiveDay(ctx context.Context) (string, error) {
	if s.Settings == nil {
		return schedule.Today(), nil
	}
	day, err := s.Settings.Get(ctx, activeDayKey)
	if err != nil {
		if errors.Is(err, settings.ErrNotFound) {
			return schedule.Today(), nil
		}
		return "", err
	}
	if !schedule.ValidDay(day) {
		return schedule.Today(), nil
	}
	return day, nil
}

// SetActiveDay stores the shared planning day. Malformed dates are rejected
// here so the engine's permissive date handling is never exercised by
// configuration.
func (s *Service) SetActiveDay(ctx context.Context, day string) error {
	if !schedule.ValidDay(day) {
		return ErrInvalidInput
	}
	return s.Settings.Set(ctx, activeDayKey, day)
}

// RecommendTarget identifies what to place: either an existing order or an
// ad-hoc fabric with optional allowed specs.
type RecommendTarget struct {
	OrderID      string
	Fabric       string
	AllowedSpecs []recommend.Spec
}

// Recommend ranks the full roster against the target. History comes from
// past orders of the same fabric.
func (s *Service) Recommend(ctx context.Context, target RecommendTarget) ([]recommend.Recommendation, error) {
	fabric := strings.TrimSpace(target.Fabric)
	specs := target.AllowedSpecs

	if target.OrderID != "" {
		order, err := s.Orders.GetByID(ctx, target.OrderID)
		if err != nil {
			return nil, err
		}
		fabric = order.Fabric
		specs = order.AllowedSpecs
	}
	if fabric == "" {
		return nil, ErrInvalidInput
	}

	history, err := s.Orders.MachineNamesByFabric(ctx, fabric)
	if err != nil {
		return nil, err
	}
	roster, err := s.Machines.List(ctx)
	if err != nil {
		return nil, err
	}
	day, err := s.ActiveDay(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]recommend.Candidate, 0, len(roster))
	for _, m := range roster {
		candidates = append(candidates, recommend.Candidate{
			MachineID:    m.ID,
			Name:         m.Name,
			Class:        m.Class,
			Gauge:        m.Gauge,
			Diameter:     m.Diameter,
			RemainingMfg: m.RemainingMfg,
			DailyRate:    m.DailyRate,
			Plans:        m.FuturePlans,
		})
	}

	return recommend.Recommend(candidates, recommend.Target{
		Fabric:             fabric,
		HistoricalMachines: history,
		AllowedSpecs:       specs,
	}, day), nil
}

// parsedPlan mirrors the JSON contract with the plan parser. All fields are
// optional; the parser's output is untrusted.
type parsedPlan struct {
	Match     *bool   `json:"match"`
	Kind      string  `json:"kind"`
	Fabric    string  `json:"fabric"`
	Client    string  `json:"client"`
	Quantity  float64 `json:"quantity"`
	DailyRate float64 `json:"dailyRate"`
	Days      int     `json:"days"`
	Notes     string  `json:"notes"`
}

// ParsePlan runs the AI collaborator over free text and normalizes its
// partial answer into a work-item candidate. The candidate is not
// persisted; accepting it goes through the regular plan mutations.
func (s *Service) ParsePlan(ctx context.Context, text string) (schedule.WorkItem, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return schedule.WorkItem{}, ErrInvalidInput
	}

	fabrics, clients, err := s.knownNames(ctx)
	if err != nil {
		return schedule.WorkItem{}, err
	}

	raw, err := s.Parser.ParsePlan(ctx, llm.ParseInput{Text: text, Fabrics: fabrics, Clients: clients})
	if err != nil {
		return schedule.WorkItem{}, err
	}

	var plan parsedPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return schedule.WorkItem{}, fmt.Errorf("decode parsed plan: %w", err)
	}
	if plan.Match != nil && !*plan.Match {
		return schedule.WorkItem{}, ErrNoMatch
	}

	return normalizeParsedPlan(plan), nil
}

// normalizeParsedPlan applies the defaulting policy for untrusted partial
// records: unknown kind becomes PRODUCTION, negative or missing quantity
// becomes 0, rate floors to 1, settings day counts default to 1.
func normalizeParsedPlan(plan parsedPlan) schedule.WorkItem {
	kind := schedule.Kind(strings.ToUpper(strings.TrimSpace(plan.Kind)))
	if kind != schedule.KindSettings {
		kind = schedule.KindProduction
	}

	quantity := plan.Quantity
	if quantity < 0 {
		quantity = 0
	}
	rate := plan.DailyRate
	if rate < 1 {
		rate = 1
	}
	days := plan.Days
	if kind == schedule.KindSettings && days <= 0 {
		days = 1
	}

	return schedule.WorkItem{
		Kind:      kind,
		Fabric:    strings.TrimSpace(plan.Fabric),
		Client:    strings.TrimSpace(plan.Client),
		Quantity:  quantity,
		DailyRate: rate,
		Days:      days,
		Remaining: quantity,
		Notes:     strings.TrimSpace(plan.Notes),
	}
}

func (s *Service) knownNames(ctx context.Context) (fabrics, clients []string, err error) {
	all, err := s.Orders.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	seenFabric := make(map[string]bool)
	seenClient := make(map[string]bool)
	for _, o := range all {
		if o.Fabric != "" && !seenFabric[o.Fabric] {
			seenFabric[o.Fabric] = true
			fabrics = append(fabrics, o.Fabric)
		}
		if o.Customer != "" && !seenClient[o.Customer] {
			seenClient[o.Customer] = true
			clients = append(clients, o.Customer)
		}
	}
	return fabrics, clients, nil
}
