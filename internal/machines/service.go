package machines

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"planner-backend/internal/schedule"
)

// Clock supplies the active planning day. The planner's settings-backed
// clock implements it; a nil Clock falls back to today's UTC date.
type Clock interface {
	ActiveDay(ctx context.Context) (string, error)
}

// Service contains business logic for the machine roster. Every plan
// mutation goes through the schedule engine before persisting, so stored
// plan lists are always fully time-phased.
type Service struct {
	Repo  Repo
	Clock Clock
}

// NewService constructs a Service.
func NewService(repo Repo, clock Clock) *Service {
	return &Service{Repo: repo, Clock: clock}
}

func (s *Service) activeDay(ctx context.Context) string {
	if s.Clock != nil {
		if day, err := s.Clock.ActiveDay(ctx); err == nil && day != "" {
			return day
		}
	}
	return schedule.Today()
}

// Create registers a new machine. Name is required; missing fields default
// (status NO_ORDER, class OTHER). The plan list is recalculated before the
// record is stored.
func (s *Service) Create(ctx context.Context, m Machine) (Machine, error) {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return Machine{}, ErrInvalidInput
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if !m.Class.Valid() {
		m.Class = schedule.ClassOther
	}
	if !m.Status.Valid() {
		m.Status = StatusNoOrder
	}
	if m.DailyRate < 0 {
		return Machine{}, ErrInvalidInput
	}
	m.CreatedAt = time.Now().UTC()

	now := m.CreatedAt
	m.FuturePlans = schedule.Recalculate(m.FuturePlans, m.State(), s.activeDay(ctx))
	m.RecalculatedAt = &now

	if err := s.Repo.Create(ctx, m); err != nil {
		return Machine{}, err
	}
	return m, nil
}

// Get returns a machine by ID.
func (s *Service) Get(ctx context.Context, id string) (Machine, error) {
	if id == "" {
		return Machine{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, id)
}

// List returns the full roster.
func (s *Service) List(ctx context.Context) ([]Machine, error) {
	return s.Repo.List(ctx)
}

// Update replaces a machine's live state. Because rate, status, fabric or
// client changes shift every planned date, the plan list is recalculated
// against the new state before persisting.
func (s *Service) Update(ctx context.Context, m Machine) (Machine, error) {
	if m.ID == "" {
		return Machine{}, ErrInvalidInput
	}
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return Machine{}, ErrInvalidInput
	}
	if !m.Class.Valid() || !m.Status.Valid() || m.DailyRate < 0 {
		return Machine{}, ErrInvalidInput
	}

	existing, err := s.Repo.GetByID(ctx, m.ID)
	if err != nil {
		return Machine{}, err
	}
	m.CreatedAt = existing.CreatedAt
	if m.FuturePlans == nil {
		m.FuturePlans = existing.FuturePlans
	}

	now := time.Now().UTC()
	m.FuturePlans = schedule.Recalculate(m.FuturePlans, m.State(), s.activeDay(ctx))
	m.RecalculatedAt = &now

	if err := s.Repo.Update(ctx, m); err != nil {
		return Machine{}, err
	}
	return m, nil
}

// Delete removes a machine.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	return s.Repo.Delete(ctx, id)
}

// AddPlan appends a work item to a machine's plan and persists the
// recalculated list. Partial items are tolerated: a blank kind becomes
// PRODUCTION and a blank ID is generated. Negative quantities and rates are
// rejected here so they never reach the engine.
func (s *Service) AddPlan(ctx context.Context, machineID string, item schedule.WorkItem) (Machine, error) {
	if item.Quantity < 0 || item.DailyRate < 0 || item.Days < 0 {
		return Machine{}, ErrInvalidInput
	}
	m, err := s.Repo.GetByID(ctx, machineID)
	if err != nil {
		return Machine{}, err
	}

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Kind == "" {
		item.Kind = schedule.KindProduction
	}

	plans := schedule.Append(m.FuturePlans, item, m.State(), s.activeDay(ctx))
	return s.persistPlans(ctx, m, plans)
}

// RemovePlan deletes the work item at index and persists the recalculated
// list.
func (s *Service) RemovePlan(ctx context.Context, machineID string, index int) (Machine, error) {
	m, err := s.Repo.GetByID(ctx, machineID)
	if err != nil {
		return Machine{}, err
	}
	if index < 0 || index >= len(m.FuturePlans) {
		return Machine{}, ErrInvalidInput
	}

	plans := schedule.RemoveAt(m.FuturePlans, index, m.State(), s.activeDay(ctx))
	return s.persistPlans(ctx, m, plans)
}

// MovePlan reorders the work item at from to position to and persists the
// recalculated list. Adjacent swaps (move up/down) are the from±1 case.
func (s *Service) MovePlan(ctx context.Context, machineID string, from, to int) (Machine, error) {
	m, err := s.Repo.GetByID(ctx, machineID)
	if err != nil {
		return Machine{}, err
	}
	if from < 0 || from >= len(m.FuturePlans) || to < 0 || to >= len(m.FuturePlans) {
		return Machine{}, ErrInvalidInput
	}

	plans := schedule.MoveTo(m.FuturePlans, from, to, m.State(), s.activeDay(ctx))
	return s.persistPlans(ctx, m, plans)
}

// Recalculate re-runs the schedule engine against the machine's current
// state and persists the result. Used after external edits to live state.
func (s *Service) Recalculate(ctx context.Context, machineID string) (Machine, error) {
	m, err := s.Repo.GetByID(ctx, machineID)
	if err != nil {
		return Machine{}, err
	}
	plans := schedule.Recalculate(m.FuturePlans, m.State(), s.activeDay(ctx))
	return s.persistPlans(ctx, m, plans)
}

func (s *Service) persistPlans(ctx context.Context, m Machine, plans []schedule.WorkItem) (Machine, error) {
	now := time.Now().UTC()
	if err := s.Repo.UpdatePlans(ctx, m.ID, plans, now); err != nil {
		return Machine{}, err
	}
	m.FuturePlans = plans
	m.RecalculatedAt = &now
	return m, nil
}
