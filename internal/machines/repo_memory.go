package machines

import (
	"context"
	"sort"
	"sync"
	"time"

	"planner-backend/internal/schedule"
)

// MemoryRepo is an in-memory implementation of Repo, used when no database
// is configured.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Machine
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Machine)}
}

// Create stores a new machine.
func (r *MemoryRepo) Create(ctx context.Context, m Machine) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[m.ID] = cloneMachine(m)
	return nil
}

// GetByID returns a machine by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Machine, error) {
	if err := ctx.Err(); err != nil {
		return Machine{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.data[id]
	if !ok {
		return Machine{}, ErrNotFound
	}
	return cloneMachine(m), nil
}

// List returns all machines ordered by name.
func (r *MemoryRepo) List(ctx context.Context) ([]Machine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Machine, 0, len(r.data))
	for _, m := range r.data {
		out = append(out, cloneMachine(m))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Update replaces an existing machine record.
func (r *MemoryRepo) Update(ctx context.Context, m Machine) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[m.ID]; !ok {
		return ErrNotFound
	}
	r.data[m.ID] = cloneMachine(m)
	return nil
}

// UpdatePlans replaces a machine's work-item list and recalculation timestamp.
func (r *MemoryRepo) UpdatePlans(ctx context.Context, id string, plans []schedule.WorkItem, recalculatedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.data[id]
	if !ok {
		return ErrNotFound
	}
	m.FuturePlans = clonePlans(plans)
	m.RecalculatedAt = &recalculatedAt
	r.data[id] = m
	return nil
}

// Delete removes a machine.
func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return ErrNotFound
	}
	delete(r.data, id)
	return nil
}

func cloneMachine(m Machine) Machine {
	out := m
	out.FuturePlans = clonePlans(m.FuturePlans)
	if m.RecalculatedAt != nil {
		ts := *m.RecalculatedAt
		out.RecalculatedAt = &ts
	}
	return out
}

func clonePlans(plans []schedule.WorkItem) []schedule.WorkItem {
	if plans == nil {
		return nil
	}
	out := make([]schedule.WorkItem, len(plans))
	copy(out, plans)
	return out
}

var _ Repo = (*MemoryRepo)(nil)
