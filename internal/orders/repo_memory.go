package orders

import (
	"context"
	"sort"
	"sync"

	"planner-backend/internal/recommend"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Order
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Order)}
}

// Create stores a new order.
func (r *MemoryRepo) Create(ctx context.Context, o Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[o.ID] = cloneOrder(o)
	return nil
}

// GetByID returns an order by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Order, error) {
	if err := ctx.Err(); err != nil {
		return Order{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.data[id]
	if !ok {
		return Order{}, ErrNotFound
	}
	return cloneOrder(o), nil
}

// List returns all orders, newest first.
func (r *MemoryRepo) List(ctx context.Context) ([]Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, 0, len(r.data))
	for _, o := range r.data {
		out = append(out, cloneOrder(o))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// Update replaces an existing order.
func (r *MemoryRepo) Update(ctx context.Context, o Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[o.ID]; !ok {
		return ErrNotFound
	}
	r.data[o.ID] = cloneOrder(o)
	return nil
}

// Delete removes an order.
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

// MachineNamesByFabric returns the distinct machines recorded against the
// fabric, sorted for determinism.
func (r *MemoryRepo) MachineNamesByFabric(ctx context.Context, fabric string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	out := []string{}
	for _, o := range r.data {
		if o.Fabric != fabric || o.MachineName == "" || seen[o.MachineName] {
			continue
		}
		seen[o.MachineName] = true
		out = append(out, o.MachineName)
	}
	sort.Strings(out)
	return out, nil
}

func cloneOrder(o Order) Order {
	out := o
	if o.AllowedSpecs != nil {
		out.AllowedSpecs = make([]recommend.Spec, len(o.AllowedSpecs))
		copy(out.AllowedSpecs, o.AllowedSpecs)
	}
	return out
}

var _ Repo = (*MemoryRepo)(nil)
