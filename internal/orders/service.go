package orders

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"planner-backend/internal/schedule"
)

// Service contains business logic for orders.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Create registers a new order. Customer and fabric are required; the due
// date, when present, must be a valid ISO date so malformed dates never
// reach the scheduling engine.
func (s *Service) Create(ctx context.Context, o Order) (Order, error) {
	o.Customer = strings.TrimSpace(o.Customer)
	o.Fabric = strings.TrimSpace(o.Fabric)
	if o.Customer == "" || o.Fabric == "" {
		return Order{}, ErrInvalidInput
	}
	if o.Quantity < 0 {
		return Order{}, ErrInvalidInput
	}
	if o.DueDate != "" && !schedule.ValidDay(o.DueDate) {
		return Order{}, ErrInvalidInput
	}
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if !o.Status.Valid() {
		o.Status = StatusPending
	}
	o.CreatedAt = time.Now().UTC()

	if err := s.Repo.Create(ctx, o); err != nil {
		return Order{}, err
	}
	return o, nil
}

// Get returns an order by ID.
func (s *Service) Get(ctx context.Context, id string) (Order, error) {
	if id == "" {
		return Order{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, id)
}

// List returns all orders.
func (s *Service) List(ctx context.Context) ([]Order, error) {
	return s.Repo.List(ctx)
}

// Update replaces an order.
func (s *Service) Update(ctx context.Context, o Order) (Order, error) {
	if o.ID == "" {
		return Order{}, ErrInvalidInput
	}
	o.Customer = strings.TrimSpace(o.Customer)
	o.Fabric = strings.TrimSpace(o.Fabric)
	if o.Customer == "" || o.Fabric == "" || o.Quantity < 0 {
		return Order{}, ErrInvalidInput
	}
	if o.DueDate != "" && !schedule.ValidDay(o.DueDate) {
		return Order{}, ErrInvalidInput
	}
	if !o.Status.Valid() {
		return Order{}, ErrInvalidInput
	}

	existing, err := s.Repo.GetByID(ctx, o.ID)
	if err != nil {
		return Order{}, err
	}
	o.CreatedAt = existing.CreatedAt

	if err := s.Repo.Update(ctx, o); err != nil {
		return Order{}, err
	}
	return o, nil
}

// Delete removes an order.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidInput
	}
	return s.Repo.Delete(ctx, id)
}

// MarkPlaced records that the order was placed on the named machine. The
// machine name becomes part of the fabric's production history.
func (s *Service) MarkPlaced(ctx context.Context, id, machineName string) (Order, error) {
	machineName = strings.TrimSpace(machineName)
	if id == "" || machineName == "" {
		return Order{}, ErrInvalidInput
	}
	o, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Order{}, err
	}
	o.Status = StatusPlaced
	o.MachineName = machineName
	if err := s.Repo.Update(ctx, o); err != nil {
		return Order{}, err
	}
	return o, nil
}

// History returns the distinct machines that have produced the fabric.
func (s *Service) History(ctx context.Context, fabric string) ([]string, error) {
	fabric = strings.TrimSpace(fabric)
	if fabric == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.MachineNamesByFabric(ctx, fabric)
}
