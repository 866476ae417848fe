package orders

import "context"

// Repo defines persistence operations for orders.
type Repo interface {
	Create(ctx context.Context, o Order) error
	GetByID(ctx context.Context, id string) (Order, error)
	List(ctx context.Context) ([]Order, error)
	Update(ctx context.Context, o Order) error
	Delete(ctx context.Context, id string) error
	// MachineNamesByFabric returns the distinct machines that have produced
	// the given fabric, i.e. the fabric's production history.
	MachineNamesByFabric(ctx context.Context, fabric string) ([]string, error)
}
