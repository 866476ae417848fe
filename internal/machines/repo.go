package machines

import (
	"context"
	"time"

	"planner-backend/internal/schedule"
)

// Repo defines persistence operations for machines.
type Repo interface {
	Create(ctx context.Context, m Machine) error
	GetByID(ctx context.Context, id string) (Machine, error)
	List(ctx context.Context) ([]Machine, error)
	Update(ctx context.Context, m Machine) error
	UpdatePlans(ctx context.Context, id string, plans []schedule.WorkItem, recalculatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}
