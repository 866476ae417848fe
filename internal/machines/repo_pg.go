package machines

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"planner-backend/internal/schedule"
)

// PGRepo implements Repo using Postgres. The plan list is stored as jsonb on
// the machine row so the machine record stays the unit of storage.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new machine.
func (r *PGRepo) Create(ctx context.Context, m Machine) error {
	const query = `
INSERT INTO machines (
    id,
    name,
    construction_class,
    status,
    current_client,
    current_fabric,
    daily_rate,
    remaining_mfg,
    gauge,
    diameter,
    future_plans,
    recalculated_at,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	plans, err := marshalPlans(m.FuturePlans)
	if err != nil {
		return err
	}

	var recalculatedAt sql.NullTime
	if m.RecalculatedAt != nil {
		recalculatedAt = sql.NullTime{Time: *m.RecalculatedAt, Valid: true}
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		m.ID,
		m.Name,
		string(m.Class),
		string(m.Status),
		m.CurrentClient,
		m.CurrentFabric,
		m.DailyRate,
		m.RemainingMfg,
		m.Gauge,
		m.Diameter,
		plans,
		recalculatedAt,
		m.CreatedAt,
	)
	return err
}

const machineColumns = `id, name, construction_class, status, current_client, current_fabric, daily_rate, remaining_mfg, gauge, diameter, future_plans, recalculated_at, created_at`

// GetByID returns a machine by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Machine, error) {
	query := fmt.Sprintf(`SELECT %s FROM machines WHERE id = $1`, machineColumns)
	m, err := scanMachine(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Machine{}, ErrNotFound
		}
		return Machine{}, err
	}
	return m, nil
}

// List returns all machines ordered by name.
func (r *PGRepo) List(ctx context.Context) ([]Machine, error) {
	query := fmt.Sprintf(`SELECT %s FROM machines ORDER BY name`, machineColumns)
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Machine
	for rows.Next() {
		m, err := scanMachine(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Update replaces an existing machine record, plan list included.
func (r *PGRepo) Update(ctx context.Context, m Machine) error {
	const query = `
UPDATE machines
SET name = $1,
    construction_class = $2,
    status = $3,
    current_client = $4,
    current_fabric = $5,
    daily_rate = $6,
    remaining_mfg = $7,
    gauge = $8,
    diameter = $9,
    future_plans = $10,
    recalculated_at = $11
WHERE id = $12`

	plans, err := marshalPlans(m.FuturePlans)
	if err != nil {
		return err
	}

	var recalculatedAt sql.NullTime
	if m.RecalculatedAt != nil {
		recalculatedAt = sql.NullTime{Time: *m.RecalculatedAt, Valid: true}
	}

	res, err := r.DB.ExecContext(
		ctx,
		query,
		m.Name,
		string(m.Class),
		string(m.Status),
		m.CurrentClient,
		m.CurrentFabric,
		m.DailyRate,
		m.RemainingMfg,
		m.Gauge,
		m.Diameter,
		plans,
		recalculatedAt,
		m.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// UpdatePlans replaces a machine's work-item list and recalculation timestamp.
func (r *PGRepo) UpdatePlans(ctx context.Context, id string, items []schedule.WorkItem, recalculatedAt time.Time) error {
	const query = `
UPDATE machines
SET future_plans = $1, recalculated_at = $2
WHERE id = $3`

	plans, err := marshalPlans(items)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx, query, plans, recalculatedAt, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete removes a machine.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM machines WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMachine(row rowScanner) (Machine, error) {
	var (
		m              Machine
		class          string
		status         string
		plans          []byte
		recalculatedAt sql.NullTime
	)
	if err := row.Scan(
		&m.ID,
		&m.Name,
		&class,
		&status,
		&m.CurrentClient,
		&m.CurrentFabric,
		&m.DailyRate,
		&m.RemainingMfg,
		&m.Gauge,
		&m.Diameter,
		&plans,
		&recalculatedAt,
		&m.CreatedAt,
	); err != nil {
		return Machine{}, err
	}
	m.Class = schedule.ConstructionClass(class)
	m.Status = Status(status)
	if len(plans) > 0 {
		if err := json.Unmarshal(plans, &m.FuturePlans); err != nil {
			return Machine{}, fmt.Errorf("decode future plans: %w", err)
		}
	}
	if recalculatedAt.Valid {
		m.RecalculatedAt = &recalculatedAt.Time
	}
	return m, nil
}

func marshalPlans(items []schedule.WorkItem) ([]byte, error) {
	if items == nil {
		items = []schedule.WorkItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode future plans: %w", err)
	}
	return data, nil
}

func requireRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
