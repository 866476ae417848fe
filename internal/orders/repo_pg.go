package orders

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"planner-backend/internal/recommend"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const orderColumns = `id, customer, fabric, quantity, allowed_specs, due_date, status, machine_name, notes, created_at`

// Create inserts a new order.
func (r *PGRepo) Create(ctx context.Context, o Order) error {
	const query = `
INSERT INTO orders (
    id,
    customer,
    fabric,
    quantity,
    allowed_specs,
    due_date,
    status,
    machine_name,
    notes,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	specs, err := marshalSpecs(o.AllowedSpecs)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(
		ctx,
		query,
		o.ID,
		o.Customer,
		o.Fabric,
		o.Quantity,
		specs,
		o.DueDate,
		string(o.Status),
		o.MachineName,
		o.Notes,
		o.CreatedAt,
	)
	return err
}

// GetByID returns an order by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders WHERE id = $1`, orderColumns)
	o, err := scanOrder(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Order{}, ErrNotFound
		}
		return Order{}, err
	}
	return o, nil
}

// List returns all orders, newest first.
func (r *PGRepo) List(ctx context.Context) ([]Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders ORDER BY created_at DESC`, orderColumns)
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// Update replaces an existing order.
func (r *PGRepo) Update(ctx context.Context, o Order) error {
	const query = `
UPDATE orders
SET customer = $1,
    fabric = $2,
    quantity = $3,
    allowed_specs = $4,
    due_date = $5,
    status = $6,
    machine_name = $7,
    notes = $8
WHERE id = $9`

	specs, err := marshalSpecs(o.AllowedSpecs)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(
		ctx,
		query,
		o.Customer,
		o.Fabric,
		o.Quantity,
		specs,
		o.DueDate,
		string(o.Status),
		o.MachineName,
		o.Notes,
		o.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete removes an order.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// MachineNamesByFabric returns the fabric's production history.
func (r *PGRepo) MachineNamesByFabric(ctx context.Context, fabric string) ([]string, error) {
	const query = `
SELECT DISTINCT machine_name
FROM orders
WHERE fabric = $1 AND machine_name <> ''
ORDER BY machine_name`

	rows, err := r.DB.QueryContext(ctx, query, fabric)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (Order, error) {
	var (
		o      Order
		status string
		specs  []byte
	)
	if err := row.Scan(
		&o.ID,
		&o.Customer,
		&o.Fabric,
		&o.Quantity,
		&specs,
		&o.DueDate,
		&status,
		&o.MachineName,
		&o.Notes,
		&o.CreatedAt,
	); err != nil {
		return Order{}, err
	}
	o.Status = Status(status)
	if len(specs) > 0 {
		if err := json.Unmarshal(specs, &o.AllowedSpecs); err != nil {
			return Order{}, fmt.Errorf("decode allowed specs: %w", err)
		}
	}
	return o, nil
}

func marshalSpecs(specs []recommend.Spec) ([]byte, error) {
	if specs == nil {
		specs = []recommend.Spec{}
	}
	data, err := json.Marshal(specs)
	if err != nil {
		return nil, fmt.Errorf("encode allowed specs: %w", err)
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
