package machines

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"planner-backend/internal/schedule"
)

func TestPGRepoCreateStoresPlansAsJSON(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	machine := Machine{
		ID:             "machine-1",
		Name:           "K-01",
		Class:          schedule.ClassSingle,
		Status:         StatusWorking,
		CurrentClient:  "acme",
		CurrentFabric:  "pique",
		DailyRate:      150,
		RemainingMfg:   250,
		Gauge:          "24",
		Diameter:       "30",
		FuturePlans:    []schedule.WorkItem{{ID: "item-1", Kind: schedule.KindProduction, Quantity: 1000}},
		RecalculatedAt: &now,
		CreatedAt:      now,
	}

	mock.ExpectExec("INSERT INTO machines").
		WithArgs(
			machine.ID,
			machine.Name,
			"single",
			"WORKING",
			machine.CurrentClient,
			machine.CurrentFabric,
			machine.DailyRate,
			machine.RemainingMfg,
			machine.Gauge,
			machine.Diameter,
			sqlmock.AnyArg(), // future_plans
			sqlmock.AnyArg(), // recalculated_at
			sqlmock.AnyArg(), // created_at
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), machine); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdatePlansNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectExec("UPDATE machines").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.UpdatePlans(context.Background(), "missing", nil, time.Now().UTC())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
