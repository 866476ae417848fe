package orders

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func newTestService() *Service {
	return NewService(NewMemoryRepo())
}

func mustCreate(t *testing.T, svc *Service, o Order) Order {
	t.Helper()
	created, err := svc.Create(context.Background(), o)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return created
}

func TestCreateDefaultsAndValidation(t *testing.T) {
	svc := newTestService()

	created := mustCreate(t, svc, Order{Customer: "acme", Fabric: "interlock", Quantity: 1000})
	if created.ID == "" {
		t.Fatalf("expected generated ID")
	}
	if created.Status != StatusPending {
		t.Fatalf("expected status PENDING, got %s", created.Status)
	}

	cases := []struct {
		name  string
		order Order
	}{
		{name: "missing customer", order: Order{Fabric: "interlock"}},
		{name: "missing fabric", order: Order{Customer: "acme"}},
		{name: "negative quantity", order: Order{Customer: "acme", Fabric: "interlock", Quantity: -1}},
		{name: "malformed due date", order: Order{Customer: "acme", Fabric: "interlock", DueDate: "not-a-date"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), tc.order); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestMarkPlacedFeedsFabricHistory(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	a := mustCreate(t, svc, Order{Customer: "acme", Fabric: "interlock", Quantity: 500})
	b := mustCreate(t, svc, Order{Customer: "zenith", Fabric: "interlock", Quantity: 800})
	mustCreate(t, svc, Order{Customer: "acme", Fabric: "pique", Quantity: 300})

	if _, err := svc.MarkPlaced(ctx, a.ID, "K-03"); err != nil {
		t.Fatalf("MarkPlaced: %v", err)
	}
	if _, err := svc.MarkPlaced(ctx, b.ID, "K-01"); err != nil {
		t.Fatalf("MarkPlaced: %v", err)
	}

	placed, err := svc.Get(ctx, a.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if placed.Status != StatusPlaced || placed.MachineName != "K-03" {
		t.Fatalf("expected PLACED on K-03, got %s on %q", placed.Status, placed.MachineName)
	}

	history, err := svc.History(ctx, "interlock")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if want := []string{"K-01", "K-03"}; !reflect.DeepEqual(history, want) {
		t.Fatalf("expected history %v, got %v", want, history)
	}

	// A fabric with no placed orders has an empty history, not an error.
	history, err = svc.History(ctx, "pique")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected empty history, got %v", history)
	}
}

func TestMarkPlacedValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.MarkPlaced(ctx, "missing", "K-01"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	o := mustCreate(t, svc, Order{Customer: "acme", Fabric: "interlock"})
	if _, err := svc.MarkPlaced(ctx, o.ID, "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdatePreservesCreatedAt(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	o := mustCreate(t, svc, Order{Customer: "acme", Fabric: "interlock", Quantity: 500})
	o.Quantity = 750
	updated, err := svc.Update(ctx, o)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Quantity != 750 {
		t.Fatalf("expected quantity 750, got %v", updated.Quantity)
	}
	if !updated.CreatedAt.Equal(o.CreatedAt) {
		t.Fatalf("expected createdAt preserved")
	}

	o.ID = "missing"
	if _, err := svc.Update(ctx, o); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteAndGetValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if err := svc.Delete(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Get(ctx, ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.History(ctx, "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
