package schedule

import "testing"

func planFixture() []WorkItem {
	return []WorkItem{
		{ID: "a", Kind: KindProduction, Fabric: "jersey", Client: "acme", Quantity: 100, DailyRate: 100},
		{ID: "b", Kind: KindProduction, Fabric: "pique", Client: "acme", Quantity: 200, DailyRate: 100},
		{ID: "c", Kind: KindProduction, Fabric: "rib", Client: "bolt", Quantity: 300, DailyRate: 100},
	}
}

func ids(items []WorkItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func assertOrder(t *testing.T, items []WorkItem, want ...string) {
	t.Helper()
	got := ids(items)
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestAppendRecalculates(t *testing.T) {
	m := idleMachine(ClassSingle)
	out := Append(planFixture(), WorkItem{ID: "d", Kind: KindProduction, Fabric: "rib", Client: "bolt", Quantity: 100, DailyRate: 100}, m, day0)

	assertOrder(t, out, "a", "b", "c", "d")
	if out[3].StartDate == "" || out[3].EndDate == "" {
		t.Fatalf("expected appended item to receive dates, got %+v", out[3])
	}
	// Same fabric+client as "c": no changeover before "d".
	if out[3].StartDate != out[2].EndDate {
		t.Fatalf("expected d to start at %q, got %q", out[2].EndDate, out[3].StartDate)
	}
}

func TestRemoveAt(t *testing.T) {
	m := idleMachine(ClassSingle)
	out := RemoveAt(planFixture(), 1, m, day0)
	assertOrder(t, out, "a", "c")

	// Removal has no compensating logic: the standard walk closes the gap.
	wantStart := AddDays(out[0].EndDate, ChangeoverDays(ClassSingle))
	if out[1].StartDate != wantStart {
		t.Fatalf("expected c to start %q after removal, got %q", wantStart, out[1].StartDate)
	}
}

func TestRemoveAtOutOfRangeIsNoop(t *testing.T) {
	m := idleMachine(ClassSingle)
	out := RemoveAt(planFixture(), 9, m, day0)
	assertOrder(t, out, "a", "b", "c")
}

func TestMoveUpAndDown(t *testing.T) {
	m := idleMachine(ClassSingle)

	up := MoveUp(planFixture(), 2, m, day0)
	assertOrder(t, up, "a", "c", "b")

	down := MoveDown(planFixture(), 0, m, day0)
	assertOrder(t, down, "b", "a", "c")

	topNoop := MoveUp(planFixture(), 0, m, day0)
	assertOrder(t, topNoop, "a", "b", "c")

	bottomNoop := MoveDown(planFixture(), 2, m, day0)
	assertOrder(t, bottomNoop, "a", "b", "c")
}

func TestMoveToRoundTripRestoresOrder(t *testing.T) {
	m := idleMachine(ClassSingle)
	items := planFixture()

	moved := MoveTo(items, 2, 0, m, day0)
	assertOrder(t, moved, "c", "a", "b")

	back := MoveTo(moved, 0, 2, m, day0)
	assertOrder(t, back, "a", "b", "c")

	original := Recalculate(items, m, day0)
	for i := range original {
		if back[i].StartDate != original[i].StartDate || back[i].EndDate != original[i].EndDate {
			t.Fatalf("item %q: expected dates restored to %q..%q, got %q..%q",
				back[i].ID, original[i].StartDate, original[i].EndDate, back[i].StartDate, back[i].EndDate)
		}
	}
}

func TestMoveToOutOfRangeIsNoop(t *testing.T) {
	m := idleMachine(ClassSingle)
	out := MoveTo(planFixture(), 0, 5, m, day0)
	assertOrder(t, out, "a", "b", "c")
}

func TestMutationHelpersDoNotMutateInput(t *testing.T) {
	m := idleMachine(ClassSingle)
	items := planFixture()

	_ = Append(items, WorkItem{ID: "d"}, m, day0)
	_ = RemoveAt(items, 0, m, day0)
	_ = MoveUp(items, 2, m, day0)
	_ = MoveDown(items, 0, m, day0)
	_ = MoveTo(items, 2, 0, m, day0)

	assertOrder(t, items, "a", "b", "c")
	if items[0].StartDate != "" {
		t.Fatalf("expected input items untouched, got start date %q", items[0].StartDate)
	}
}
