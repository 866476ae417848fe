package schedule

import "math"

// DaysFor returns how many whole days producing quantity takes at rate
// units per day. Rates below 1 are floored to 1 so a misconfigured machine
// never divides by zero or yields an unbounded day count.
func DaysFor(quantity, rate float64) int {
	if rate < 1 {
		rate = 1
	}
	if quantity <= 0 {
		return 0
	}
	return int(math.Ceil(quantity / rate))
}

// Recalculate re-derives start date, end date, day count and remaining
// quantity for every item in the given order. It is a pure function: the
// input slice is not mutated, no I/O happens, and identical inputs always
// produce identical outputs.
//
// The walk anchors at activeDay, pushed forward by however long the
// machine's in-progress job still needs. A changeover gap of
// ChangeoverDays(m.Class) is inserted before any production item whose
// fabric or client differs from the previous scheduled job. Settings items
// neither trigger a changeover nor receive one: they are the pause, with a
// user-set day count (default 1).
func Recalculate(items []WorkItem, m MachineState, activeDay string) []WorkItem {
	out := make([]WorkItem, len(items))
	copy(out, items)

	anchor := activeDay
	if m.InProgress {
		anchor = AddDays(activeDay, DaysFor(m.Remaining, m.DailyRate))
	}

	prevFabric := m.Fabric
	prevClient := m.Client
	prevKnown := m.InProgress
	prevWasSettings := false

	for i := range out {
		item := &out[i]

		if item.Kind == KindSettings {
			if item.Days <= 0 {
				item.Days = 1
			}
			item.StartDate = anchor
			item.EndDate = AddDays(anchor, item.Days)
			anchor = item.EndDate
			prevWasSettings = true
			continue
		}

		if prevKnown && !prevWasSettings && (item.Fabric != prevFabric || item.Client != prevClient) {
			anchor = AddDays(anchor, ChangeoverDays(m.Class))
		}

		item.Days = DaysFor(item.Quantity, item.DailyRate)
		item.StartDate = anchor
		item.EndDate = AddDays(anchor, item.Days)
		if !item.PartiallyConsumed {
			item.Remaining = item.Quantity
		}

		anchor = item.EndDate
		prevFabric = item.Fabric
		prevClient = item.Client
		prevKnown = true
		prevWasSettings = false
	}

	return out
}

// ProductionTotal sums the quantities of production items. Settings
// placeholders never contribute to quantity totals.
func ProductionTotal(items []WorkItem) float64 {
	var total float64
	for _, item := range items {
		if item.Kind == KindProduction {
			total += item.Quantity
		}
	}
	return total
}
