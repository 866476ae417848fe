package schedule

// Plan mutation helpers. Each returns a fresh, fully recalculated list and
// leaves its input untouched. Out-of-range indices are no-ops (the list is
// still recalculated); index validation belongs to the HTTP boundary.

// Append adds item to the end of the plan list and recalculates.
func Append(items []WorkItem, item WorkItem, m MachineState, activeDay string) []WorkItem {
	next := make([]WorkItem, 0, len(items)+1)
	next = append(next, items...)
	next = append(next, item)
	return Recalculate(next, m, activeDay)
}

// RemoveAt deletes the item at index and recalculates.
func RemoveAt(items []WorkItem, index int, m MachineState, activeDay string) []WorkItem {
	if index < 0 || index >= len(items) {
		return Recalculate(items, m, activeDay)
	}
	next := make([]WorkItem, 0, len(items)-1)
	next = append(next, items[:index]...)
	next = append(next, items[index+1:]...)
	return Recalculate(next, m, activeDay)
}

// MoveUp swaps the item at index with its predecessor and recalculates.
func MoveUp(items []WorkItem, index int, m MachineState, activeDay string) []WorkItem {
	if index <= 0 || index >= len(items) {
		return Recalculate(items, m, activeDay)
	}
	next := make([]WorkItem, len(items))
	copy(next, items)
	next[index-1], next[index] = next[index], next[index-1]
	return Recalculate(next, m, activeDay)
}

// MoveDown swaps the item at index with its successor and recalculates.
func MoveDown(items []WorkItem, index int, m MachineState, activeDay string) []WorkItem {
	if index < 0 || index >= len(items)-1 {
		return Recalculate(items, m, activeDay)
	}
	next := make([]WorkItem, len(items))
	copy(next, items)
	next[index], next[index+1] = next[index+1], next[index]
	return Recalculate(next, m, activeDay)
}

// MoveTo lifts the item at from and reinserts it at to, shifting everything
// between, then recalculates. Used for drag-and-drop reordering.
func MoveTo(items []WorkItem, from, to int, m MachineState, activeDay string) []WorkItem {
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) || from == to {
		return Recalculate(items, m, activeDay)
	}
	next := make([]WorkItem, 0, len(items))
	next = append(next, items[:from]...)
	next = append(next, items[from+1:]...)
	moved := items[from]
	next = append(next[:to], append([]WorkItem{moved}, next[to:]...)...)
	return Recalculate(next, m, activeDay)
}
