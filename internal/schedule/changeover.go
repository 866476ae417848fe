package schedule

import "strings"

// ConstructionClass is a machine's mechanical category. It drives how many
// idle days a job switch costs.
type ConstructionClass string

const (
	ClassSingle   ConstructionClass = "single"
	ClassDouble   ConstructionClass = "double"
	ClassJacquard ConstructionClass = "jacquard"
	ClassOther    ConstructionClass = "other"
)

// defaultChangeoverDays applies to any class without an explicit entry.
const defaultChangeoverDays = 2

var changeoverDaysByClass = map[ConstructionClass]int{
	ClassSingle:   2,
	ClassDouble:   4,
	ClassJacquard: 4,
}

// ChangeoverDays returns the mandatory idle days inserted when consecutive
// jobs on a machine of the given class differ in fabric or client.
func ChangeoverDays(class ConstructionClass) int {
	if days, ok := changeoverDaysByClass[class]; ok {
		return days
	}
	return defaultChangeoverDays
}

// ParseConstructionClass maps free-text machine type labels onto the closed
// class enum. Matching is a case-insensitive substring check so legacy labels
// like "Single Jersey 30inch" still classify; anything unrecognized is
// ClassOther.
func ParseConstructionClass(raw string) ConstructionClass {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case strings.Contains(lowered, "single"):
		return ClassSingle
	case strings.Contains(lowered, "double"):
		return ClassDouble
	case strings.Contains(lowered, "jacquard"):
		return ClassJacquard
	default:
		return ClassOther
	}
}

// Valid reports whether class is one of the closed enum values.
func (c ConstructionClass) Valid() bool {
	switch c {
	case ClassSingle, ClassDouble, ClassJacquard, ClassOther:
		return true
	default:
		return false
	}
}
