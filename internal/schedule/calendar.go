package schedule

import "time"

// DayLayout is the ISO calendar-date format used throughout planning.
// Plan dates carry no time zone; a day is just a label.
const DayLayout = "2006-01-02"

// AddDays returns the ISO date n calendar days after day (negative n
// subtracts). If day does not parse it is returned unchanged; the engine
// never fails on bad dates, callers validate at the boundary.
func AddDays(day string, n int) string {
	t, err := time.Parse(DayLayout, day)
	if err != nil {
		return day
	}
	return t.AddDate(0, 0, n).Format(DayLayout)
}

// ValidDay reports whether day is a well-formed ISO calendar date.
func ValidDay(day string) bool {
	_, err := time.Parse(DayLayout, day)
	return err == nil
}

// Today returns the current UTC date in ISO form. Used only as the default
// when no active day has been configured; the engine itself never reads the
// clock.
func Today() string {
	return time.Now().UTC().Format(DayLayout)
}
