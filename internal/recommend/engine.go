package recommend

import (
	"fmt"
	"sort"
	"strings"

	"planner-backend/internal/schedule"
)

// Scoring constants. Incompatible scores are large negatives so any
// incompatible machine always sorts below every compatible one; the
// compatibility flag is still the authoritative signal.
const (
	scoreHistoryExactMatch = 100
	scoreHistoryClassMatch = 50
	scoreNoHistory         = -2000
	scoreSpecMismatch      = -1000
	availabilityMax        = 50
	availabilityDecay      = 5
)

// Recommend ranks every roster machine against the target order, descending
// by score. Roster order is preserved among equal scores. Pure function:
// deterministic, no mutation of its inputs.
func Recommend(roster []Candidate, target Target, activeDay string) []Recommendation {
	historyClasses := classesOfHistoricalMachines(roster, target.HistoricalMachines)

	out := make([]Recommendation, 0, len(roster))
	for _, cand := range roster {
		out = append(out, scoreCandidate(cand, target, historyClasses, activeDay))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

func scoreCandidate(cand Candidate, target Target, historyClasses map[schedule.ConstructionClass]bool, activeDay string) Recommendation {
	rec := Recommendation{
		MachineID:   cand.MachineID,
		MachineName: cand.Name,
		Compatible:  true,
		Reasons:     []string{},
	}

	// History hard filter.
	if len(target.HistoricalMachines) > 0 {
		switch {
		case containsName(target.HistoricalMachines, cand.Name):
			rec.Score += scoreHistoryExactMatch
			rec.Reasons = append(rec.Reasons, fmt.Sprintf("has produced %s before", target.Fabric))
		case historyClasses[cand.Class]:
			rec.Score += scoreHistoryClassMatch
			rec.Reasons = append(rec.Reasons, fmt.Sprintf("same construction class as machines that produced %s", target.Fabric))
		default:
			rec.Compatible = false
			rec.Score = scoreNoHistory
			rec.Reasons = append(rec.Reasons, fmt.Sprintf("no production history for %s", target.Fabric))
		}
	}

	// Spec hard filter. The score is overwritten, not added to.
	if rec.Compatible && len(target.AllowedSpecs) > 0 {
		if matchesAnySpec(cand, target.AllowedSpecs) {
			rec.Reasons = append(rec.Reasons, "gauge/diameter within order specs")
		} else {
			rec.Compatible = false
			rec.Score = scoreSpecMismatch
			rec.Reasons = append(rec.Reasons, "gauge/diameter outside order specs")
		}
	}

	// Availability. The projected free date is recorded for every machine;
	// only compatible ones earn the score term.
	totalRemaining := cand.RemainingMfg + schedule.ProductionTotal(cand.Plans)
	rec.DaysUntilFree = schedule.DaysFor(totalRemaining, cand.DailyRate)
	rec.FreeDate = schedule.AddDays(activeDay, rec.DaysUntilFree)

	if rec.Compatible {
		if rec.DaysUntilFree <= 0 {
			rec.Score += availabilityMax
			rec.Reasons = append(rec.Reasons, "available now")
		} else {
			term := availabilityMax - min(rec.DaysUntilFree*availabilityDecay, availabilityMax)
			if term > 0 {
				rec.Score += term
			}
			rec.Reasons = append(rec.Reasons, fmt.Sprintf("frees up in %d days", rec.DaysUntilFree))
		}
	}

	return rec
}

// classesOfHistoricalMachines collects the construction classes of roster
// machines whose names appear in the fabric's history.
func classesOfHistoricalMachines(roster []Candidate, historical []string) map[schedule.ConstructionClass]bool {
	classes := make(map[schedule.ConstructionClass]bool)
	for _, cand := range roster {
		if containsName(historical, cand.Name) {
			classes[cand.Class] = true
		}
	}
	return classes
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// matchesAnySpec reports whether the machine satisfies at least one allowed
// spec pair. Per axis, an unset value on either side matches anything;
// otherwise values must be equal after trimming.
func matchesAnySpec(cand Candidate, specs []Spec) bool {
	for _, spec := range specs {
		if axisMatches(spec.Gauge, cand.Gauge) && axisMatches(spec.Diameter, cand.Diameter) {
			return true
		}
	}
	return false
}

func axisMatches(want, have string) bool {
	want = strings.TrimSpace(want)
	have = strings.TrimSpace(have)
	if want == "" || have == "" {
		return true
	}
	return want == have
}
