package analytics

import (
	"fmt"
	"math"
	"sort"
)

// momentumMinDays is the minimum series length for a week-over-week compare.
const momentumMinDays = 14

// momentumThreshold is the relative change that separates flat from up/down.
const momentumThreshold = 0.15

const momentumUnknownNote = "Not enough data to assess momentum (need at least 14 days of activity)."

// ComputeMomentum computes the 7-day-over-7-day activity trend from a daily
// series. The series may arrive in any order; lexicographic comparison of
// date_iso is sufficient for ISO dates. Fewer than 14 rows degrades to
// TrendUnknown with an explanatory note.
func ComputeMomentum(series []SeriesPoint) Momentum {
	if len(series) < momentumMinDays {
		return Momentum{Trend: TrendUnknown, Delta: 0, Note: momentumUnknownNote}
	}

	sorted := make([]SeriesPoint, len(series))
	copy(sorted, series)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DateISO < sorted[j].DateISO
	})

	last7 := sum(sorted[len(sorted)-7:])
	prev7 := sum(sorted[len(sorted)-14 : len(sorted)-7])

	delta := 0.0
	if prev7 > 0 {
		delta = (last7 - prev7) / prev7
	}

	pct := int(math.Round(math.Abs(delta) * 100))
	switch {
	case delta >= momentumThreshold:
		return Momentum{
			Trend: TrendUp,
			Delta: delta,
			Note:  fmt.Sprintf("Activity increased %d%% compared to the previous week.", pct),
		}
	case delta <= -momentumThreshold:
		return Momentum{
			Trend: TrendDown,
			Delta: delta,
			Note:  fmt.Sprintf("Activity decreased %d%% compared to the previous week.", pct),
		}
	default:
		return Momentum{
			Trend: TrendFlat,
			Delta: delta,
			Note:  "Activity is similar to the previous week.",
		}
	}
}

func sum(points []SeriesPoint) float64 {
	total := 0.0
	for _, p := range points {
		total += p.ActivityTotal
	}
	return total
}
