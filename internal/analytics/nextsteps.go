package analytics

import "fmt"

// maxNextSteps caps the recommendation list.
const maxNextSteps = 3

// Next-step trigger thresholds.
const (
	meetingsLowPctMax    = 40.0
	rhythmConsistencyMin = 0.5
	understandSuccessMax = 70.0
)

// PlanNextSteps builds an ordered list of recommended actions. Rules 1-3
// each append at most one entry; rules 4-5 only fill gaps when the earlier
// rules produced too little.
func PlanNextSteps(perf PerformanceRow, curve CurveSummary, focusTopics []StudentTopic, momentum Momentum) []string {
	var steps []string

	if len(focusTopics) > 0 {
		steps = append(steps, fmt.Sprintf("Review %s with a couple of targeted exercises before moving on.", focusTopics[0].Title))
	}
	if momentum.Trend == TrendDown {
		steps = append(steps, "Schedule two short sessions (20-30 min) this week to rebuild momentum.")
	}
	if perf.MeetingsAttendedPct > 0 && perf.MeetingsAttendedPct < meetingsLowPctMax {
		steps = append(steps, "Join the next live session; attendance tends to speed up progress.")
	}

	if len(steps) == 0 {
		if curve.Consistency >= rhythmConsistencyMin {
			steps = append(steps, "Keep your current rhythm going; it is clearly working.")
		} else {
			steps = append(steps, "Try shorter, more frequent sessions to build a stable rhythm.")
		}
	}
	if len(steps) == 1 {
		if perf.SuccessRate < understandSuccessMax {
			steps = append(steps, "Focus on understanding current material before taking on new topics.")
		} else {
			steps = append(steps, "Keep challenging yourself; you are ready for harder material.")
		}
	}

	if len(steps) > maxNextSteps {
		steps = steps[:maxNextSteps]
	}
	return steps
}
