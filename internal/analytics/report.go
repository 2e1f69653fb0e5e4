package analytics

import "sort"

// maxDisplayTopics caps the report's topic win and focus selections. These
// are display selections, independent of the 2-item lists the signal
// extractor feeds into highlights.
const maxDisplayTopics = 3

// curveExplanations maps each known easing label to its fixed explanation.
var curveExplanations = map[string]string{
	CurveLinear:     "Activity was spread evenly across the course period.",
	CurveEase:       "Activity ramped up gently and settled into a steady pace.",
	CurveEaseIn:     "Activity started slowly and picked up later in the course.",
	CurveEaseOut:    "Activity started strong and tapered toward the end.",
	CurveEaseInOut:  "Activity peaked mid-course, with a slower start and finish.",
	CurveNoActivity: "No recorded activity in this period.",
}

const curveExplanationDefault = "The activity pattern does not match a known curve shape."

// CurveExplanation returns the fixed explanation sentence for an easing
// label, or a generic sentence for unknown labels.
func CurveExplanation(label string) string {
	if text, ok := curveExplanations[label]; ok {
		return text
	}
	return curveExplanationDefault
}

// GenerateStudentReport assembles the full report for one student, or nil
// when the student has no performance or curve row. Row lookup is an
// exact-string match on user id; only the submission filter inside
// BuildTopicTable is case-insensitive.
func GenerateStudentReport(userID string, in Inputs) *StudentReport {
	perf, ok := findPerformance(userID, in.Performance)
	if !ok {
		return nil
	}
	curve, ok := findCurve(userID, in.Curves)
	if !ok {
		return nil
	}
	series := seriesFor(userID, in.Series)

	topics := BuildTopicTable(userID, in.Submissions, in.ExcludedIDs, in.TopicNamer)
	momentum := ComputeMomentum(series)
	wins, focus := ExtractSignals(perf, curve, topics, momentum)
	highlights := SynthesizeHighlights(wins, focus)

	topicWins := selectTopicWins(topics)
	topicFocus := selectTopicFocus(topics)
	nextSteps := PlanNextSteps(perf, curve, topicFocus, momentum)

	return &StudentReport{
		UserID:           userID,
		Segment:          perf.Segment,
		CurveLabel:       curve.EasingLabel,
		Highlights:       highlights,
		Momentum:         momentum,
		TopicWins:        topicWins,
		TopicFocus:       topicFocus,
		CurveExplanation: CurveExplanation(curve.EasingLabel),
		NextSteps:        nextSteps,
		Performance:      perf,
		Curve:            curve,
		Topics:           topics,
		Series:           series,
	}
}

func findPerformance(userID string, rows []PerformanceRow) (PerformanceRow, bool) {
	for _, r := range rows {
		if r.UserID == userID {
			return r, true
		}
	}
	return PerformanceRow{}, false
}

func findCurve(userID string, rows []CurveSummary) (CurveSummary, bool) {
	for _, r := range rows {
		if r.UserID == userID {
			return r, true
		}
	}
	return CurveSummary{}, false
}

func seriesFor(userID string, series []SeriesPoint) []SeriesPoint {
	var out []SeriesPoint
	for _, p := range series {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out
}

// selectTopicWins picks up to three Comfortable topics, best first-pass
// rate first, fewer attempts breaking ties.
func selectTopicWins(topics []StudentTopic) []StudentTopic {
	var wins []StudentTopic
	for _, t := range topics {
		if t.Label == LabelComfortable {
			wins = append(wins, t)
		}
	}
	sort.SliceStable(wins, func(i, j int) bool {
		if wins[i].FirstPassRate != wins[j].FirstPassRate {
			return wins[i].FirstPassRate > wins[j].FirstPassRate
		}
		return wins[i].AttemptsPer < wins[j].AttemptsPer
	})
	if len(wins) > maxDisplayTopics {
		wins = wins[:maxDisplayTopics]
	}
	return wins
}

// selectTopicFocus picks up to three Attention/Watch topics. The table is
// already score-descending, so input order is the ranking.
func selectTopicFocus(topics []StudentTopic) []StudentTopic {
	var focus []StudentTopic
	for _, t := range topics {
		if t.Label == LabelAttention || t.Label == LabelWatch {
			focus = append(focus, t)
		}
		if len(focus) == maxDisplayTopics {
			break
		}
	}
	return focus
}
