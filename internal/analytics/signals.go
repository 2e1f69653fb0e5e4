package analytics

import "math"

// Signal types known to the highlight templates.
const (
	SignalAchievement    = "achievement"
	SignalConsistency    = "consistency"
	SignalSteady         = "steady"
	SignalEarlyProgress  = "early_progress"
	SignalTopicWin       = "topic_win"
	SignalTopicFocus     = "topic_focus"
	SignalStruggle       = "struggle"
	SignalLowConsistency = "low_consistency"
	SignalMomentumDown   = "momentum_down"
	SignalLateStart      = "late_start"
	SignalEndDropoff     = "end_dropoff"
)

// Per-signal trigger thresholds.
const (
	achievementTotalPctMin    = 80.0
	achievementSuccessRateMin = 85.0
	consistencyIndexMin       = 0.5
	steadyBurstinessMax       = 0.6
	earlyFrontloadMin         = 0.10
	topicWinFirstPassMin      = 0.7
	struggleIndexMin          = 0.6
	lowActiveDaysRatioMax     = 0.3
	lateStartT25Min           = 0.4
	endDropoffT75Max          = 0.6
)

// maxTopicSignals caps how many topic_win / topic_focus signals fire.
const maxTopicSignals = 2

// ExtractSignals derives the win and focus signal lists from the performance
// row, curve summary, topic table and momentum. Each rule is evaluated
// independently; every applicable rule fires. Neither list is sorted here.
func ExtractSignals(perf PerformanceRow, curve CurveSummary, topics []StudentTopic, momentum Momentum) (wins, focus []Signal) {
	// Wins.
	if perf.TotalPct >= achievementTotalPctMin || perf.SuccessRate >= achievementSuccessRateMin {
		wins = append(wins, Signal{
			Type:  SignalAchievement,
			Score: math.Max(perf.TotalPct, perf.SuccessRate),
		})
	}
	if perf.ConsistencyIndex >= consistencyIndexMin || curve.Consistency >= consistencyIndexMin {
		wins = append(wins, Signal{
			Type:  SignalConsistency,
			Score: math.Max(perf.ConsistencyIndex, curve.Consistency) * 100,
		})
	}
	if curve.Burstiness <= steadyBurstinessMax {
		wins = append(wins, Signal{
			Type:  SignalSteady,
			Score: (1 - curve.Burstiness) * 100,
		})
	}
	if curve.FrontloadIndex >= earlyFrontloadMin {
		wins = append(wins, Signal{
			Type:  SignalEarlyProgress,
			Score: curve.FrontloadIndex * 100,
		})
	}
	winTopics := 0
	for _, t := range topics {
		if winTopics >= maxTopicSignals {
			break
		}
		if t.Label == LabelComfortable && t.FirstPassRate >= topicWinFirstPassMin {
			wins = append(wins, Signal{
				Type:   SignalTopicWin,
				Score:  t.FirstPassRate * 100,
				Detail: t.Title,
			})
			winTopics++
		}
	}

	// Focus. The topic table is already sorted score-descending, so the
	// first two Attention/Watch topics are the top-scored ones.
	focusTopics := 0
	for _, t := range topics {
		if focusTopics >= maxTopicSignals {
			break
		}
		if t.Label == LabelAttention || t.Label == LabelWatch {
			focus = append(focus, Signal{
				Type:   SignalTopicFocus,
				Score:  t.Score,
				Detail: t.Title,
			})
			focusTopics++
		}
	}
	if perf.StruggleIndex >= struggleIndexMin {
		focus = append(focus, Signal{
			Type:  SignalStruggle,
			Score: perf.StruggleIndex * 100,
		})
	}
	if perf.ActiveDaysRatio < lowActiveDaysRatioMax {
		focus = append(focus, Signal{
			Type:  SignalLowConsistency,
			Score: (1 - perf.ActiveDaysRatio) * 100,
		})
	}
	if momentum.Trend == TrendDown {
		focus = append(focus, Signal{
			Type:  SignalMomentumDown,
			Score: math.Abs(momentum.Delta) * 100,
		})
	}
	if curve.EasingLabel == CurveEaseIn && curve.T25 > lateStartT25Min {
		focus = append(focus, Signal{
			Type:  SignalLateStart,
			Score: curve.T25 * 100,
		})
	}
	if curve.EasingLabel == CurveEaseOut && curve.T75 < endDropoffT75Max && momentum.Trend == TrendDown {
		focus = append(focus, Signal{
			Type:  SignalEndDropoff,
			Score: (1 - curve.T75) * 100,
		})
	}

	return wins, focus
}
