package analytics

import "testing"

// quietCurve triggers no curve-based win signals on its own.
func quietCurve() CurveSummary {
	return CurveSummary{
		UserID:      "u1",
		EasingLabel: CurveLinear,
		Burstiness:  0.9,
	}
}

func signalOfType(signals []Signal, typ string) (Signal, bool) {
	for _, s := range signals {
		if s.Type == typ {
			return s, true
		}
	}
	return Signal{}, false
}

func TestExtractSignals_AchievementAndConsistency(t *testing.T) {
	perf := PerformanceRow{UserID: "u1", TotalPct: 85}
	curve := quietCurve()
	curve.Consistency = 0.6

	wins, _ := ExtractSignals(perf, curve, nil, Momentum{Trend: TrendFlat})

	ach, ok := signalOfType(wins, SignalAchievement)
	if !ok {
		t.Fatal("expected achievement win")
	}
	if !almostEqual(ach.Score, 85) {
		t.Errorf("achievement score = %f, want 85", ach.Score)
	}

	cons, ok := signalOfType(wins, SignalConsistency)
	if !ok {
		t.Fatal("expected consistency win")
	}
	if !almostEqual(cons.Score, 60) {
		t.Errorf("consistency score = %f, want 60", cons.Score)
	}
}

func TestExtractSignals_AchievementFromSuccessRate(t *testing.T) {
	perf := PerformanceRow{UserID: "u1", TotalPct: 50, SuccessRate: 90}
	wins, _ := ExtractSignals(perf, quietCurve(), nil, Momentum{Trend: TrendFlat})
	ach, ok := signalOfType(wins, SignalAchievement)
	if !ok {
		t.Fatal("expected achievement win from success_rate >= 85")
	}
	if !almostEqual(ach.Score, 90) {
		t.Errorf("achievement score = %f, want max(total_pct, success_rate) = 90", ach.Score)
	}
}

func TestExtractSignals_SteadyAndEarlyProgress(t *testing.T) {
	curve := CurveSummary{Burstiness: 0.2, FrontloadIndex: 0.3}
	wins, _ := ExtractSignals(PerformanceRow{}, curve, nil, Momentum{Trend: TrendFlat})

	steady, ok := signalOfType(wins, SignalSteady)
	if !ok {
		t.Fatal("expected steady win for burstiness <= 0.6")
	}
	if !almostEqual(steady.Score, 80) {
		t.Errorf("steady score = %f, want (1-0.2)*100 = 80", steady.Score)
	}

	early, ok := signalOfType(wins, SignalEarlyProgress)
	if !ok {
		t.Fatal("expected early_progress win for frontload >= 0.10")
	}
	if !almostEqual(early.Score, 30) {
		t.Errorf("early_progress score = %f, want 30", early.Score)
	}
}

func TestExtractSignals_TopicWinsCappedAtTwo(t *testing.T) {
	topics := []StudentTopic{
		{Title: "A", Label: LabelComfortable, FirstPassRate: 0.9},
		{Title: "B", Label: LabelComfortable, FirstPassRate: 0.8},
		{Title: "C", Label: LabelComfortable, FirstPassRate: 0.75},
		{Title: "D", Label: LabelComfortable, FirstPassRate: 0.5}, // below 0.7
	}
	wins, _ := ExtractSignals(PerformanceRow{}, quietCurve(), topics, Momentum{Trend: TrendFlat})

	count := 0
	for _, s := range wins {
		if s.Type == SignalTopicWin {
			count++
		}
	}
	if count != 2 {
		t.Errorf("topic_win count = %d, want 2 (first two qualifying topics)", count)
	}
}

func TestExtractSignals_TopicFocus(t *testing.T) {
	topics := []StudentTopic{
		{Title: "Hard", Label: LabelAttention, Score: 3.5},
		{Title: "Shaky", Label: LabelWatch, Score: 1.4},
		{Title: "Fine", Label: LabelComfortable, Score: 0},
		{Title: "AlsoHard", Label: LabelAttention, Score: 0.2},
	}
	_, focus := ExtractSignals(PerformanceRow{}, quietCurve(), topics, Momentum{Trend: TrendFlat})

	var got []Signal
	for _, s := range focus {
		if s.Type == SignalTopicFocus {
			got = append(got, s)
		}
	}
	if len(got) != 2 {
		t.Fatalf("topic_focus count = %d, want 2", len(got))
	}
	if got[0].Detail != "Hard" || !almostEqual(got[0].Score, 3.5) {
		t.Errorf("first focus = %+v, want topic Hard score 3.5", got[0])
	}
	if got[1].Detail != "Shaky" {
		t.Errorf("second focus detail = %q, want Shaky (table order)", got[1].Detail)
	}
}

func TestExtractSignals_FocusRules(t *testing.T) {
	perf := PerformanceRow{StruggleIndex: 0.7, ActiveDaysRatio: 0.2}
	momentum := Momentum{Trend: TrendDown, Delta: -0.4}
	_, focus := ExtractSignals(perf, quietCurve(), nil, momentum)

	struggle, ok := signalOfType(focus, SignalStruggle)
	if !ok || !almostEqual(struggle.Score, 70) {
		t.Errorf("struggle = %+v ok=%v, want score 70", struggle, ok)
	}
	low, ok := signalOfType(focus, SignalLowConsistency)
	if !ok || !almostEqual(low.Score, 80) {
		t.Errorf("low_consistency = %+v ok=%v, want score 80", low, ok)
	}
	down, ok := signalOfType(focus, SignalMomentumDown)
	if !ok || !almostEqual(down.Score, 40) {
		t.Errorf("momentum_down = %+v ok=%v, want score 40", down, ok)
	}
}

func TestExtractSignals_LateStart(t *testing.T) {
	curve := quietCurve()
	curve.EasingLabel = CurveEaseIn
	curve.T25 = 0.5
	_, focus := ExtractSignals(PerformanceRow{}, curve, nil, Momentum{Trend: TrendFlat})

	late, ok := signalOfType(focus, SignalLateStart)
	if !ok || !almostEqual(late.Score, 50) {
		t.Errorf("late_start = %+v ok=%v, want score 50", late, ok)
	}
}

func TestExtractSignals_EndDropoffNeedsAllConditions(t *testing.T) {
	curve := quietCurve()
	curve.EasingLabel = CurveEaseOut
	curve.T75 = 0.5

	// Momentum flat: rule must not fire.
	_, focus := ExtractSignals(PerformanceRow{}, curve, nil, Momentum{Trend: TrendFlat})
	if _, ok := signalOfType(focus, SignalEndDropoff); ok {
		t.Error("end_dropoff fired without downward momentum")
	}

	_, focus = ExtractSignals(PerformanceRow{}, curve, nil, Momentum{Trend: TrendDown, Delta: -0.2})
	drop, ok := signalOfType(focus, SignalEndDropoff)
	if !ok || !almostEqual(drop.Score, 50) {
		t.Errorf("end_dropoff = %+v ok=%v, want score (1-0.5)*100 = 50", drop, ok)
	}
}
