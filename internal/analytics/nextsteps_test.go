package analytics

import (
	"strings"
	"testing"
)

func TestPlanNextSteps_TopFocusTopicFirst(t *testing.T) {
	focus := []StudentTopic{
		{Title: "Pointers", Score: 3.0},
		{Title: "Slices", Score: 1.2},
	}
	steps := PlanNextSteps(PerformanceRow{SuccessRate: 90}, CurveSummary{}, focus, Momentum{Trend: TrendFlat})
	if len(steps) == 0 || !strings.Contains(steps[0], "Pointers") {
		t.Fatalf("steps = %v, want first step to name the top-scored focus topic", steps)
	}
}

func TestPlanNextSteps_DownMomentum(t *testing.T) {
	steps := PlanNextSteps(PerformanceRow{SuccessRate: 90}, CurveSummary{}, nil, Momentum{Trend: TrendDown})
	found := false
	for _, s := range steps {
		if strings.Contains(s, "20-30 min") {
			found = true
		}
	}
	if !found {
		t.Errorf("steps = %v, want a short-sessions recommendation", steps)
	}
}

func TestPlanNextSteps_LowMeetingAttendance(t *testing.T) {
	tests := []struct {
		pct  float64
		want bool
	}{
		{0, false}, // zero attendance does not trigger the rule
		{20, true},
		{39.9, true},
		{40, false},
		{80, false},
	}
	for _, tt := range tests {
		steps := PlanNextSteps(PerformanceRow{MeetingsAttendedPct: tt.pct, SuccessRate: 90}, CurveSummary{}, nil, Momentum{Trend: TrendFlat})
		found := false
		for _, s := range steps {
			if strings.Contains(s, "live session") {
				found = true
			}
		}
		if found != tt.want {
			t.Errorf("meetings_attended_pct=%v: live-session step present=%v, want %v", tt.pct, found, tt.want)
		}
	}
}

func TestPlanNextSteps_FallbackWhenNothingFired(t *testing.T) {
	// Consistent student: keep-rhythm fallback, then the pairing rule.
	steps := PlanNextSteps(PerformanceRow{SuccessRate: 90}, CurveSummary{Consistency: 0.7}, nil, Momentum{Trend: TrendFlat})
	if len(steps) != 2 {
		t.Fatalf("steps = %v, want exactly 2 (fallback + pairing)", steps)
	}
	if !strings.Contains(steps[0], "rhythm") {
		t.Errorf("steps[0] = %q, want keep-rhythm fallback", steps[0])
	}

	// Inconsistent student gets the shorter-sessions variant.
	steps = PlanNextSteps(PerformanceRow{SuccessRate: 90}, CurveSummary{Consistency: 0.2}, nil, Momentum{Trend: TrendFlat})
	if !strings.Contains(steps[0], "shorter") {
		t.Errorf("steps[0] = %q, want shorter-sessions fallback", steps[0])
	}
}

func TestPlanNextSteps_PairingRule(t *testing.T) {
	focus := []StudentTopic{{Title: "Maps", Score: 2.0}}

	// One entry from rule 1, success rate below 70: understanding step added.
	steps := PlanNextSteps(PerformanceRow{SuccessRate: 60}, CurveSummary{}, focus, Momentum{Trend: TrendFlat})
	if len(steps) != 2 || !strings.Contains(steps[1], "understanding") {
		t.Fatalf("steps = %v, want understanding follow-up", steps)
	}

	// High success rate: challenge step instead.
	steps = PlanNextSteps(PerformanceRow{SuccessRate: 85}, CurveSummary{}, focus, Momentum{Trend: TrendFlat})
	if len(steps) != 2 || !strings.Contains(steps[1], "challenging") {
		t.Fatalf("steps = %v, want keep-challenging follow-up", steps)
	}
}

func TestPlanNextSteps_CappedAtThree(t *testing.T) {
	focus := []StudentTopic{{Title: "Maps", Score: 2.0}}
	perf := PerformanceRow{MeetingsAttendedPct: 10, SuccessRate: 50}
	steps := PlanNextSteps(perf, CurveSummary{}, focus, Momentum{Trend: TrendDown})
	if len(steps) != 3 {
		t.Fatalf("steps = %v, want exactly 3", steps)
	}
}
