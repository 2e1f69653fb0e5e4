package analytics

import (
	"reflect"
	"testing"
)

// fullInputs builds a consistent dataset for student u1: two topics of
// submissions, a performance row, an ease-out curve, and a 20-day series
// trending up.
func fullInputs() Inputs {
	totals := []float64{
		1, 1, 1, 1, 1, 1,
		4, 6, 6, 6, 6, 6, 6,
		8, 7, 7, 7, 7, 7, 7,
	}
	return Inputs{
		Submissions: strugglingStudentSubs(),
		Performance: []PerformanceRow{{
			UserID:              "u1",
			Segment:             "steady-improver",
			TotalPct:            85,
			SuccessRate:         75,
			ConsistencyIndex:    0.6,
			StruggleIndex:       0.2,
			ActiveDaysRatio:     0.5,
			MeetingsAttendedPct: 80,
		}},
		Curves: []CurveSummary{{
			UserID:      "u1",
			EasingLabel: CurveEaseOut,
			Consistency: 0.4,
			Burstiness:  0.8,
			T25:         0.2,
			T50:         0.5,
			T75:         0.7,
		}},
		Series: dailySeries("u1", totals),
	}
}

func TestGenerateStudentReport_UnknownStudent(t *testing.T) {
	if got := GenerateStudentReport("nobody", fullInputs()); got != nil {
		t.Fatalf("expected nil report for unknown student, got %+v", got)
	}
}

func TestGenerateStudentReport_LookupIsCaseSensitive(t *testing.T) {
	// The submission filter is case-insensitive but the row lookup is not.
	if got := GenerateStudentReport("U1", fullInputs()); got != nil {
		t.Fatalf("expected nil report for case-mismatched id, got %+v", got)
	}
}

func TestGenerateStudentReport_MissingCurveRow(t *testing.T) {
	in := fullInputs()
	in.Curves = nil
	if got := GenerateStudentReport("u1", in); got != nil {
		t.Fatal("expected nil report when the curve row is missing")
	}
}

func TestGenerateStudentReport_Assembly(t *testing.T) {
	rep := GenerateStudentReport("u1", fullInputs())
	if rep == nil {
		t.Fatal("expected a report")
	}

	if rep.UserID != "u1" || rep.Segment != "steady-improver" || rep.CurveLabel != CurveEaseOut {
		t.Errorf("identity fields = %q/%q/%q", rep.UserID, rep.Segment, rep.CurveLabel)
	}
	if rep.Momentum.Trend != TrendUp {
		t.Errorf("momentum trend = %s, want up", rep.Momentum.Trend)
	}
	if rep.CurveExplanation != CurveExplanation(CurveEaseOut) {
		t.Errorf("curve explanation = %q", rep.CurveExplanation)
	}
	if len(rep.Topics) != 2 {
		t.Errorf("topics = %d, want 2", len(rep.Topics))
	}
	// Pass-through of the raw rows.
	if rep.Performance.TotalPct != 85 || rep.Curve.T75 != 0.7 {
		t.Error("raw performance/curve rows not passed through")
	}
	if len(rep.Series) != 20 {
		t.Errorf("series pass-through = %d points, want 20", len(rep.Series))
	}
}

func TestGenerateStudentReport_Bounds(t *testing.T) {
	rep := GenerateStudentReport("u1", fullInputs())
	if rep == nil {
		t.Fatal("expected a report")
	}
	if len(rep.Highlights) > 5 {
		t.Errorf("highlights = %d, want <= 5", len(rep.Highlights))
	}
	if len(rep.NextSteps) > 3 {
		t.Errorf("next steps = %d, want <= 3", len(rep.NextSteps))
	}
	if len(rep.TopicWins) > 3 {
		t.Errorf("topic wins = %d, want <= 3", len(rep.TopicWins))
	}
	if len(rep.TopicFocus) > 3 {
		t.Errorf("topic focus = %d, want <= 3", len(rep.TopicFocus))
	}
	if len(rep.Highlights) == 0 || rep.Highlights[0].Kind != HighlightWin {
		t.Error("first highlight must be a win")
	}
}

func TestGenerateStudentReport_Deterministic(t *testing.T) {
	a := GenerateStudentReport("u1", fullInputs())
	b := GenerateStudentReport("u1", fullInputs())
	if !reflect.DeepEqual(a, b) {
		t.Error("identical inputs produced different reports")
	}
}

func TestSelectTopicWins_TieBreak(t *testing.T) {
	topics := []StudentTopic{
		{Title: "A", Label: LabelComfortable, FirstPassRate: 0.8, AttemptsPer: 2.0},
		{Title: "B", Label: LabelComfortable, FirstPassRate: 0.8, AttemptsPer: 1.5},
		{Title: "C", Label: LabelComfortable, FirstPassRate: 0.9, AttemptsPer: 3.0},
		{Title: "D", Label: LabelAttention, FirstPassRate: 1.0},
		{Title: "E", Label: LabelComfortable, FirstPassRate: 0.7, AttemptsPer: 1.0},
	}
	wins := selectTopicWins(topics)
	if len(wins) != 3 {
		t.Fatalf("wins = %d, want 3", len(wins))
	}
	// C (0.9) first, then B before A (same rate, fewer attempts).
	if wins[0].Title != "C" || wins[1].Title != "B" || wins[2].Title != "A" {
		t.Errorf("win order = %s, %s, %s; want C, B, A", wins[0].Title, wins[1].Title, wins[2].Title)
	}
}

func TestSelectTopicFocus_KeepsTableOrder(t *testing.T) {
	topics := []StudentTopic{
		{Title: "A", Label: LabelAttention, Score: 4},
		{Title: "B", Label: LabelComfortable, Score: 3},
		{Title: "C", Label: LabelWatch, Score: 2},
		{Title: "D", Label: LabelAttention, Score: 1},
		{Title: "E", Label: LabelWatch, Score: 0.5},
	}
	focus := selectTopicFocus(topics)
	if len(focus) != 3 {
		t.Fatalf("focus = %d, want 3", len(focus))
	}
	if focus[0].Title != "A" || focus[1].Title != "C" || focus[2].Title != "D" {
		t.Errorf("focus order = %s, %s, %s; want A, C, D", focus[0].Title, focus[1].Title, focus[2].Title)
	}
}

func TestCurveExplanation_UnknownLabel(t *testing.T) {
	if CurveExplanation("wobbly") != curveExplanationDefault {
		t.Error("unknown label should get the default explanation")
	}
	for _, label := range []string{CurveLinear, CurveEase, CurveEaseIn, CurveEaseOut, CurveEaseInOut, CurveNoActivity} {
		if CurveExplanation(label) == curveExplanationDefault {
			t.Errorf("label %q should have its own explanation", label)
		}
	}
}
