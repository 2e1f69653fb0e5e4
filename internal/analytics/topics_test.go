package analytics

import (
	"math"
	"testing"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func sub(user, step, status string) Submission {
	return Submission{UserID: user, StepID: step, Status: status}
}

// strugglingStudentSubs builds a two-topic log for u1: topic bucket 1 where
// every first attempt fails (3 attempts per step), and bucket 2 solved on
// the first try.
func strugglingStudentSubs() []Submission {
	return []Submission{
		sub("u1", "10", "wrong"), sub("u1", "10", "wrong"), sub("u1", "10", "correct"),
		sub("u1", "11", "wrong"), sub("u1", "11", "wrong"), sub("u1", "11", "correct"),
		sub("u1", "12", "wrong"), sub("u1", "12", "wrong"), sub("u1", "12", "correct"),
		sub("u1", "20", "correct"),
		sub("u1", "21", "correct"),
	}
}

func TestBuildTopicTable_Empty(t *testing.T) {
	if got := BuildTopicTable("u1", nil, nil, nil); got != nil {
		t.Fatalf("expected nil table for empty submissions, got %v", got)
	}
}

func TestBuildTopicTable_NoStepsForUser(t *testing.T) {
	subs := []Submission{sub("other", "10", "correct")}
	if got := BuildTopicTable("u1", subs, nil, nil); got != nil {
		t.Fatalf("expected nil table when user has no rows, got %v", got)
	}
}

func TestBuildTopicTable_Metrics(t *testing.T) {
	table := BuildTopicTable("u1", strugglingStudentSubs(), nil, nil)
	if len(table) != 2 {
		t.Fatalf("expected 2 topics, got %d", len(table))
	}

	// 5 steps, 11 attempts total, 2 first-pass steps:
	// baseline avgAttempts=2.2, avgFirstPass=0.4.
	hard := table[0]
	if hard.StepsAttempted != 3 {
		t.Errorf("hard topic steps = %d, want 3", hard.StepsAttempted)
	}
	if !almostEqual(hard.AttemptsPer, 3.0) {
		t.Errorf("hard attempts_per_step = %f, want 3.0", hard.AttemptsPer)
	}
	if !almostEqual(hard.FirstPassRate, 0.0) {
		t.Errorf("hard first_pass_rate = %f, want 0.0", hard.FirstPassRate)
	}
	if !almostEqual(hard.DeltaAttempts, 0.8) {
		t.Errorf("hard delta_attempts = %f, want 0.8", hard.DeltaAttempts)
	}
	if !almostEqual(hard.DeltaFirst, -0.4) {
		t.Errorf("hard delta_first = %f, want -0.4", hard.DeltaFirst)
	}
	// 0.8*0.5 - (-0.4)*2 = 1.2
	if !almostEqual(hard.Score, 1.2) {
		t.Errorf("hard score = %f, want 1.2", hard.Score)
	}
	if hard.Label != LabelAttention {
		t.Errorf("hard label = %s, want Attention (first_pass_rate < 0.4)", hard.Label)
	}

	easy := table[1]
	if !almostEqual(easy.Score, 0.0) {
		t.Errorf("easy score = %f, want 0.0 (clamped)", easy.Score)
	}
	if easy.Label != LabelComfortable {
		t.Errorf("easy label = %s, want Comfortable", easy.Label)
	}
}

func TestBuildTopicTable_SortedByScoreDescending(t *testing.T) {
	table := BuildTopicTable("u1", strugglingStudentSubs(), nil, nil)
	for i := 1; i < len(table); i++ {
		if table[i].Score > table[i-1].Score {
			t.Fatalf("table not sorted descending at index %d: %f > %f",
				i, table[i].Score, table[i-1].Score)
		}
	}
}

func TestBuildTopicTable_ScoreNeverNegative(t *testing.T) {
	table := BuildTopicTable("u1", strugglingStudentSubs(), nil, nil)
	for _, topic := range table {
		if topic.Score < 0 {
			t.Errorf("topic %q score = %f, want >= 0", topic.Title, topic.Score)
		}
	}
}

func TestBuildTopicTable_CaseInsensitiveUser(t *testing.T) {
	subs := []Submission{sub("U1", "10", "CORRECT")}
	table := BuildTopicTable("u1", subs, nil, nil)
	if len(table) != 1 {
		t.Fatalf("expected 1 topic for case-mismatched user id, got %d", len(table))
	}
	if !almostEqual(table[0].FirstPassRate, 1.0) {
		t.Errorf("first_pass_rate = %f, want 1.0 (status matched case-insensitively)", table[0].FirstPassRate)
	}
}

func TestBuildTopicTable_ExcludedUser(t *testing.T) {
	subs := []Submission{sub("u1", "10", "correct")}
	if got := BuildTopicTable("u1", subs, []string{"U1"}, nil); got != nil {
		t.Fatalf("expected nil table for excluded user, got %v", got)
	}
}

func TestBuildTopicTable_DropsRowsWithoutStepID(t *testing.T) {
	subs := []Submission{
		sub("u1", "", "correct"),
		sub("u1", "  ", "correct"),
		sub("u1", "10", "correct"),
	}
	table := BuildTopicTable("u1", subs, nil, nil)
	if len(table) != 1 || table[0].StepsAttempted != 1 {
		t.Fatalf("expected exactly 1 step to survive, got %+v", table)
	}
}

func TestBuildTopicTable_FirstAttemptByInputOrder(t *testing.T) {
	// First event for step 10 is wrong, later one correct: the step is not
	// first-pass even though a correct attempt exists.
	subs := []Submission{
		sub("u1", "10", "wrong"),
		sub("u1", "10", "correct"),
	}
	table := BuildTopicTable("u1", subs, nil, nil)
	if !almostEqual(table[0].FirstPassRate, 0.0) {
		t.Errorf("first_pass_rate = %f, want 0.0", table[0].FirstPassRate)
	}
}

func TestBuildTopicTable_CustomNamer(t *testing.T) {
	namer := func(bucket, lo, hi int) string {
		if bucket == 1 {
			return "Loops"
		}
		return ""
	}
	subs := []Submission{
		sub("u1", "10", "correct"),
		sub("u1", "20", "correct"),
	}
	table := BuildTopicTable("u1", subs, nil, namer)
	titles := map[string]bool{}
	for _, topic := range table {
		titles[topic.Title] = true
	}
	if !titles["Loops"] {
		t.Errorf("expected namer title for bucket 1, got %v", titles)
	}
	if !titles["Topic 3 (steps 20-29)"] {
		t.Errorf("expected default title for bucket 2, got %v", titles)
	}
}

func TestTopicBucket(t *testing.T) {
	tests := []struct {
		stepID string
		want   int
	}{
		{"12", 1},
		{"9", 0},
		{"step-42", 4},
		{"lesson3step128", 312}, // all digits concatenate: 3128/10
		{"abc", 0},
		{"120", 12},
	}
	for _, tt := range tests {
		if got := topicBucket(tt.stepID); got != tt.want {
			t.Errorf("topicBucket(%q) = %d, want %d", tt.stepID, got, tt.want)
		}
	}
}

func TestTopicLabel(t *testing.T) {
	tests := []struct {
		score     float64
		firstPass float64
		want      TopicLabel
	}{
		{2.5, 0.9, LabelAttention},  // score > 2
		{0.0, 0.3, LabelAttention},  // first pass < 0.4 regardless of score
		{1.5, 0.9, LabelWatch},      // score > 1
		{0.0, 0.5, LabelWatch},      // first pass < 0.6
		{0.5, 0.8, LabelComfortable},
		{2.0, 0.6, LabelWatch},      // boundary: score == 2 is not Attention
		{1.0, 0.6, LabelComfortable}, // boundary: score == 1 is not Watch
	}
	for _, tt := range tests {
		if got := topicLabel(tt.score, tt.firstPass); got != tt.want {
			t.Errorf("topicLabel(%f, %f) = %s, want %s", tt.score, tt.firstPass, got, tt.want)
		}
	}
}
