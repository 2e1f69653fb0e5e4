package batch

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/abelsk/learnpulse/internal/analytics"
)

// cohortInputs builds inputs for n students (u0..u(n-1)), each with a
// performance row, a curve row, and a small submission log.
func cohortInputs(n int) analytics.Inputs {
	var in analytics.Inputs
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("u%d", i)
		in.Performance = append(in.Performance, analytics.PerformanceRow{
			UserID: id, TotalPct: 50, SuccessRate: 75,
		})
		in.Curves = append(in.Curves, analytics.CurveSummary{
			UserID: id, EasingLabel: analytics.CurveLinear, Burstiness: 0.9,
		})
		in.Submissions = append(in.Submissions,
			analytics.Submission{UserID: id, StepID: "10", Status: "correct"},
			analytics.Submission{UserID: id, StepID: "11", Status: "wrong"},
		)
	}
	return in
}

func TestRun_AllStudents(t *testing.T) {
	in := cohortInputs(20)
	ids := UserIDs(in.Performance)

	out, err := Run(context.Background(), ids, in, 4)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(out.Reports) != 20 {
		t.Fatalf("reports = %d, want 20", len(out.Reports))
	}
	if len(out.NotFound) != 0 {
		t.Errorf("not found = %v, want none", out.NotFound)
	}
	for i := 1; i < len(out.Reports); i++ {
		if out.Reports[i].UserID < out.Reports[i-1].UserID {
			t.Fatal("reports not sorted by user id")
		}
	}
}

func TestRun_NotFoundCollected(t *testing.T) {
	in := cohortInputs(3)
	ids := append(UserIDs(in.Performance), "ghost-1", "ghost-0")

	out, err := Run(context.Background(), ids, in, 2)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(out.Reports) != 3 {
		t.Errorf("reports = %d, want 3", len(out.Reports))
	}
	if !reflect.DeepEqual(out.NotFound, []string{"ghost-0", "ghost-1"}) {
		t.Errorf("not found = %v, want sorted ghosts", out.NotFound)
	}
}

func TestRun_DeterministicAcrossConcurrency(t *testing.T) {
	in := cohortInputs(10)
	ids := UserIDs(in.Performance)

	serial, err := Run(context.Background(), ids, in, 1)
	if err != nil {
		t.Fatal(err)
	}
	parallel, err := Run(context.Background(), ids, in, 8)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(serial, parallel) {
		t.Error("outcome depends on concurrency level")
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := cohortInputs(5)
	if _, err := Run(ctx, UserIDs(in.Performance), in, 2); err == nil {
		t.Error("expected error from cancelled context")
	}
}

func TestUserIDs_Dedupes(t *testing.T) {
	rows := []analytics.PerformanceRow{
		{UserID: "b"}, {UserID: "a"}, {UserID: "b"},
	}
	if got := UserIDs(rows); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("ids = %v, want [a b]", got)
	}
}
