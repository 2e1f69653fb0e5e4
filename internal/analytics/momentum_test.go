package analytics

import (
	"fmt"
	"strings"
	"testing"
)

// dailySeries builds an n-day series for January 2024 with the given
// per-day totals.
func dailySeries(user string, totals []float64) []SeriesPoint {
	points := make([]SeriesPoint, len(totals))
	for i, v := range totals {
		points[i] = SeriesPoint{
			UserID:        user,
			DateISO:       fmt.Sprintf("2024-01-%02d", i+1),
			ActivityTotal: v,
		}
	}
	return points
}

func TestComputeMomentum_TooFewDays(t *testing.T) {
	m := ComputeMomentum(dailySeries("u1", make([]float64, 10)))
	if m.Trend != TrendUnknown {
		t.Errorf("trend = %s, want unknown", m.Trend)
	}
	if m.Delta != 0 {
		t.Errorf("delta = %f, want 0", m.Delta)
	}
	if !strings.Contains(m.Note, "Not enough data") {
		t.Errorf("note = %q, want a not-enough-data explanation", m.Note)
	}
}

func TestComputeMomentum_UnknownIffUnder14Days(t *testing.T) {
	for n := 0; n <= 20; n++ {
		m := ComputeMomentum(dailySeries("u1", make([]float64, n)))
		gotUnknown := m.Trend == TrendUnknown
		if gotUnknown != (n < 14) {
			t.Errorf("%d days: trend = %s, unknown should hold iff days < 14", n, m.Trend)
		}
	}
}

func TestComputeMomentum_Up(t *testing.T) {
	// 20 days: days 7-13 sum to 40, days 14-20 sum to 50 -> delta 0.25.
	totals := []float64{
		1, 1, 1, 1, 1, 1,
		4, 6, 6, 6, 6, 6, 6,
		8, 7, 7, 7, 7, 7, 7,
	}
	m := ComputeMomentum(dailySeries("u1", totals))
	if m.Trend != TrendUp {
		t.Errorf("trend = %s, want up", m.Trend)
	}
	if !almostEqual(m.Delta, 0.25) {
		t.Errorf("delta = %f, want 0.25", m.Delta)
	}
	if !strings.Contains(m.Note, "25%") || !strings.Contains(m.Note, "increased") {
		t.Errorf("note = %q, want mention of 25%% increase", m.Note)
	}
}

func TestComputeMomentum_Down(t *testing.T) {
	totals := []float64{
		0, 0, 0, 0, 0, 0, 0,
		10, 10, 10, 10, 10, 10, 10, // prev7 = 70
		5, 5, 5, 5, 5, 5, 5, // last7 = 35, delta -0.5
	}
	m := ComputeMomentum(dailySeries("u1", totals))
	if m.Trend != TrendDown {
		t.Errorf("trend = %s, want down", m.Trend)
	}
	if !almostEqual(m.Delta, -0.5) {
		t.Errorf("delta = %f, want -0.5", m.Delta)
	}
	if !strings.Contains(m.Note, "50%") || !strings.Contains(m.Note, "decreased") {
		t.Errorf("note = %q, want mention of 50%% decrease", m.Note)
	}
}

func TestComputeMomentum_Flat(t *testing.T) {
	totals := make([]float64, 14)
	for i := range totals {
		totals[i] = 5
	}
	m := ComputeMomentum(dailySeries("u1", totals))
	if m.Trend != TrendFlat {
		t.Errorf("trend = %s, want flat", m.Trend)
	}
	if !strings.Contains(m.Note, "similar") {
		t.Errorf("note = %q, want a similar-to-last-week note", m.Note)
	}
}

func TestComputeMomentum_ZeroPreviousWeek(t *testing.T) {
	totals := make([]float64, 14)
	for i := 7; i < 14; i++ {
		totals[i] = 10
	}
	m := ComputeMomentum(dailySeries("u1", totals))
	if m.Trend != TrendFlat || m.Delta != 0 {
		t.Errorf("got trend=%s delta=%f, want flat/0 when prev week is empty", m.Trend, m.Delta)
	}
}

func TestComputeMomentum_OrderIndependent(t *testing.T) {
	totals := []float64{
		1, 1, 1, 1, 1, 1,
		4, 6, 6, 6, 6, 6, 6,
		8, 7, 7, 7, 7, 7, 7,
	}
	points := dailySeries("u1", totals)

	shuffled := make([]SeriesPoint, 0, len(points))
	for i := len(points) - 1; i >= 0; i-- {
		shuffled = append(shuffled, points[i])
	}

	a := ComputeMomentum(points)
	b := ComputeMomentum(shuffled)
	if a != b {
		t.Errorf("momentum differs by input order: %+v vs %+v", a, b)
	}

	// The input slice must not be reordered.
	if points[0].DateISO != "2024-01-01" {
		t.Error("ComputeMomentum mutated its input slice")
	}
}
