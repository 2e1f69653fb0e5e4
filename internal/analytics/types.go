// Package analytics implements the per-student learning-analytics synthesis
// engine: it turns a raw submission log plus pre-aggregated performance and
// activity-curve rows into a ranked, bounded, deterministic report model.
//
// Every function in this package is pure. Nothing here performs I/O, holds
// state between calls, or consults the wall clock, so a batch of students can
// be processed with arbitrary data-parallelism (see internal/batch).
package analytics

// Submission is a single attempt from the raw event log. Field aliases in
// source documents (user_id/userid, step_id/stepid/step, status/result) are
// resolved at the dataset boundary before the engine sees them.
type Submission struct {
	UserID string `json:"user_id"`
	StepID string `json:"step_id"`
	Status string `json:"status"`
}

// Correct reports whether the attempt succeeded. "correct" is the only
// success value, matched case-insensitively.
func (s Submission) Correct() bool {
	return equalsCorrect(s.Status)
}

// TopicLabel is the categorical mastery label of a synthetic topic.
type TopicLabel string

const (
	LabelComfortable TopicLabel = "Comfortable"
	LabelWatch       TopicLabel = "Watch"
	LabelAttention   TopicLabel = "Attention"
)

// StudentTopic holds per-topic mastery metrics for one student.
// Metrics are rounded to 2 decimals; Score is clamped at zero.
type StudentTopic struct {
	Title          string     `json:"topic_title"`
	StepIDs        []string   `json:"step_ids"`
	StepsAttempted int        `json:"steps_attempted"`
	AttemptsPer    float64    `json:"attempts_per_step"`
	FirstPassRate  float64    `json:"student_first_pass_rate"`
	DeltaAttempts  float64    `json:"mean_delta_attempts"`
	DeltaFirst     float64    `json:"mean_delta_first"`
	Score          float64    `json:"topic_score"`
	Label          TopicLabel `json:"label_topic"`
}

// PerformanceRow is the externally computed per-student performance
// aggregate. All fields are present and numeric for any student for whom a
// row exists; this engine never derives them itself.
type PerformanceRow struct {
	UserID              string  `json:"user_id"`
	Segment             string  `json:"segment"`
	TotalPct            float64 `json:"total_pct"`
	SuccessRate         float64 `json:"success_rate"`
	ConsistencyIndex    float64 `json:"consistency_index"`
	StruggleIndex       float64 `json:"struggle_index"`
	EffortIndex         float64 `json:"effort_index"`
	ActiveDaysRatio     float64 `json:"active_days_ratio"`
	MeetingsAttendedPct float64 `json:"meetings_attended_pct"`
}

// CurveSummary is the externally computed activity-curve summary for one
// student (shape label plus easing statistics).
type CurveSummary struct {
	UserID         string  `json:"user_id"`
	EasingLabel    string  `json:"easing_label"`
	FrontloadIndex float64 `json:"frontload_index"`
	Consistency    float64 `json:"consistency"`
	Burstiness     float64 `json:"burstiness"`
	T25            float64 `json:"t25"`
	T50            float64 `json:"t50"`
	T75            float64 `json:"t75"`
}

// Known easing labels produced by the upstream curve-fitting service.
const (
	CurveLinear     = "linear"
	CurveEase       = "ease"
	CurveEaseIn     = "ease-in"
	CurveEaseOut    = "ease-out"
	CurveEaseInOut  = "ease-in-out"
	CurveNoActivity = "no-activity"
)

// SeriesPoint is one day of the per-student activity time series.
type SeriesPoint struct {
	UserID        string  `json:"user_id"`
	DateISO       string  `json:"date_iso"`
	ActivityTotal float64 `json:"activity_total"`
}

// Trend is the week-over-week momentum direction.
type Trend string

const (
	TrendUp      Trend = "up"
	TrendFlat    Trend = "flat"
	TrendDown    Trend = "down"
	TrendUnknown Trend = "unknown"
)

// Momentum is the 7-day-over-7-day activity trend.
type Momentum struct {
	Trend Trend   `json:"trend"`
	Delta float64 `json:"delta"`
	Note  string  `json:"note"`
}

// Signal is a scored win or focus candidate produced by ExtractSignals.
// Signals are unsorted; ranking happens in SynthesizeHighlights.
type Signal struct {
	Type   string
	Score  float64
	Detail string
}

// HighlightKind distinguishes win from focus highlights.
type HighlightKind string

const (
	HighlightWin   HighlightKind = "win"
	HighlightFocus HighlightKind = "focus"
)

// Highlight is one rendered entry of the report's highlight list.
// Reason carries the signal type that produced the text.
type Highlight struct {
	Kind   HighlightKind `json:"type"`
	Text   string        `json:"text"`
	Reason string        `json:"reason,omitempty"`
}

// StudentReport is the assembled output of the engine. The raw performance,
// curve, topic and series data is passed through for downstream rendering.
type StudentReport struct {
	UserID           string         `json:"user_id"`
	Segment          string         `json:"segment"`
	CurveLabel       string         `json:"curve_label"`
	Highlights       []Highlight    `json:"highlights"`
	Momentum         Momentum       `json:"momentum"`
	TopicWins        []StudentTopic `json:"topic_wins"`
	TopicFocus       []StudentTopic `json:"topic_focus"`
	CurveExplanation string         `json:"curve_explanation"`
	NextSteps        []string       `json:"next_steps"`
	Performance      PerformanceRow `json:"performance"`
	Curve            CurveSummary   `json:"curve"`
	Topics           []StudentTopic `json:"topics"`
	Series           []SeriesPoint  `json:"series"`
}

// Inputs bundles everything GenerateStudentReport consumes. All slices are
// treated as read-only.
type Inputs struct {
	Submissions []Submission
	Performance []PerformanceRow
	Curves      []CurveSummary
	Series      []SeriesPoint
	ExcludedIDs []string

	// TopicNamer overrides synthetic topic titles when set (for example the
	// modnames cache). Nil means the default "Topic N (steps A-B)" title.
	TopicNamer TopicNamer
}
