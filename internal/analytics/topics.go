package analytics

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Label thresholds. Attention is evaluated before Watch; first match wins.
const (
	attentionScoreMin     = 2.0
	attentionFirstPassMax = 0.4
	watchScoreMin         = 1.0
	watchFirstPassMax     = 0.6
)

// TopicNamer resolves the display title for a synthetic topic bucket.
// lo and hi are the inclusive step-number bounds of the bucket.
type TopicNamer func(bucket, lo, hi int) string

// stepStat accumulates per-step attempt data for one student.
type stepStat struct {
	attempts          int
	firstAttemptDone  bool
	firstAttemptRight bool
	anyCorrect        bool
}

// syntheticTopic accumulates per-bucket totals before metrics are derived.
type syntheticTopic struct {
	bucket       int
	stepIDs      []string
	attempts     int
	firstCorrect int
	anyCorrect   int
}

// BuildTopicTable groups one student's submissions into synthetic topics and
// computes per-topic mastery metrics and a categorical label. The result is
// sorted descending by topic score; ties keep input order. Malformed rows
// (no usable step id) are silently skipped, and an empty input produces an
// empty table.
func BuildTopicTable(userID string, subs []Submission, excludedIDs []string, namer TopicNamer) []StudentTopic {
	excluded := make(map[string]bool, len(excludedIDs))
	for _, id := range excludedIDs {
		excluded[strings.ToLower(strings.TrimSpace(id))] = true
	}
	wantUser := strings.ToLower(strings.TrimSpace(userID))

	// Per-step accumulation in input order: the first event seen for a step
	// decides firstAttemptRight (no timestamp field is consulted).
	stats := make(map[string]*stepStat)
	var stepOrder []string
	for _, sub := range subs {
		uid := strings.ToLower(strings.TrimSpace(sub.UserID))
		if uid != wantUser || excluded[uid] {
			continue
		}
		stepID := strings.TrimSpace(sub.StepID)
		if stepID == "" {
			continue
		}

		st, ok := stats[stepID]
		if !ok {
			st = &stepStat{}
			stats[stepID] = st
			stepOrder = append(stepOrder, stepID)
		}
		st.attempts++
		correct := equalsCorrect(sub.Status)
		if !st.firstAttemptDone {
			st.firstAttemptDone = true
			st.firstAttemptRight = correct
		}
		if correct {
			st.anyCorrect = true
		}
	}

	if len(stepOrder) == 0 {
		return nil
	}

	// Bucket steps into synthetic topics by floor(numericPart/10), keeping
	// first-appearance order so the final stable sort has a defined base.
	buckets := make(map[int]*syntheticTopic)
	var bucketOrder []int
	for _, stepID := range stepOrder {
		b := topicBucket(stepID)
		topic, ok := buckets[b]
		if !ok {
			topic = &syntheticTopic{bucket: b}
			buckets[b] = topic
			bucketOrder = append(bucketOrder, b)
		}
		st := stats[stepID]
		topic.stepIDs = append(topic.stepIDs, stepID)
		topic.attempts += st.attempts
		if st.firstAttemptRight {
			topic.firstCorrect++
		}
		if st.anyCorrect {
			topic.anyCorrect++
		}
	}

	// Student-wide baseline across all steps, not per topic.
	totalAttempts := 0
	totalFirstCorrect := 0
	for _, st := range stats {
		totalAttempts += st.attempts
		if st.firstAttemptRight {
			totalFirstCorrect++
		}
	}
	stepCount := float64(len(stepOrder))
	avgAttempts := float64(totalAttempts) / stepCount
	avgFirstPass := float64(totalFirstCorrect) / stepCount

	table := make([]StudentTopic, 0, len(bucketOrder))
	for _, b := range bucketOrder {
		topic := buckets[b]
		n := float64(len(topic.stepIDs))

		attemptsPer := round2(float64(topic.attempts) / n)
		firstPass := round2(float64(topic.firstCorrect) / n)
		deltaAttempts := round2(attemptsPer - avgAttempts)
		deltaFirst := round2(firstPass - avgFirstPass)
		score := math.Max(0, deltaAttempts*0.5-deltaFirst*2)

		table = append(table, StudentTopic{
			Title:          topicTitle(b, namer),
			StepIDs:        topic.stepIDs,
			StepsAttempted: len(topic.stepIDs),
			AttemptsPer:    attemptsPer,
			FirstPassRate:  firstPass,
			DeltaAttempts:  deltaAttempts,
			DeltaFirst:     deltaFirst,
			Score:          score,
			Label:          topicLabel(score, firstPass),
		})
	}

	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Score > table[j].Score
	})
	return table
}

// topicLabel assigns the categorical label. Attention strictly dominates
// Watch dominates Comfortable.
func topicLabel(score, firstPass float64) TopicLabel {
	switch {
	case score > attentionScoreMin || firstPass < attentionFirstPassMax:
		return LabelAttention
	case score > watchScoreMin || firstPass < watchFirstPassMax:
		return LabelWatch
	default:
		return LabelComfortable
	}
}

// topicBucket maps a step id to its synthetic topic index: the numeric part
// of the id (digits only) divided by 10. Ids without digits, or whose digits
// do not parse, land in bucket 0.
func topicBucket(stepID string) int {
	var digits strings.Builder
	for _, r := range stepID {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return n / 10
}

func topicTitle(bucket int, namer TopicNamer) string {
	lo := bucket * 10
	hi := lo + 9
	if namer != nil {
		if title := namer(bucket, lo, hi); title != "" {
			return title
		}
	}
	return fmt.Sprintf("Topic %d (steps %d-%d)", bucket+1, lo, hi)
}

func equalsCorrect(status string) bool {
	return strings.EqualFold(strings.TrimSpace(status), "correct")
}

// round2 rounds to 2 decimal places, matching the precision of the stored
// report metrics.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
