package analytics

import (
	"fmt"
	"sort"
)

const (
	// maxHighlightsPerKind caps each of the win and focus selections.
	maxHighlightsPerKind = 2
	// maxHighlights caps the final concatenated list.
	maxHighlights = 5
)

// winTemplates maps win signal types to their fixed highlight sentence.
var winTemplates = map[string]string{
	SignalAchievement:   "Strong overall results: both scores and success rate are in a great place.",
	SignalConsistency:   "You keep a steady, reliable study rhythm from week to week.",
	SignalSteady:        "Work is spread out evenly rather than arriving in last-minute bursts.",
	SignalEarlyProgress: "You built momentum early and banked solid progress up front.",
	SignalTopicWin:      "First-try success on your strongest topics shows real command of the material.",
}

// focusTemplates maps focus signal types to their fixed highlight sentence.
// topic_focus is the only template that interpolates (the topic title).
var focusTemplates = map[string]string{
	SignalTopicFocus:     "%s needs another pass: extra attempts are piling up there.",
	SignalStruggle:       "Effort is high but success is lagging; a different approach to hard steps may help.",
	SignalLowConsistency: "Activity is concentrated in only a few days; more frequent short sessions would smooth it out.",
	SignalMomentumDown:   "Weekly activity is trending down compared to the previous week.",
	SignalLateStart:      "The course started slowly for you, so early material may need reinforcement.",
	SignalEndDropoff:     "Activity tapered off near the end, so recent topics may be underpracticed.",
}

// fallbackWin is prepended whenever the list would otherwise be empty or
// open with a focus entry: the first highlight is always a win.
var fallbackWin = Highlight{
	Kind: HighlightWin,
	Text: "You are making progress. Keep up the regular practice and the results will follow.",
}

// SynthesizeHighlights ranks the signal lists and renders the top entries
// into at most maxHighlights human-readable records, wins first. Focus
// signals with no known template are silently dropped.
func SynthesizeHighlights(wins, focus []Signal) []Highlight {
	var out []Highlight

	for _, s := range topByScore(wins, maxHighlightsPerKind) {
		text, ok := winTemplates[s.Type]
		if !ok {
			continue
		}
		out = append(out, Highlight{Kind: HighlightWin, Text: text, Reason: s.Type})
	}

	for _, s := range topByScore(focus, maxHighlightsPerKind) {
		tmpl, ok := focusTemplates[s.Type]
		if !ok {
			continue
		}
		text := tmpl
		if s.Type == SignalTopicFocus {
			text = fmt.Sprintf(tmpl, s.Detail)
		}
		out = append(out, Highlight{Kind: HighlightFocus, Text: text, Reason: s.Type})
	}

	if len(out) == 0 || out[0].Kind != HighlightWin {
		out = append([]Highlight{fallbackWin}, out...)
	}
	if len(out) > maxHighlights {
		out = out[:maxHighlights]
	}
	return out
}

// topByScore returns the n highest-scored signals, descending, without
// mutating the input.
func topByScore(signals []Signal, n int) []Signal {
	sorted := make([]Signal, len(signals))
	copy(sorted, signals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
