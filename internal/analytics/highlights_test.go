package analytics

import (
	"strings"
	"testing"
)

func TestSynthesizeHighlights_EmptyGetsFallbackWin(t *testing.T) {
	got := SynthesizeHighlights(nil, nil)
	if len(got) != 1 {
		t.Fatalf("expected single fallback highlight, got %d", len(got))
	}
	if got[0].Kind != HighlightWin {
		t.Errorf("fallback kind = %s, want win", got[0].Kind)
	}
}

func TestSynthesizeHighlights_FirstIsAlwaysWin(t *testing.T) {
	focus := []Signal{
		{Type: SignalStruggle, Score: 70},
		{Type: SignalMomentumDown, Score: 40},
	}
	got := SynthesizeHighlights(nil, focus)
	if got[0].Kind != HighlightWin {
		t.Fatalf("first highlight kind = %s, want win (fallback prepended)", got[0].Kind)
	}
	if len(got) != 3 {
		t.Errorf("len = %d, want fallback + 2 focus", len(got))
	}
}

func TestSynthesizeHighlights_SortedAndCapped(t *testing.T) {
	wins := []Signal{
		{Type: SignalConsistency, Score: 60},
		{Type: SignalAchievement, Score: 85},
		{Type: SignalSteady, Score: 40},
	}
	focus := []Signal{
		{Type: SignalStruggle, Score: 70},
		{Type: SignalMomentumDown, Score: 90},
		{Type: SignalLateStart, Score: 50},
	}
	got := SynthesizeHighlights(wins, focus)

	if len(got) != 4 {
		t.Fatalf("len = %d, want 2 wins + 2 focus", len(got))
	}
	if got[0].Reason != SignalAchievement || got[1].Reason != SignalConsistency {
		t.Errorf("win order = %s, %s; want achievement then consistency", got[0].Reason, got[1].Reason)
	}
	if got[2].Reason != SignalMomentumDown || got[3].Reason != SignalStruggle {
		t.Errorf("focus order = %s, %s; want momentum_down then struggle", got[2].Reason, got[3].Reason)
	}
}

func TestSynthesizeHighlights_TopicFocusInterpolatesTitle(t *testing.T) {
	focus := []Signal{{Type: SignalTopicFocus, Score: 2.0, Detail: "Topic 4 (steps 30-39)"}}
	got := SynthesizeHighlights(nil, focus)

	var focusText string
	for _, h := range got {
		if h.Kind == HighlightFocus {
			focusText = h.Text
		}
	}
	if !strings.Contains(focusText, "Topic 4 (steps 30-39)") {
		t.Errorf("focus text = %q, want the topic title interpolated", focusText)
	}
}

func TestSynthesizeHighlights_UnknownFocusTypeDropped(t *testing.T) {
	focus := []Signal{
		{Type: "mystery", Score: 99},
		{Type: SignalStruggle, Score: 10},
	}
	got := SynthesizeHighlights(nil, focus)
	for _, h := range got {
		if h.Reason == "mystery" {
			t.Fatal("unknown focus type produced a highlight")
		}
	}
	// The unknown type still consumed a top-2 slot, but struggle survives.
	found := false
	for _, h := range got {
		if h.Reason == SignalStruggle {
			found = true
		}
	}
	if !found {
		t.Error("expected struggle highlight to survive")
	}
}

func TestSynthesizeHighlights_NeverExceedsFive(t *testing.T) {
	wins := []Signal{
		{Type: SignalAchievement, Score: 90},
		{Type: SignalConsistency, Score: 80},
		{Type: SignalSteady, Score: 70},
	}
	focus := []Signal{
		{Type: SignalStruggle, Score: 60},
		{Type: SignalMomentumDown, Score: 50},
		{Type: SignalLateStart, Score: 40},
	}
	if got := SynthesizeHighlights(wins, focus); len(got) > 5 {
		t.Errorf("len = %d, want <= 5", len(got))
	}
}

func TestSynthesizeHighlights_DoesNotMutateInput(t *testing.T) {
	wins := []Signal{
		{Type: SignalConsistency, Score: 60},
		{Type: SignalAchievement, Score: 85},
	}
	SynthesizeHighlights(wins, nil)
	if wins[0].Type != SignalConsistency {
		t.Error("input slice was reordered")
	}
}
