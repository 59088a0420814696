package analysis

import (
	"strings"
	"testing"
)

func TestSuggestTransition_HarmonicMix(t *testing.T) {
	current := FeatureRecord{CamelotKey: "8B", Energy: 0.5, BPM: 120}
	next := FeatureRecord{CamelotKey: "8B", Energy: 0.5, BPM: 120}

	suggestion := suggestTransition(current, next)

	if suggestion.TransitionType != "Harmonic Mix" {
		t.Errorf("expected Harmonic Mix, got %q", suggestion.TransitionType)
	}
	if suggestion.CompatibilityScore != 0.8 {
		t.Errorf("expected compatibility score 0.8, got %v", suggestion.CompatibilityScore)
	}
	if !strings.Contains(suggestion.FXRecommendation, "Reverb - Hall") {
		t.Errorf("expected fx_recommendation to contain Reverb - Hall, got %q", suggestion.FXRecommendation)
	}
}

func TestSuggestTransition_TempoChange(t *testing.T) {
	// Harmonic Mix takes precedence over Tempo Change whenever both the
	// key and energy match, so the keys here must be incompatible for
	// a large bpm gap to actually surface as "Tempo Change".
	current := FeatureRecord{CamelotKey: "1A", Energy: 0.5, BPM: 120}
	next := FeatureRecord{CamelotKey: "6B", Energy: 0.5, BPM: 140}

	suggestion := suggestTransition(current, next)

	if suggestion.TransitionType != "Tempo Change" {
		t.Errorf("expected Tempo Change, got %q", suggestion.TransitionType)
	}
	if !strings.Contains(suggestion.FXRecommendation, "Short Reverb") {
		t.Errorf("expected fx_recommendation to contain Short Reverb, got %q", suggestion.FXRecommendation)
	}
}

func TestSuggestTransition_NotchFilterOnBassHeavyNonHarmonic(t *testing.T) {
	current := FeatureRecord{CamelotKey: "1A", Energy: 0.2, BPM: 90, BassMidRatio: 2.0}
	next := FeatureRecord{CamelotKey: "6B", Energy: 0.9, BPM: 180}

	suggestion := suggestTransition(current, next)

	if !strings.Contains(suggestion.FXRecommendation, "Notch Filter 60Hz") {
		t.Errorf("expected a bass-heavy non-harmonic transition to prepend Notch Filter 60Hz, got %q", suggestion.FXRecommendation)
	}
}
