package analysis

import (
	"encoding/json"
	"math"
	"testing"
)

const testSampleRate = 44100

func sineWave(freq float32, seconds float32, sampleRate float32) []float32 {
	n := int(seconds * sampleRate)
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(math.Sin(2 * math.Pi * float64(freq) * float64(i) / float64(sampleRate)))
	}
	return out
}

func whiteNoise(seconds float32, sampleRate float32) []float32 {
	n := int(seconds * sampleRate)
	out := make([]float32, n)
	state := uint32(12345)
	for i := range out {
		state = state*1664525 + 1013904223
		out[i] = (float32(state%2000) / 1000.0) - 1.0
	}
	return out
}

func TestAnalyzeFull_SilentBuffer(t *testing.T) {
	a := New(2048)
	samples := make([]float32, testSampleRate*2)

	out := a.AnalyzeFull(samples, testSampleRate)
	if out == "" {
		t.Fatal("AnalyzeFull returned empty string for silent buffer")
	}

	var rec FeatureRecord
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("failed to unmarshal feature record: %v", err)
	}

	assertFinite(t, rec)
}

func TestAnalyzeFull_SineWave(t *testing.T) {
	a := New(2048)
	samples := sineWave(440, 3, testSampleRate)

	out := a.AnalyzeFull(samples, testSampleRate)
	var rec FeatureRecord
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("failed to unmarshal feature record: %v", err)
	}

	assertFinite(t, rec)

	if rec.CamelotKey == "" {
		t.Error("expected a non-empty camelot key")
	}
	if rec.PrimaryGenre == "" {
		t.Error("expected a non-empty primary genre")
	}
}

func TestAnalyzeFull_WhiteNoise(t *testing.T) {
	a := New(2048)
	samples := whiteNoise(3, testSampleRate)

	out := a.AnalyzeFull(samples, testSampleRate)
	var rec FeatureRecord
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("failed to unmarshal feature record: %v", err)
	}

	assertFinite(t, rec)
}

func TestAnalyzeFull_ShortBuffer(t *testing.T) {
	a := New(2048)
	samples := []float32{0.1, 0.2, -0.1}

	out := a.AnalyzeFull(samples, testSampleRate)
	if out == "" {
		t.Fatal("AnalyzeFull returned empty string for short buffer")
	}

	var rec FeatureRecord
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("failed to unmarshal feature record: %v", err)
	}
	assertFinite(t, rec)
}

func TestAnalyzeFull_EmptyBuffer(t *testing.T) {
	a := New(2048)

	out := a.AnalyzeFull(nil, testSampleRate)
	var rec FeatureRecord
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("failed to unmarshal feature record: %v", err)
	}
	assertFinite(t, rec)
}

func TestSuggestTransition_InvalidJSON(t *testing.T) {
	a := New(2048)

	out := a.SuggestTransition("not json", "{}")
	if out != "{}" {
		t.Errorf("expected {} for invalid JSON, got %q", out)
	}
}

func TestSuggestTransition_RoundTrip(t *testing.T) {
	a := New(2048)
	samples1 := sineWave(220, 2, testSampleRate)
	samples2 := sineWave(330, 2, testSampleRate)

	rec1 := a.AnalyzeFull(samples1, testSampleRate)
	rec2 := a.AnalyzeFull(samples2, testSampleRate)

	out := a.SuggestTransition(rec1, rec2)
	var suggestion TransitionSuggestion
	if err := json.Unmarshal([]byte(out), &suggestion); err != nil {
		t.Fatalf("failed to unmarshal transition suggestion: %v", err)
	}

	if suggestion.TransitionType == "" {
		t.Error("expected a non-empty transition type")
	}
}

func TestVersion(t *testing.T) {
	a := New(2048)
	if a.Version() != version {
		t.Errorf("expected version %q, got %q", version, a.Version())
	}
}

func assertFinite(t *testing.T, rec FeatureRecord) {
	t.Helper()
	v := recordFloatFields(rec)
	for name, val := range v {
		if math.IsNaN(float64(val)) || math.IsInf(float64(val), 0) {
			t.Errorf("field %s is non-finite: %v", name, val)
		}
	}
}

func recordFloatFields(rec FeatureRecord) map[string]float32 {
	return map[string]float32{
		"bpm":                rec.BPM,
		"bpm_confidence":     rec.BPMConfidence,
		"key_confidence":     rec.KeyConfidence,
		"energy":             rec.Energy,
		"loudness":           rec.Loudness,
		"rms_energy":         rec.RMSEnergy,
		"dynamic_range":      rec.DynamicRange,
		"zero_crossing_rate": rec.ZeroCrossingRate,
		"attack_time":        rec.AttackTime,
		"decay_time":         rec.DecayTime,
		"spectral_centroid":  rec.SpectralCentroid,
		"spectral_rolloff":   rec.SpectralRolloff,
		"spectral_flux":      rec.SpectralFlux,
		"peak_frequency":     rec.PeakFrequency,
		"brightness":         rec.Brightness,
		"warmth":             rec.Warmth,
		"roughness":          rec.Roughness,
		"bass_mid_ratio":     rec.BassMidRatio,
		"mid_high_ratio":     rec.MidHighRatio,
		"overall_balance":    rec.OverallBalance,
		"intro_confidence":   rec.IntroConfidence,
		"outro_confidence":   rec.OutroConfidence,
		"overall_momentum":   rec.OverallMomentum,
		"energy_variance":    rec.EnergyVariance,
		"genre_confidence":   rec.GenreConfidence,
	}
}
