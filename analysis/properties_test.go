package analysis

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// Property-based checks for the invariants spec.md §8 names: purity,
// finiteness of output, and Camelot key round-trip safety.

func TestProperty_AnalyzeFullIsPure(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 8192).Draw(t, "n")
		samples := make([]float32, n)
		for i := range samples {
			samples[i] = rapid.Float32Range(-1, 1).Draw(t, "sample")
		}
		sampleRate := rapid.Float32Range(8000, 192000).Draw(t, "sampleRate")

		a := New(2048)
		out1 := a.AnalyzeFull(samples, sampleRate)
		out2 := a.AnalyzeFull(samples, sampleRate)

		assert.Equal(t, out1, out2, "AnalyzeFull must be pure: same input must produce identical output")
	})
}

func TestProperty_AnalyzeFullNeverPanicsAndIsFinite(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 4096).Draw(t, "n")
		samples := make([]float32, n)
		for i := range samples {
			samples[i] = rapid.Float32Range(-1, 1).Draw(t, "sample")
		}

		a := New(2048)
		out := a.AnalyzeFull(samples, testSampleRate)
		assert.NotEmpty(t, out, "AnalyzeFull should always produce a non-empty JSON record")

		var rec FeatureRecord
		assert.NoError(t, json.Unmarshal([]byte(out), &rec))
		for name, val := range recordFloatFields(rec) {
			assert.Falsef(t, math.IsNaN(float64(val)) || math.IsInf(float64(val), 0),
				"field %s should be finite, got %v", name, val)
		}
	})
}

func TestProperty_CamelotKeyRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		idx := rapid.IntRange(0, 23).Draw(t, "idx")
		code := camelotTable[idx]

		num, letter, ok := splitCamelot(code)
		assert.True(t, ok, "every value produced by toCamelotKey must be splittable")
		assert.True(t, num >= 1 && num <= 12)
		assert.True(t, letter == 'A' || letter == 'B')
	})
}

func TestProperty_HarmonicallyCompatibleHandlesUnknownKey(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		idx := rapid.IntRange(0, 23).Draw(t, "idx")
		key := camelotTable[idx]

		assert.False(t, harmonicallyCompatible("?", key))
		assert.False(t, harmonicallyCompatible(key, "?"))
	})
}

func TestProperty_BPMIsAlwaysAMultipleOfOneTenth(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		freq := rapid.Float32Range(80, 2000).Draw(t, "freq")
		samples := sineWave(freq, 3, testSampleRate)

		bpm, _ := detectTempo(samples, testSampleRate)
		if math.IsNaN(float64(bpm)) || math.IsInf(float64(bpm), 0) {
			return
		}
		scaled := bpm * 10
		rounded := float32(math.Round(float64(scaled)))
		assert.InDeltaf(t, rounded, scaled, 1e-2, "bpm*10 should always be an integer (round/10 quirk)")
	})
}
