package stretch

import (
	"log"
	"math"
)

// PitchShifter shifts pitch by resampling at a ratio derived from a
// semitone offset, independent of tempo (spec.md §4.15).
type PitchShifter struct {
	sampleRate int
	channels   int
}

// NewPitchShifter creates a PitchShifter. fftSize is accepted for API
// compatibility with the reference constructor but unused.
func NewPitchShifter(sampleRate, channels, fftSize int) *PitchShifter {
	log.Printf("PitchShifter created: %dHz, %dch", sampleRate, channels)
	return &PitchShifter{sampleRate: sampleRate, channels: channels}
}

// ShiftSemitones resamples an interleaved buffer to shift its pitch by
// semitones. The resample ratio is clamped to [0.25, 4.0].
func (p *PitchShifter) ShiftSemitones(samples []float32, semitones float32) []float32 {
	ratio := math.Pow(2.0, float64(semitones)/12.0)
	ratio = float64(clampF32(float32(ratio), 0.25, 4.0))

	inputLen := len(samples) / p.channels
	outputLen := int(float64(inputLen) / ratio)
	output := make([]float32, outputLen*p.channels)

	for ch := 0; ch < p.channels; ch++ {
		for i := 0; i < outputLen; i++ {
			srcPos := float64(i) * ratio
			srcIdx := int(srcPos)
			frac := srcPos - float64(srcIdx)

			if srcIdx+1 < inputLen {
				s1 := samples[srcIdx*p.channels+ch]
				s2 := samples[(srcIdx+1)*p.channels+ch]
				output[i*p.channels+ch] = lerp32(s1, s2, float32(frac))
			}
		}
	}

	return output
}

func clampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
