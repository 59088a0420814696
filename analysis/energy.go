package analysis

import "math"

const energyFrameSize = 1024

// energyResult holds the output of the energy pass plus the envelope,
// which intro/outro detection and the energy profile pass reuse.
type energyResult struct {
	mean         float32
	rms          float32
	loudness     float32
	dynamicRange float32
	zcr          float32
	attackTime   float32
	decayTime    float32
	envelope     []float32
}

// analyzeEnergy computes the energy pass over non-overlapping
// 1024-sample frames (spec.md §4.3).
func analyzeEnergy(samples []float32) energyResult {
	n := len(samples)
	if n == 0 {
		return energyResult{loudness: float32(20 * math.Log10(0.0001))}
	}

	numFrames := n / energyFrameSize
	envelope := make([]float32, 0, numFrames)

	var sumSq, peak float32
	trough := float32(math.MaxFloat32)
	var zcr int

	for i := 0; i < numFrames; i++ {
		start := i * energyFrameSize
		var frameSum float32
		for j := 0; j < energyFrameSize; j++ {
			s := samples[start+j]
			abs := float32(math.Abs(float64(s)))
			frameSum += abs
			sumSq += s * s
			if abs > peak {
				peak = abs
			}
			if abs < trough {
				trough = abs
			}
			if j > 0 {
				prev := samples[start+j-1]
				if (s >= 0 && prev < 0) || (s < 0 && prev >= 0) {
					zcr++
				}
			}
		}
		envelope = append(envelope, frameSum/float32(energyFrameSize))
	}

	mean := sumSq / float32(n)
	rms := float32(math.Sqrt(float64(mean)))
	loudness := float32(20 * math.Log10(float64(rms)+1e-4))
	dynamicRange := float32(20 * math.Log10(float64(peak/(trough+1e-4))))
	if dynamicRange > 60 {
		dynamicRange = 60
	}
	zcrRate := float32(zcr) / float32(n)

	attackTime, decayTime := attackDecayTimes(envelope)

	return energyResult{
		mean:         mean,
		rms:          rms,
		loudness:     loudness,
		dynamicRange: dynamicRange,
		zcr:          zcrRate,
		attackTime:   attackTime,
		decayTime:    decayTime,
		envelope:     envelope,
	}
}

// attackDecayTimes derives attack and decay time from the amplitude
// envelope, ported from the Rust reference's analyze_energy (kept out
// of spec.md's wire contract but present in original_source/ — see
// SPEC_FULL.md §5.1). Both are expressed against the 44100Hz frame
// rate the reference hardcodes here, independent of the actual
// sample rate of the input.
func attackDecayTimes(envelope []float32) (attack, decay float32) {
	if len(envelope) == 0 {
		return 0, 0
	}

	peakIdx := 0
	var peakVal float32
	for i, v := range envelope {
		if v > peakVal {
			peakVal = v
			peakIdx = i
		}
	}

	attackStart := 0
	threshold := envelope[0] * 1.5
	for i := 0; i < peakIdx; i++ {
		if envelope[i] > threshold {
			attackStart = i
			break
		}
	}
	attack = float32(peakIdx-attackStart) * float32(energyFrameSize) / 44100.0

	decayEnd := peakIdx
	for i := peakIdx; i < len(envelope); i++ {
		if envelope[i] < peakVal*0.5 {
			decayEnd = i
			break
		}
	}
	decay = float32(decayEnd-peakIdx) * float32(energyFrameSize) / 44100.0

	return attack, decay
}
