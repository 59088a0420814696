package analysis

import "math"

const onsetWindowSize = 1024

// detectTempo implements spec.md §4.5. The output is deliberately the
// reference's `round(bpm) / 10` — see DESIGN.md and spec.md §9;
// this is a known oddity of the original implementation, reproduced
// verbatim rather than "fixed".
func detectTempo(samples []float32, sampleRate float32) (bpm, confidence float32) {
	decimationFactor := int(sampleRate / 1000.0)
	if decimationFactor < 1 {
		decimationFactor = 1
	}
	decimated := decimate(samples, decimationFactor)
	if len(decimated) == 0 {
		return 0, 0
	}

	onsetEnv := onsetEnvelope(decimated, onsetWindowSize)
	acf := autocorrelation(onsetEnv)

	const minBPM, maxBPM = 60.0, 200.0
	samplesPerMs := sampleRate / 1000.0

	minLag := int(samplesPerMs / maxBPM * float32(len(decimated)))
	maxLag := int(samplesPerMs / minBPM * float32(len(decimated)))
	if maxLag > len(acf) {
		maxLag = len(acf)
	}
	if minLag < 0 {
		minLag = 0
	}
	if minLag >= maxLag {
		return 0, 0
	}

	maxVal := float32(-1.0)
	bestLag := minLag
	for lag := minLag; lag < maxLag; lag++ {
		if acf[lag] > maxVal {
			maxVal = acf[lag]
			bestLag = lag
		}
	}

	var maxACF float32
	for lag := minLag; lag < maxLag; lag++ {
		if acf[lag] > maxACF {
			maxACF = acf[lag]
		}
	}

	rawBPM := 60.0 / (float32(bestLag) / samplesPerMs)
	conf := maxVal / maxACF
	if conf > 1 {
		conf = 1
	}

	bpm = float32(math.Round(float64(rawBPM))) / 10.0
	return bpm, conf
}

// decimate keeps every stepth sample, matching Rust's step_by.
func decimate(samples []float32, step int) []float32 {
	if step < 1 {
		step = 1
	}
	out := make([]float32, 0, len(samples)/step+1)
	for i := 0; i < len(samples); i += step {
		out = append(out, samples[i])
	}
	return out
}

// onsetEnvelope reproduces the reference's unusual local-deviation
// onset function: for each index i, the RMS difference between s_i
// and every sample in the trailing window [max(0,i-window)..i].
func onsetEnvelope(samples []float32, window int) []float32 {
	n := len(samples)
	result := make([]float32, n)
	for i := 0; i < n; i++ {
		start := 0
		if i > window {
			start = i - window
		}
		var sum float32
		for j := start; j <= i; j++ {
			diff := samples[i] - samples[j]
			sum += diff * diff
		}
		result[i] = float32(math.Sqrt(float64(sum) / float64(i-start+1)))
	}
	return result
}

// autocorrelation computes the biased autocorrelation of samples for
// every lag in [0, len(samples)).
func autocorrelation(samples []float32) []float32 {
	n := len(samples)
	result := make([]float32, n)
	for lag := 0; lag < n; lag++ {
		var sum float32
		for i := 0; i < n-lag; i++ {
			sum += samples[i] * samples[i+lag]
		}
		result[lag] = sum / float32(n)
	}
	return result
}
