package analysis

import "math"

const (
	spectralFrameSize = 2048
	spectralHopSize   = 1024
)

type spectralResult struct {
	centroid     float32
	rolloff      float32
	flux         float32
	flatness     float32
	peakFrequency float32
}

// analyzeSpectral runs the spectral pass (spec.md §4.2): Hann-windowed
// 2048/1024 framing, accumulating centroid, rolloff, flux and
// flatness across frames.
func analyzeSpectral(samples []float32, sampleRate float32) spectralResult {
	numFrames := frameCount(len(samples), spectralFrameSize, spectralHopSize)
	if numFrames < 1 {
		return spectralResult{}
	}

	window := hannWindow(spectralFrameSize)
	plan := newFFTPlan(spectralFrameSize)

	var centroidSum, rolloffSum, fluxSum, flatnessSum float64
	var peakMag, peakFreq float64
	var prevSpectrum []float64

	for i := 0; i < numFrames; i++ {
		start := i * spectralHopSize
		frame := windowedFrame(samples, start, spectralFrameSize, window)
		mag := plan.magnitudes(frame)

		var magSum float64
		for _, m := range mag {
			magSum += m
		}

		var centroid float64
		half := len(mag) / 2
		for bin := 0; bin < half; bin++ {
			freq := float64(bin) * float64(sampleRate) / float64(spectralFrameSize)
			centroid += freq * mag[bin]
			if mag[bin] > peakMag {
				peakMag = mag[bin]
				peakFreq = freq
			}
		}
		centroidSum += centroid / (magSum + 1e-4)

		rolloffBudget := magSum * 0.85
		var rolloff float64
		for bin := 0; bin < half; bin++ {
			rolloffBudget -= mag[bin]
			if rolloffBudget <= 0 {
				rolloff = float64(bin) * float64(sampleRate) / float64(spectralFrameSize)
				break
			}
		}
		rolloffSum += rolloff

		if prevSpectrum != nil {
			var flux float64
			for j := 1; j < len(mag) && j < len(prevSpectrum); j++ {
				diff := prevSpectrum[j] - mag[j]
				if diff > 0 {
					flux += diff * diff
				}
			}
			fluxSum += math.Sqrt(flux)
		}
		prevSpectrum = mag

		geoProduct := 1.0
		for _, m := range mag {
			geoProduct *= m + 1e-4
		}
		geoMean := math.Pow(geoProduct, 1.0/float64(len(mag)))
		arithMean := magSum / float64(len(mag))
		flatnessSum += geoMean / (arithMean + 1e-4)
	}

	fluxDenom := float64(numFrames) - 1
	if fluxDenom < 1 {
		fluxDenom = 1
	}

	return spectralResult{
		centroid:      float32(centroidSum / float64(numFrames)),
		rolloff:       float32(rolloffSum / float64(numFrames)),
		flux:          float32(fluxSum / fluxDenom),
		flatness:      float32(flatnessSum / float64(numFrames)),
		peakFrequency: float32(peakFreq),
	}
}

// frameCount mirrors the reference's (len - frameSize) / hopSize
// framing used by the spectral and band passes (the chroma pass in
// key.go steps its own loop).
func frameCount(total, frameSize, hopSize int) int {
	if total < frameSize {
		return 0
	}
	return (total - frameSize) / hopSize
}

// windowedFrame extracts samples[start:start+size], applies the given
// window, and returns it as float64 for FFT input.
func windowedFrame(samples []float32, start, size int, window []float64) []float64 {
	out := make([]float64, size)
	for i := 0; i < size; i++ {
		idx := start + i
		if idx >= len(samples) {
			break
		}
		out[i] = float64(samples[idx]) * window[i]
	}
	return out
}

// rawFrame extracts samples[start:start+size] without windowing, used
// by the band pass which operates on un-windowed magnitude spectra
// (matching the reference's analyze_frequency_bands).
func rawFrame(samples []float32, start, size int) []float64 {
	out := make([]float64, size)
	for i := 0; i < size; i++ {
		idx := start + i
		if idx >= len(samples) {
			break
		}
		out[i] = float64(samples[idx])
	}
	return out
}
