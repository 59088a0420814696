package analysis

import "math"

const (
	chromaFrameSize = 4096
	chromaHopSize   = 2048
)

var majorProfile = [12]float32{6.35, 2.23, 3.48, 2.33, 4.38, 4.09, 2.52, 5.19, 2.39, 3.66, 2.29, 2.88}
var minorProfile = [12]float32{6.33, 2.68, 3.52, 5.38, 2.60, 3.53, 2.54, 4.75, 3.98, 2.69, 3.34, 3.17}

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// detectKey implements spec.md §4.6: chroma accumulation over
// 4096/2048 Hann-windowed frames, then Krumhansl-Schmuckler correlation
// against both templates for every rotation.
func detectKey(samples []float32, sampleRate float32) (key string, confidence float32) {
	chroma := buildChroma(samples, sampleRate)

	var bestMajorCorr, bestMinorCorr float32 = -1, -1
	var bestMajorKey, bestMinorKey int

	for root := 0; root < 12; root++ {
		var majorSum, minorSum float32
		for i := 0; i < 12; i++ {
			idx := (i + root) % 12
			majorSum += chroma[idx] * majorProfile[i]
			minorSum += chroma[idx] * minorProfile[i]
		}
		if majorSum > bestMajorCorr {
			bestMajorCorr = majorSum
			bestMajorKey = root
		}
		if minorSum > bestMinorCorr {
			bestMinorCorr = minorSum
			bestMinorKey = root
		}
	}

	var chromaMax float32
	for _, v := range chroma {
		if v > chromaMax {
			chromaMax = v
		}
	}
	// Reference computes major_max and minor_max both as the overall
	// chroma max (see spec.md §9) — kept as the same value here.
	majorMax := chromaMax
	minorMax := chromaMax

	var majorSumProfile, minorSumProfile float32
	for i := 0; i < 12; i++ {
		majorSumProfile += majorProfile[i]
		minorSumProfile += minorProfile[i]
	}

	majorConfidence := bestMajorCorr / majorMax / majorSumProfile
	minorConfidence := bestMinorCorr / minorMax / minorSumProfile

	if majorConfidence > minorConfidence {
		return noteNames[bestMajorKey] + " Major", clamp01(majorConfidence)
	}
	return noteNames[bestMinorKey] + " Minor", clamp01(minorConfidence)
}

func buildChroma(samples []float32, sampleRate float32) [12]float32 {
	var chroma [12]float32
	n := len(samples)
	if n < chromaFrameSize {
		return chroma
	}

	window := hannWindow(chromaFrameSize)
	plan := newFFTPlan(chromaFrameSize)

	for start := 0; start+chromaFrameSize < n; start += chromaHopSize {
		frame := windowedFrame(samples, start, chromaFrameSize, window)
		mag := plan.magnitudes(frame)

		half := len(mag) / 2
		for bin := 0; bin < half; bin++ {
			freq := float64(bin) * float64(sampleRate) / float64(chromaFrameSize)
			if freq < 40 || freq > 5000 {
				continue
			}
			note := math.Mod(12*math.Log2(freq/440)+69, 12)
			if note < 0 {
				note += 12
			}
			bin12 := int(math.Round(note)) % 12
			chroma[bin12] += float32(mag[bin])
		}
	}
	return chroma
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
