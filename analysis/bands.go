package analysis

type bandsResult struct {
	bassMean, bassPeak, bassEnergy float32
	midMean, midPeak, midEnergy    float32
	highMean, highPeak, highEnergy float32
	bassMidRatio, midHighRatio     float32
	overallBalance                 float32
}

// analyzeBands computes per-band (bass/mid/high) statistics using the
// same 2048/1024 framing as the spectral pass (spec.md §4.4).
func analyzeBands(samples []float32, sampleRate float32) bandsResult {
	numFrames := frameCount(len(samples), spectralFrameSize, spectralHopSize)
	if numFrames < 1 {
		return bandsResult{}
	}

	bassBins := int(200.0 * float32(spectralFrameSize) / sampleRate)
	midBins := int(2000.0 * float32(spectralFrameSize) / sampleRate)
	highBins := int(8000.0 * float32(spectralFrameSize) / sampleRate)

	plan := newFFTPlan(spectralFrameSize)

	bassEnergies := make([]float64, 0, numFrames)
	midEnergies := make([]float64, 0, numFrames)
	highEnergies := make([]float64, 0, numFrames)

	for i := 0; i < numFrames; i++ {
		start := i * spectralHopSize
		frame := rawFrame(samples, start, spectralFrameSize)
		mag := plan.magnitudes(frame)

		bassEnergies = append(bassEnergies, sumRange(mag, 0, bassBins))
		midEnergies = append(midEnergies, sumRange(mag, bassBins, midBins))
		highEnergies = append(highEnergies, sumRange(mag, midBins, highBins))
	}

	bassMean := mean64(bassEnergies)
	midMean := mean64(midEnergies)
	highMean := mean64(highEnergies)

	bassMidRatio := bassMean / (midMean + 1e-4)
	midHighRatio := midMean / (highMean + 1e-4)

	return bandsResult{
		bassMean:   float32(bassMean),
		bassPeak:   float32(max64(bassEnergies)),
		bassEnergy: float32(sum64(bassEnergies)),
		midMean:    float32(midMean),
		midPeak:    float32(max64(midEnergies)),
		midEnergy:  float32(sum64(midEnergies)),
		highMean:   float32(highMean),
		highPeak:   float32(max64(highEnergies)),
		highEnergy: float32(sum64(highEnergies)),

		bassMidRatio:   float32(bassMidRatio),
		midHighRatio:   float32(midHighRatio),
		overallBalance: float32((bassMean + midMean + highMean) / 3),
	}
}

func sumRange(xs []float64, lo, hi int) float64 {
	if lo < 0 {
		lo = 0
	}
	if hi > len(xs) {
		hi = len(xs)
	}
	var s float64
	for i := lo; i < hi; i++ {
		s += xs[i]
	}
	return s
}

func sum64(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}

func mean64(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return sum64(xs) / float64(len(xs))
}

func max64(xs []float64) float64 {
	var m float64
	for _, x := range xs {
		if x > m {
			m = x
		}
	}
	return m
}
