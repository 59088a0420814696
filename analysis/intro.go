package analysis

const silenceThreshold = 0.001

type introResult struct {
	bestStartPoint    float32
	confidence        float32
	hasSilence        bool
	energyBuildupRate float32
}

// analyzeIntro implements spec.md §4.8.
func analyzeIntro(samples []float32, sampleRate float32, energy energyResult) introResult {
	duration := float32(len(samples)) / sampleRate
	introDuration := duration * 0.15
	if introDuration > 60 {
		introDuration = 60
	}
	introEndSample := int(introDuration * sampleRate)
	if introEndSample > len(samples) {
		introEndSample = len(samples)
	}
	introSamples := samples[:introEndSample]

	hasSilence := false
	for _, s := range introSamples {
		if absf32(s) < silenceThreshold {
			hasSilence = true
			break
		}
	}

	envelopeLen := int(introDuration * sampleRate / energyFrameSize)
	if envelopeLen > len(energy.envelope) {
		envelopeLen = len(energy.envelope)
	}
	if envelopeLen < 0 {
		envelopeLen = 0
	}
	envelopeSlice := energy.envelope[:envelopeLen]

	var bestStart, confidence float32

	if hasSilence {
		silenceEnd := float32(0)
		found := false
		for i, s := range introSamples {
			if absf32(s) > silenceThreshold {
				silenceEnd = float32(i) / sampleRate
				found = true
				break
			}
		}
		if !found {
			silenceEnd = 0
		}
		bestStart = silenceEnd
		if bestStart < 0.5 {
			bestStart = 0.5
		}
		confidence = 0.8
	} else {
		avgEnergy := meanF32(envelopeSlice)
		idx := 0
		for i, e := range envelopeSlice {
			if e > avgEnergy*1.5 {
				idx = i
				break
			}
		}
		bestStart = float32(idx) * energyFrameSize / sampleRate
		if bestStart < 2.0 {
			bestStart = 2.0
		}
		confidence = 0.6
	}

	var buildup float32
	if len(envelopeSlice) > 1 {
		firstQuarter := len(envelopeSlice) / 4
		lastQuarter := len(envelopeSlice) * 3 / 4
		if lastQuarter > firstQuarter {
			firstAvg := meanF32(envelopeSlice[:firstQuarter])
			lastAvg := meanF32(envelopeSlice[lastQuarter:])
			buildup = (lastAvg - firstAvg) / float32(len(envelopeSlice))
		}
	}

	return introResult{
		bestStartPoint:    bestStart,
		confidence:        confidence,
		hasSilence:        hasSilence,
		energyBuildupRate: buildup,
	}
}

func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func meanF32(xs []float32) float32 {
	if len(xs) == 0 {
		return 0
	}
	var s float32
	for _, x := range xs {
		s += x
	}
	return s / float32(len(xs))
}
