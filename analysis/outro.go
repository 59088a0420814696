package analysis

type outroResult struct {
	bestEndPoint     float32
	confidence       float32
	energyDecayRate  float32
}

// analyzeOutro implements spec.md §4.9.
func analyzeOutro(samples []float32, sampleRate float32, energy energyResult) outroResult {
	duration := float32(len(samples)) / sampleRate

	skip := int(float32(len(energy.envelope)) * 0.8)
	if skip > len(energy.envelope) {
		skip = len(energy.envelope)
	}
	envelopeSlice := energy.envelope[skip:]

	avgEnergy := meanF32(envelopeSlice)

	lowEnergyIdx := -1
	for i := len(envelopeSlice) - 1; i >= 0; i-- {
		// walk reversed order, tracking the position within the
		// reversed sequence (matches Rust's .rev().position(...))
		revIdx := len(envelopeSlice) - 1 - i
		if envelopeSlice[i] < avgEnergy*0.3 {
			lowEnergyIdx = revIdx
			break
		}
	}

	var bestEnd, confidence float32
	if lowEnergyIdx >= 0 {
		fromEnd := float32(lowEnergyIdx) * energyFrameSize / sampleRate
		if fromEnd < 3.0 {
			fromEnd = 3.0
		}
		bestEnd = duration - fromEnd
		confidence = 0.7
	} else {
		bestEnd = duration - 8.0
		confidence = 0.5
	}

	var decay float32
	if len(envelopeSlice) > 1 {
		firstQuarter := len(envelopeSlice) / 4
		lastQuarter := len(envelopeSlice) * 3 / 4
		if lastQuarter > firstQuarter {
			firstAvg := meanF32(envelopeSlice[:firstQuarter])
			lastAvg := meanF32(envelopeSlice[lastQuarter:])
			decay = (firstAvg - lastAvg) / float32(len(envelopeSlice))
		}
	}

	return outroResult{
		bestEndPoint:    bestEnd,
		confidence:      confidence,
		energyDecayRate: decay,
	}
}
