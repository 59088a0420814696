package analysis

import "math"

const numProfileSections = 16

type profileResult struct {
	overallMomentum float32
	averageEnergy   float32
	peakEnergy      float32
	valleyEnergy    float32
	energyVariance  float32
}

// analyzeEnergyProfile implements spec.md §4.10: 16 equal sections of
// the raw signal, their RMS, and a momentum vector over the RMS series.
func analyzeEnergyProfile(samples []float32, sampleRate float32) profileResult {
	duration := float32(len(samples)) / sampleRate
	sectionDuration := duration / numProfileSections
	sectionSamples := int(sectionDuration * sampleRate)

	sectionEnergies := make([]float32, numProfileSections)
	for i := 0; i < numProfileSections; i++ {
		start := i * sectionSamples
		if start > len(samples) {
			start = len(samples)
		}
		end := start + sectionSamples
		if end > len(samples) {
			end = len(samples)
		}
		section := samples[start:end]

		var sumSq float64
		for _, s := range section {
			sumSq += float64(s) * float64(s)
		}
		var energy float64
		if len(section) > 0 {
			energy = sumSq / float64(len(section))
		}
		sectionEnergies[i] = float32(math.Sqrt(energy))
	}

	momentum := make([]float32, numProfileSections)
	for i := 0; i < numProfileSections; i++ {
		if i == 0 {
			momentum[i] = sectionEnergies[0]
		} else {
			change := sectionEnergies[i] - sectionEnergies[i-1]
			if change < 0 {
				change = 0
			}
			momentum[i] = change
		}
	}

	avg := meanF32(sectionEnergies)
	var peak float32
	valley := float32(math.MaxFloat32)
	for _, e := range sectionEnergies {
		if e > peak {
			peak = e
		}
		if e < valley {
			valley = e
		}
	}

	var variance float64
	for _, e := range sectionEnergies {
		d := float64(e) - float64(avg)
		variance += d * d
	}
	variance /= float64(numProfileSections)

	return profileResult{
		overallMomentum: meanF32(momentum),
		averageEnergy:   avg,
		peakEnergy:      peak,
		valleyEnergy:    valley,
		energyVariance:  float32(variance),
	}
}
