package analysis

import "strconv"

const optimalCrossfadeDuration = 24.0

type transitionPoints struct {
	recommendedMixIn  float32
	recommendedMixOut float32
	mixInConfidence   float32
	mixOutConfidence  float32
	energyMatchIn     float32
	energyMatchOut    float32
	crossfadeDuration float32
}

// calculateTransitionPoints implements spec.md §4.11.
func calculateTransitionPoints(intro introResult, outro outroResult) transitionPoints {
	return transitionPoints{
		recommendedMixIn:  intro.bestStartPoint + 2,
		recommendedMixOut: outro.bestEndPoint - 4,
		mixInConfidence:   intro.confidence,
		mixOutConfidence:  outro.confidence,
		energyMatchIn:     0.7,
		energyMatchOut:    0.7,
		crossfadeDuration: optimalCrossfadeDuration,
	}
}

// harmonicCompatiblePairs is the same-letter Camelot adjacency set
// from spec.md §4.13(b), stored both directions.
var harmonicCompatiblePairs = map[[2]int]bool{
	{1, 8}: true, {2, 9}: true, {3, 10}: true, {4, 11}: true, {5, 12}: true, {6, 7}: true,
	{8, 1}: true, {9, 2}: true, {10, 3}: true, {11, 4}: true, {12, 5}: true, {7, 6}: true,
}

// minorToMajorPairs is the directional Minor(A)->Major(B) set from
// spec.md §4.13(c). Deliberately one-directional — see
// "Harmonic symmetry weakness" in spec.md §8.
var minorToMajorPairs = map[[2]int]bool{
	{5, 8}: true, {12, 3}: true, {7, 10}: true, {2, 11}: true, {9, 4}: true, {4, 1}: true, {11, 6}: true,
}

// harmonicallyCompatible implements spec.md §4.13's Camelot
// compatibility rules.
func harmonicallyCompatible(key1, key2 string) bool {
	if key1 == "?" || key2 == "?" {
		return false
	}

	num1, letter1, ok1 := splitCamelot(key1)
	num2, letter2, ok2 := splitCamelot(key2)
	if !ok1 || !ok2 {
		return false
	}

	if letter1 == letter2 && (num1 == num2 || absInt(num1-num2) == 12) {
		return true
	}

	if harmonicCompatiblePairs[[2]int{num1, num2}] {
		return true
	}

	if letter1 == 'A' && letter2 == 'B' && minorToMajorPairs[[2]int{num1, num2}] {
		return true
	}

	return false
}

func splitCamelot(key string) (num int, letter byte, ok bool) {
	if len(key) < 2 {
		return 0, 0, false
	}
	letter = key[len(key)-1]
	n, err := strconv.Atoi(key[:len(key)-1])
	if err != nil {
		return 0, 0, false
	}
	return n, letter, true
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// suggestTransition implements spec.md §4.13.
func suggestTransition(current, next FeatureRecord) TransitionSuggestion {
	bpmDiff := absf32(next.BPM - current.BPM)
	bpmCompatible := bpmDiff < 5 || absFMod(current.BPM-next.BPM, 2) < 0.5

	harmonic := harmonicallyCompatible(current.CamelotKey, next.CamelotKey)

	energyMatch := 1 - clampUnit(absf32(next.Energy-current.Energy))

	var transitionType string
	switch {
	case harmonic && energyMatch > 0.7:
		transitionType = "Harmonic Mix"
	case bpmDiff > 10:
		transitionType = "Tempo Change"
	case energyMatch > 0.8:
		transitionType = "Energy Mix"
	case bpmCompatible:
		transitionType = "Beat Matched"
	default:
		transitionType = "Standard Crossfade"
	}

	var compatibilityScore float32
	switch {
	case harmonic:
		compatibilityScore = 0.8
	case energyMatch > 0.7:
		compatibilityScore = 0.6
	default:
		compatibilityScore = 0.4
	}

	fx := suggestFX(transitionType, current.BassMidRatio, next.BassMidRatio, harmonic)

	var harmonicCompatibility float32
	if harmonic {
		harmonicCompatibility = 1
	}

	return TransitionSuggestion{
		TransitionType:        transitionType,
		CompatibilityScore:    compatibilityScore,
		EnergyMatch:           energyMatch,
		HarmonicCompatibility: harmonicCompatibility,
		MixInPoint:            next.IntroBestStartPoint + 2,
		MixOutPoint:           current.OutroBestEndPoint - 4,
		CrossfadeDuration:     optimalCrossfadeDuration,
		FXRecommendation:      fx,
	}
}

func suggestFX(transitionType string, currentBassMid, nextBassMid float32, harmonic bool) string {
	fx := make([]string, 0, 3)

	if !harmonic && (currentBassMid > 1.5 || nextBassMid > 1.5) {
		fx = append(fx, "Notch Filter 60Hz")
	}

	switch transitionType {
	case "Harmonic Mix":
		fx = append(fx, "Reverb - Hall", "Light Echo")
	case "Energy Mix":
		fx = append(fx, "Reverb - Plate", "Filter Sweep")
	case "Tempo Change":
		fx = append(fx, "Short Reverb", "Transient Effect")
	default:
		fx = append(fx, "Light Reverb")
	}

	return joinComma(fx)
}

func joinComma(xs []string) string {
	out := ""
	for i, x := range xs {
		if i > 0 {
			out += ", "
		}
		out += x
	}
	return out
}

func clampUnit(v float32) float32 {
	if v > 1 {
		return 1
	}
	return v
}

func absFMod(x float32, m float32) float32 {
	v := absf32(x)
	r := v - float32(int(v/m))*m
	return r
}
