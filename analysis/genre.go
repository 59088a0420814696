package analysis

// genreNames lists the ten genres scored by classifyGenre, in the
// tie-break order spec.md §4.12 mandates.
var genreNames = []string{
	"House", "Techno", "Drum & Bass", "Trance", "Dubstep",
	"Hip Hop", "Rock", "Pop", "Ambient", "Jazz",
}

var genreScorers = []func(basicFeatures) float32{
	scoreHouse, scoreTechno, scoreDnb, scoreTrance, scoreDubstep,
	scoreHipHop, scoreRock, scorePop, scoreAmbient, scoreJazz,
}

// classifyGenre implements spec.md §4.12: each genre scored
// independently, highest score wins, ties broken by genreNames order.
func classifyGenre(f basicFeatures) (genre string, confidence float32) {
	bestIdx := 0
	var bestScore float32 = -1
	for i, scorer := range genreScorers {
		score := scorer(f)
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}
	return genreNames[bestIdx], bestScore
}

func scoreHouse(f basicFeatures) float32 {
	var score float32
	if f.bpm >= 118 && f.bpm <= 130 {
		score += 0.3
	}
	if f.spectralCentroid > 2000 && f.spectralCentroid < 5000 {
		score += 0.2
	}
	if f.energy > 0.3 {
		score += 0.2
	}
	if f.dynamicRange < 30 {
		score += 0.2
	}
	if f.zeroCrossingRate > 0.05 {
		score += 0.1
	}
	return score
}

func scoreTechno(f basicFeatures) float32 {
	var score float32
	if f.bpm >= 120 && f.bpm <= 150 {
		score += 0.3
	}
	if f.spectralCentroid > 3000 {
		score += 0.2
	}
	if f.energy > 0.4 {
		score += 0.2
	}
	if f.dynamicRange < 25 {
		score += 0.2
	}
	if f.zeroCrossingRate > 0.08 {
		score += 0.1
	}
	return score
}

func scoreDnb(f basicFeatures) float32 {
	var score float32
	if f.bpm >= 160 && f.bpm <= 180 {
		score += 0.4
	}
	if f.energy > 0.5 {
		score += 0.2
	}
	if f.spectralCentroid > 4000 {
		score += 0.15
	}
	if f.dynamicRange > 35 {
		score += 0.15
	}
	if f.zeroCrossingRate > 0.1 {
		score += 0.1
	}
	return score
}

func scoreTrance(f basicFeatures) float32 {
	var score float32
	if f.bpm >= 128 && f.bpm <= 145 {
		score += 0.3
	}
	if f.energy > 0.35 {
		score += 0.2
	}
	if f.dynamicRange > 30 {
		score += 0.2
	}
	if f.spectralCentroid > 2500 {
		score += 0.15
	}
	return score
}

func scoreDubstep(f basicFeatures) float32 {
	var score float32
	if f.bpm >= 135 && f.bpm <= 145 {
		score += 0.25
	}
	if f.spectralCentroid > 5000 {
		score += 0.2
	}
	if f.dynamicRange > 40 {
		score += 0.2
	}
	if f.zeroCrossingRate > 0.12 {
		score += 0.2
	}
	if f.energy > 0.6 {
		score += 0.15
	}
	return score
}

func scoreHipHop(f basicFeatures) float32 {
	var score float32
	if f.bpm >= 80 && f.bpm <= 110 {
		score += 0.3
	}
	if f.dynamicRange > 35 {
		score += 0.2
	}
	if f.spectralCentroid < 2500 {
		score += 0.2
	}
	if f.zeroCrossingRate < 0.06 {
		score += 0.15
	}
	if f.energy < 0.3 {
		score += 0.15
	}
	return score
}

func scoreRock(f basicFeatures) float32 {
	var score float32
	if f.bpm >= 100 && f.bpm <= 140 {
		score += 0.25
	}
	if f.energy > 0.45 {
		score += 0.25
	}
	if f.dynamicRange > 35 {
		score += 0.2
	}
	if f.spectralCentroid > 3000 {
		score += 0.15
	}
	if f.zeroCrossingRate > 0.07 {
		score += 0.15
	}
	return score
}

func scorePop(f basicFeatures) float32 {
	var score float32
	if f.bpm >= 100 && f.bpm <= 130 {
		score += 0.3
	}
	if f.energy > 0.3 && f.energy < 0.6 {
		score += 0.25
	}
	if f.dynamicRange < 35 {
		score += 0.2
	}
	if f.spectralCentroid > 2000 && f.spectralCentroid < 4500 {
		score += 0.15
	}
	if f.zeroCrossingRate > 0.04 {
		score += 0.1
	}
	return score
}

func scoreAmbient(f basicFeatures) float32 {
	var score float32
	if f.energy < 0.2 {
		score += 0.4
	}
	if f.dynamicRange < 25 {
		score += 0.25
	}
	if f.spectralCentroid < 2000 {
		score += 0.2
	}
	if f.zeroCrossingRate < 0.03 {
		score += 0.15
	}
	return score
}

func scoreJazz(f basicFeatures) float32 {
	var score float32
	if f.bpm >= 60 && f.bpm <= 120 {
		score += 0.3
	}
	if f.dynamicRange > 30 {
		score += 0.25
	}
	if f.spectralCentroid < 3000 {
		score += 0.2
	}
	if f.zeroCrossingRate < 0.05 {
		score += 0.15
	}
	return score
}
