// progression/levels.go
package progression

// LevelFor returns the highest tier whose MinPoints does not exceed
// totalPoints. The first tier starts at 0, so every input maps to a tier.
func LevelFor(totalPoints int) LevelTier {
	tier := levelTiers[0]
	for _, t := range levelTiers[1:] {
		if totalPoints < t.MinPoints {
			break
		}
		tier = t
	}
	return tier
}

// PointsToNextLevel reports how many points are missing for the next tier,
// or 0 when the top tier is reached.
func PointsToNextLevel(totalPoints int) int {
	for _, t := range levelTiers {
		if totalPoints < t.MinPoints {
			return t.MinPoints - totalPoints
		}
	}
	return 0
}
