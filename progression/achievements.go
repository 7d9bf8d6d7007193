// progression/achievements.go
package progression

import "drawly/models"

// EvaluateAchievements scans the catalog in declaration order and returns
// every definition that is satisfied by stats and not yet unlocked. It
// mutates nothing: the caller must append each returned id to the unlocked
// set and credit its reward exactly once before evaluating again.
func EvaluateAchievements(stats models.UserStats, unlocked map[string]bool) []AchievementDefinition {
	var newly []AchievementDefinition
	for _, def := range achievementCatalog {
		if unlocked[def.ID] {
			continue
		}
		if statValue(stats, def.Stat) >= def.Threshold {
			newly = append(newly, def)
		}
	}
	return newly
}

func statValue(stats models.UserStats, kind StatKind) int {
	switch kind {
	case StatTotalPoints:
		return stats.TotalPoints
	case StatTotalDraws:
		return stats.TotalDraws
	case StatTeamDraws:
		return stats.TeamDraws
	case StatNumberDraws:
		return stats.NumberDraws
	case StatBingoDraws:
		return stats.BingoDraws
	case StatShareCount:
		return stats.ShareCount
	case StatListsCreated:
		return stats.ListsCreated
	case StatFavoriteLists:
		return stats.FavoriteLists
	case StatWeekendDraws:
		return stats.WeekendDraws
	case StatNightDraws:
		return stats.NightDraws
	case StatMorningDraws:
		return stats.MorningDraws
	case StatLongestStreak:
		return stats.LongestStreak
	default:
		return 0
	}
}
