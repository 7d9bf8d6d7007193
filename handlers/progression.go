// handlers/progression.go - Read endpoints for progression state.
package handlers

import (
	"time"

	"drawly/database"
	"drawly/middleware"
	"drawly/models"
	"drawly/progression"

	"github.com/gofiber/fiber/v2"
)

// GetProgression returns the authenticated user's level, points and streak.
func GetProgression(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var stats models.UserStats
	if err := db.Where("user_id = ?", userID).First(&stats).Error; err != nil {
		// No actions yet: report the zero record
		stats = models.UserStats{UserID: userID}
	}

	level := progression.LevelFor(stats.TotalPoints)

	return c.JSON(fiber.Map{
		"success":          true,
		"level":            level.Level,
		"level_name":       level.Name,
		"total_points":     stats.TotalPoints,
		"points_to_next":   progression.PointsToNextLevel(stats.TotalPoints),
		"total_draws":      stats.TotalDraws,
		"current_streak":   stats.CurrentStreak,
		"longest_streak":   stats.LongestStreak,
		"share_count":      stats.ShareCount,
		"lists_created":    stats.ListsCreated,
		"favorite_lists":   stats.FavoriteLists,
		"weekend_draws":    stats.WeekendDraws,
		"night_draws":      stats.NightDraws,
		"morning_draws":    stats.MorningDraws,
		"last_action_date": stats.LastActionDate,
	})
}

// GetUserAchievements returns the full catalog with per-user unlock state.
func GetUserAchievements(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()

	var unlocked []models.UserAchievement
	if err := db.Where("user_id = ?", userID).Order("unlocked_at ASC").Find(&unlocked).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch achievements"})
	}

	unlockedMap := make(map[string]time.Time, len(unlocked))
	for _, ua := range unlocked {
		unlockedMap[ua.AchievementID] = ua.UnlockedAt
	}

	catalog := progression.Achievements()
	achievements := make([]fiber.Map, 0, len(catalog))
	for _, def := range catalog {
		achData := fiber.Map{
			"id":            def.ID,
			"name":          def.Name,
			"description":   def.Description,
			"icon":          def.Icon,
			"rarity":        def.Rarity,
			"reward_points": def.RewardPoints,
			"unlocked":      false,
		}

		if at, ok := unlockedMap[def.ID]; ok {
			achData["unlocked"] = true
			achData["unlocked_at"] = at
		}

		achievements = append(achievements, achData)
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"achievements": achievements,
		"total":        len(catalog),
		"unlocked":     len(unlocked),
	})
}

// GetWeeklyChallenge returns the active challenge for the current week,
// creating one if the week has none yet.
func GetWeeklyChallenge(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	challenge, err := engine.ActiveChallenge(userID, time.Now())
	if err != nil {
		return progressionError(c, err, "Failed to load weekly challenge")
	}

	response := fiber.Map{
		"success":   true,
		"challenge": challenge,
	}
	if tpl, ok := progression.TemplateByID(challenge.TemplateID); ok {
		response["template"] = tpl
	}
	return c.JSON(response)
}

// GetChallengeHistory returns past weekly challenge instances.
func GetChallengeHistory(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	db := database.GetDB()
	var history []models.WeeklyChallenge
	if err := db.Where("user_id = ?", userID).Order("week DESC").Limit(26).Find(&history).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch challenge history"})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"challenges": history,
	})
}

// GetLevels returns the level tier table.
func GetLevels(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"levels":  progression.LevelTiers(),
	})
}
