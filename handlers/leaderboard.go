// handlers/leaderboard.go
package handlers

import (
	"drawly/database"
	"drawly/progression"

	"github.com/gofiber/fiber/v2"
)

type leaderboardRow struct {
	UserID        uint   `json:"user_id"`
	Username      string `json:"username"`
	TotalPoints   int    `json:"total_points"`
	TotalDraws    int    `json:"total_draws"`
	LongestStreak int    `json:"longest_streak"`
}

// GetLeaderboard returns ranked user stats.
// GET /api/leaderboard?category=points&limit=50&offset=0
func GetLeaderboard(c *fiber.Ctx) error {
	category := c.Query("category", "points")
	limit := c.QueryInt("limit", 50)
	if limit < 1 {
		limit = 1
	}
	if limit > 100 {
		limit = 100
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	var orderBy string
	switch category {
	case "streak":
		orderBy = "user_stats.longest_streak DESC, user_stats.total_points DESC"
	case "draws":
		orderBy = "user_stats.total_draws DESC, user_stats.total_points DESC"
	case "points":
		orderBy = "user_stats.total_points DESC, user_stats.total_draws DESC"
	default:
		orderBy = "user_stats.total_points DESC, user_stats.total_draws DESC"
	}

	db := database.GetDB()
	var rows []leaderboardRow
	err := db.Table("user_stats").
		Select("user_stats.user_id, users.username, user_stats.total_points, user_stats.total_draws, user_stats.longest_streak").
		Joins("JOIN users ON users.id = user_stats.user_id").
		Where("users.is_guest = ?", false).
		Order(orderBy).
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch leaderboard"})
	}

	entries := make([]fiber.Map, 0, len(rows))
	for i, row := range rows {
		level := progression.LevelFor(row.TotalPoints)
		entries = append(entries, fiber.Map{
			"rank":           offset + i + 1,
			"user_id":        row.UserID,
			"username":       row.Username,
			"total_points":   row.TotalPoints,
			"total_draws":    row.TotalDraws,
			"longest_streak": row.LongestStreak,
			"level":          level.Level,
			"level_name":     level.Name,
		})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"category":    category,
		"leaderboard": entries,
	})
}
