// handlers/draws.go - Action entry points feeding the progression engine.
package handlers

import (
	"errors"
	"time"

	"drawly/middleware"
	"drawly/progression"

	"github.com/gofiber/fiber/v2"
)

var engine *progression.Engine

// InitProgression wires the shared engine instance. Called once from main.
func InitProgression(e *progression.Engine) {
	engine = e
}

type RecordDrawRequest struct {
	Type string `json:"type"` // team, number, bingo, names, ...
}

// RecordDraw applies one draw for the authenticated user.
func RecordDraw(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	var req RecordDrawRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	result, err := engine.RecordDraw(userID, req.Type, time.Now())
	if err != nil {
		return progressionError(c, err, "Failed to record draw")
	}

	broadcastResult(userID, result)
	return c.JSON(resultResponse(result))
}

// RecordShare credits a result share.
func RecordShare(c *fiber.Ctx) error {
	return recordSocial(c, engine.RecordShare, "Failed to record share")
}

// RecordListCreated credits a participant list creation.
func RecordListCreated(c *fiber.Ctx) error {
	return recordSocial(c, engine.RecordListCreated, "Failed to record list creation")
}

// RecordFavorite credits a list favorite.
func RecordFavorite(c *fiber.Ctx) error {
	return recordSocial(c, engine.RecordFavorite, "Failed to record favorite")
}

func recordSocial(c *fiber.Ctx, apply func(uint, time.Time) (*progression.Result, error), failMsg string) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := apply(userID, time.Now())
	if err != nil {
		return progressionError(c, err, failMsg)
	}

	broadcastResult(userID, result)
	return c.JSON(resultResponse(result))
}

func resultResponse(result *progression.Result) fiber.Map {
	return fiber.Map{
		"success":            true,
		"action_type":        result.ActionType,
		"points_earned":      result.PointsEarned,
		"total_points":       result.TotalPoints,
		"level":              result.NewLevel.Level,
		"level_name":         result.NewLevel.Name,
		"leveled_up":         result.LeveledUp,
		"current_streak":     result.NewStreak,
		"first_action_today": result.FirstActionToday,
		"new_achievements":   result.UnlockedAchievements,
		"weekly_challenge":   result.WeeklyChallenge,
	}
}

func progressionError(c *fiber.Ctx, err error, failMsg string) error {
	if errors.Is(err, progression.ErrInvalidAction) {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(500).JSON(fiber.Map{"error": failMsg})
}
