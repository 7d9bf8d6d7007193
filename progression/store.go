// progression/store.go
package progression

import "drawly/models"

// Store is the persistence collaborator the engine drives. The engine owns
// all semantics; the store is only the durability boundary. Calls for one
// user must be serialized by the caller — the engine does no locking, and
// overlapping calls for the same user can lose updates.
type Store interface {
	// GetStats returns the stats record for a user. An unknown user yields
	// a zero-valued record, not an error.
	GetStats(userID uint) (models.UserStats, error)

	// UpdateStats merges the given column/value pairs into the stored
	// record, creating it if absent.
	UpdateStats(userID uint, fields map[string]any) error

	GetUnlockedAchievementIDs(userID uint) ([]string, error)

	// UnlockAchievement appends an unlock. Idempotent: unlocking an already
	// unlocked id is a no-op.
	UnlockAchievement(userID uint, achievementID string) error

	// AddPoints credits amount (>= 0) to the user's total points.
	AddPoints(userID uint, amount int) error

	// GetWeeklyChallenge returns the instance for the given week key, or
	// nil when none has been created yet.
	GetWeeklyChallenge(userID uint, week string) (*models.WeeklyChallenge, error)

	SaveWeeklyChallenge(userID uint, challenge *models.WeeklyChallenge) error
	UpdateWeeklyChallenge(userID uint, challenge *models.WeeklyChallenge) error
}
