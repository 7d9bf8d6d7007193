// models/stats.go
package models

import (
	"time"
)

// UserStats is the single mutable progression record for a user. The
// progression engine owns every field here; handlers only read it.
type UserStats struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	// Points
	TotalPoints int `gorm:"default:0" json:"total_points"`

	// Draw counters
	TotalDraws  int `gorm:"default:0" json:"total_draws"`
	TeamDraws   int `gorm:"default:0" json:"team_draws"`
	NumberDraws int `gorm:"default:0" json:"number_draws"`
	BingoDraws  int `gorm:"default:0" json:"bingo_draws"`

	// Social counters
	ShareCount    int `gorm:"default:0" json:"share_count"`
	ListsCreated  int `gorm:"default:0" json:"lists_created"`
	FavoriteLists int `gorm:"default:0" json:"favorite_lists"`

	// Time-bucket counters
	WeekendDraws int `gorm:"default:0" json:"weekend_draws"`
	NightDraws   int `gorm:"default:0" json:"night_draws"`
	MorningDraws int `gorm:"default:0" json:"morning_draws"`

	// Streaks. LongestStreak never decreases and is always >= CurrentStreak.
	CurrentStreak  int        `gorm:"default:0" json:"current_streak"`
	LongestStreak  int        `gorm:"default:0" json:"longest_streak"`
	LastActionDate *time.Time `json:"last_action_date"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserStats) TableName() string {
	return "user_stats"
}
