// models/achievement.go
package models

import "time"

// UserAchievement records a single unlock. Rows are append-only: the
// composite unique index makes a second unlock of the same id a no-op.
type UserAchievement struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;uniqueIndex:idx_user_achievement" json:"user_id"`
	AchievementID string    `gorm:"not null;size:64;uniqueIndex:idx_user_achievement" json:"achievement_id"`
	UnlockedAt    time.Time `json:"unlocked_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (UserAchievement) TableName() string {
	return "user_achievements"
}
