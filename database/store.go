// database/store.go - GORM-backed implementation of progression.Store.
package database

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"drawly/models"
)

// ProgressionStore persists progression state in PostgreSQL. It contains
// no progression semantics; the engine owns those.
type ProgressionStore struct {
	db *gorm.DB
}

func NewProgressionStore(db *gorm.DB) *ProgressionStore {
	return &ProgressionStore{db: db}
}

// GetStats returns the stats row for a user. Users without a row yet read
// as a zero-valued record.
func (s *ProgressionStore) GetStats(userID uint) (models.UserStats, error) {
	var stats models.UserStats
	err := s.db.Where("user_id = ?", userID).First(&stats).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.UserStats{UserID: userID}, nil
	}
	if err != nil {
		return models.UserStats{}, err
	}
	return stats, nil
}

// UpdateStats merges the given fields into the user's row, creating the
// row first when the user has none.
func (s *ProgressionStore) UpdateStats(userID uint, fields map[string]any) error {
	var stats models.UserStats
	if err := s.db.Where(models.UserStats{UserID: userID}).FirstOrCreate(&stats).Error; err != nil {
		return err
	}
	return s.db.Model(&models.UserStats{}).Where("user_id = ?", userID).Updates(fields).Error
}

func (s *ProgressionStore) GetUnlockedAchievementIDs(userID uint) ([]string, error) {
	var ids []string
	err := s.db.Model(&models.UserAchievement{}).
		Where("user_id = ?", userID).
		Order("unlocked_at ASC").
		Pluck("achievement_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// UnlockAchievement appends an unlock row. The composite unique index plus
// ON CONFLICT DO NOTHING make repeat unlocks a no-op.
func (s *ProgressionStore) UnlockAchievement(userID uint, achievementID string) error {
	unlock := models.UserAchievement{
		UserID:        userID,
		AchievementID: achievementID,
		UnlockedAt:    time.Now().UTC(),
	}
	return s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&unlock).Error
}

// AddPoints credits amount to total_points with a single SQL increment.
func (s *ProgressionStore) AddPoints(userID uint, amount int) error {
	if amount <= 0 {
		return nil
	}
	var stats models.UserStats
	if err := s.db.Where(models.UserStats{UserID: userID}).FirstOrCreate(&stats).Error; err != nil {
		return err
	}
	return s.db.Model(&models.UserStats{}).
		Where("user_id = ?", userID).
		UpdateColumn("total_points", gorm.Expr("total_points + ?", amount)).Error
}

func (s *ProgressionStore) GetWeeklyChallenge(userID uint, week string) (*models.WeeklyChallenge, error) {
	var challenge models.WeeklyChallenge
	err := s.db.Where("user_id = ? AND week = ?", userID, week).First(&challenge).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &challenge, nil
}

func (s *ProgressionStore) SaveWeeklyChallenge(userID uint, challenge *models.WeeklyChallenge) error {
	challenge.UserID = userID
	return s.db.Create(challenge).Error
}

func (s *ProgressionStore) UpdateWeeklyChallenge(userID uint, challenge *models.WeeklyChallenge) error {
	challenge.UserID = userID
	return s.db.Save(challenge).Error
}
