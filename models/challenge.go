// models/challenge.go - Weekly Challenge Data Model
package models

import (
	"strings"
	"time"
)

// WeeklyChallenge is one user's challenge instance for one calendar week.
// Instances are never deleted; a new week gets a fresh row and old rows
// remain as history.
type WeeklyChallenge struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"not null;uniqueIndex:idx_user_week" json:"user_id"`
	Week   string `gorm:"not null;size:10;uniqueIndex:idx_user_week" json:"week"` // e.g. "2026-W35"

	TemplateID   string `gorm:"not null;size:64" json:"template_id"`
	Target       int    `gorm:"not null" json:"target"`
	RewardPoints int    `gorm:"not null" json:"reward_points"`

	Progress       int        `gorm:"default:0" json:"progress"`
	Completed      bool       `gorm:"default:false" json:"completed"` // one-way false -> true
	CompletedAt    *time.Time `json:"completed_at"`
	LastUpdateDate *time.Time `json:"last_update_date"`

	// Action-type tags already counted, comma separated. Only used by the
	// distinct-types progress type.
	CountedTypes string `gorm:"type:text" json:"counted_types,omitempty"`

	WeekStart time.Time `json:"week_start"`
	WeekEnd   time.Time `json:"week_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (WeeklyChallenge) TableName() string {
	return "weekly_challenges"
}

// CountedTypeList returns the counted action-type tags as a slice.
func (c *WeeklyChallenge) CountedTypeList() []string {
	if c.CountedTypes == "" {
		return nil
	}
	return strings.Split(c.CountedTypes, ",")
}

// AddCountedType records a tag and reports whether it was new.
func (c *WeeklyChallenge) AddCountedType(tag string) bool {
	for _, t := range c.CountedTypeList() {
		if t == tag {
			return false
		}
	}
	if c.CountedTypes == "" {
		c.CountedTypes = tag
	} else {
		c.CountedTypes += "," + tag
	}
	return true
}
