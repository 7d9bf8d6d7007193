// progression/engine.go - Progression orchestrator.
//
// The engine is stateless: it holds a Store handle, a reference timezone
// and a random source, and derives every update from the loaded stats
// snapshot plus the caller-supplied clock value. Calls for the same user
// must be serialized by the caller.
package progression

import (
	"fmt"
	"math/rand"
	"time"

	"drawly/models"
)

type Engine struct {
	store Store
	loc   *time.Location
	rng   *rand.Rand
}

type Option func(*Engine)

// WithLocation pins the reference timezone for all calendar math (streak
// days, bonus windows, week keys). Defaults to UTC.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) { e.loc = loc }
}

// WithRand sets the source used for weekly template selection, so tests
// can pin the chosen template.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

func New(store Store, opts ...Option) *Engine {
	e := &Engine{
		store: store,
		loc:   time.UTC,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result summarizes everything one action changed.
type Result struct {
	ActionType           string                  `json:"action_type"`
	PointsEarned         int                     `json:"points_earned"`
	TotalPoints          int                     `json:"total_points"`
	OldLevel             LevelTier               `json:"old_level"`
	NewLevel             LevelTier               `json:"new_level"`
	LeveledUp            bool                    `json:"leveled_up"`
	NewStreak            int                     `json:"current_streak"`
	FirstActionToday     bool                    `json:"first_action_today"`
	UnlockedAchievements []AchievementDefinition `json:"unlocked_achievements"`
	WeeklyChallenge      *models.WeeklyChallenge `json:"weekly_challenge,omitempty"`
}

// RecordDraw applies one draw for a user: streak transition, scoring,
// stats update, achievement evaluation and weekly challenge advancement,
// in that order. Any store failure aborts the call.
func (e *Engine) RecordDraw(userID uint, drawType string, now time.Time) (*Result, error) {
	now = now.In(e.loc)

	stats, err := e.store.GetStats(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: load stats: %v", ErrStorageUnavailable, err)
	}

	var last *time.Time
	if stats.LastActionDate != nil {
		t := stats.LastActionDate.In(e.loc)
		last = &t
	}
	newStreak, firstToday := NextStreak(stats.CurrentStreak, last, now)
	points := PointsFor(drawType, firstToday, newStreak, now)
	oldLevel := LevelFor(stats.TotalPoints)

	stats.TotalPoints += points
	stats.TotalDraws++
	stats.CurrentStreak = newStreak
	if newStreak > stats.LongestStreak {
		stats.LongestStreak = newStreak
	}
	stats.LastActionDate = &now

	switch drawType {
	case DrawTeam:
		stats.TeamDraws++
	case DrawNumber:
		stats.NumberDraws++
	case DrawBingo:
		stats.BingoDraws++
	}
	if isWeekend(now) {
		stats.WeekendDraws++
	}
	if isNight(now) {
		stats.NightDraws++
	} else if isMorning(now) {
		stats.MorningDraws++
	}

	if err := e.store.UpdateStats(userID, statsFields(stats)); err != nil {
		return nil, fmt.Errorf("%w: persist stats: %v", ErrStorageUnavailable, err)
	}

	unlocked, rewardCredit, err := e.creditAchievements(userID, stats)
	if err != nil {
		return nil, err
	}

	challenge, challengeCredit, err := e.advanceChallenge(userID, drawType, true, now)
	if err != nil {
		return nil, err
	}

	total := stats.TotalPoints + rewardCredit + challengeCredit
	newLevel := LevelFor(total)
	return &Result{
		ActionType:           drawType,
		PointsEarned:         points,
		TotalPoints:          total,
		OldLevel:             oldLevel,
		NewLevel:             newLevel,
		LeveledUp:            newLevel.Level > oldLevel.Level,
		NewStreak:            newStreak,
		FirstActionToday:     firstToday,
		UnlockedAchievements: unlocked,
		WeeklyChallenge:      challenge,
	}, nil
}

// RecordShare credits the fixed share value and advances the weekly
// challenge. Shares carry no streak or time bonuses.
func (e *Engine) RecordShare(userID uint, now time.Time) (*Result, error) {
	return e.recordSocial(userID, ActionShare, SharePoints, now, func(stats *models.UserStats) {
		stats.ShareCount++
	})
}

// RecordListCreated credits the fixed list-creation value.
func (e *Engine) RecordListCreated(userID uint, now time.Time) (*Result, error) {
	return e.recordSocial(userID, ActionListCreated, ListCreatedPoints, now, func(stats *models.UserStats) {
		stats.ListsCreated++
	})
}

// RecordFavorite credits the fixed favorite value.
func (e *Engine) RecordFavorite(userID uint, now time.Time) (*Result, error) {
	return e.recordSocial(userID, ActionFavorite, FavoritePoints, now, func(stats *models.UserStats) {
		stats.FavoriteLists++
	})
}

func (e *Engine) recordSocial(userID uint, actionType string, points int, now time.Time, bump func(*models.UserStats)) (*Result, error) {
	now = now.In(e.loc)

	stats, err := e.store.GetStats(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: load stats: %v", ErrStorageUnavailable, err)
	}

	oldLevel := LevelFor(stats.TotalPoints)
	stats.TotalPoints += points
	bump(&stats)

	if err := e.store.UpdateStats(userID, statsFields(stats)); err != nil {
		return nil, fmt.Errorf("%w: persist stats: %v", ErrStorageUnavailable, err)
	}

	challenge, challengeCredit, err := e.advanceChallenge(userID, actionType, false, now)
	if err != nil {
		return nil, err
	}

	total := stats.TotalPoints + challengeCredit
	newLevel := LevelFor(total)
	return &Result{
		ActionType:      actionType,
		PointsEarned:    points,
		TotalPoints:     total,
		OldLevel:        oldLevel,
		NewLevel:        newLevel,
		LeveledUp:       newLevel.Level > oldLevel.Level,
		NewStreak:       stats.CurrentStreak,
		WeeklyChallenge: challenge,
	}, nil
}

// creditAchievements evaluates the catalog against the updated snapshot
// and, for each new unlock, appends it and credits its reward exactly once.
// Returns the unlocked definitions and the total reward credited.
func (e *Engine) creditAchievements(userID uint, stats models.UserStats) ([]AchievementDefinition, int, error) {
	ids, err := e.store.GetUnlockedAchievementIDs(userID)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: load unlocked achievements: %v", ErrStorageUnavailable, err)
	}
	unlocked := make(map[string]bool, len(ids))
	for _, id := range ids {
		unlocked[id] = true
	}

	newly := EvaluateAchievements(stats, unlocked)
	credit := 0
	for _, def := range newly {
		if err := e.store.UnlockAchievement(userID, def.ID); err != nil {
			return nil, 0, fmt.Errorf("%w: unlock %s: %v", ErrStorageUnavailable, def.ID, err)
		}
		if err := e.store.AddPoints(userID, def.RewardPoints); err != nil {
			return nil, 0, fmt.Errorf("%w: credit %s reward: %v", ErrStorageUnavailable, def.ID, err)
		}
		credit += def.RewardPoints
	}
	return newly, credit, nil
}

// statsFields builds the partial update map for UpdateStats. Only fields
// the engine owns appear here.
func statsFields(stats models.UserStats) map[string]any {
	return map[string]any{
		"total_points":     stats.TotalPoints,
		"total_draws":      stats.TotalDraws,
		"team_draws":       stats.TeamDraws,
		"number_draws":     stats.NumberDraws,
		"bingo_draws":      stats.BingoDraws,
		"share_count":      stats.ShareCount,
		"lists_created":    stats.ListsCreated,
		"favorite_lists":   stats.FavoriteLists,
		"weekend_draws":    stats.WeekendDraws,
		"night_draws":      stats.NightDraws,
		"morning_draws":    stats.MorningDraws,
		"current_streak":   stats.CurrentStreak,
		"longest_streak":   stats.LongestStreak,
		"last_action_date": stats.LastActionDate,
	}
}
