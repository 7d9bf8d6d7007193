// progression/weekly.go - Weekly challenge state machine.
//
// One instance exists per user per ISO week. It is created lazily on first
// read, with a template drawn at random from the catalog, then advanced on
// each qualifying action until it completes. Completion is one-way and
// credits the reward exactly once; a completed instance ignores further
// updates. A new week starts a fresh cycle independently.
package progression

import (
	"fmt"
	"time"

	"drawly/models"
)

// WeekKey returns the ISO-8601 week key for t, e.g. "2026-W35".
func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// weekBounds returns Monday 00:00 of t's ISO week and the following Monday.
func weekBounds(t time.Time) (start, end time.Time) {
	d := dateOf(t)
	offset := (int(d.Weekday()) + 6) % 7
	start = d.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 7)
}

// ActiveChallenge returns the challenge instance for now's week, creating
// and persisting one when the week has none yet.
func (e *Engine) ActiveChallenge(userID uint, now time.Time) (*models.WeeklyChallenge, error) {
	now = now.In(e.loc)

	week := WeekKey(now)
	challenge, err := e.store.GetWeeklyChallenge(userID, week)
	if err != nil {
		return nil, fmt.Errorf("%w: load weekly challenge: %v", ErrStorageUnavailable, err)
	}
	if challenge != nil {
		return challenge, nil
	}

	tpl := challengeCatalog[e.rng.Intn(len(challengeCatalog))]
	start, end := weekBounds(now)
	challenge = &models.WeeklyChallenge{
		UserID:       userID,
		Week:         week,
		TemplateID:   tpl.ID,
		Target:       tpl.Target,
		RewardPoints: tpl.RewardPoints,
		WeekStart:    start,
		WeekEnd:      end,
	}
	if err := e.store.SaveWeeklyChallenge(userID, challenge); err != nil {
		return nil, fmt.Errorf("%w: save weekly challenge: %v", ErrStorageUnavailable, err)
	}
	return challenge, nil
}

// advanceChallenge moves the active instance forward for one action and
// returns the reward credited by a completion, 0 otherwise. actionType is
// the draw type for draws or one of the Action* tags; isDraw marks draw
// actions for the draw-counting progress types.
func (e *Engine) advanceChallenge(userID uint, actionType string, isDraw bool, now time.Time) (*models.WeeklyChallenge, int, error) {
	challenge, err := e.ActiveChallenge(userID, now)
	if err != nil {
		return nil, 0, err
	}
	if challenge.Completed {
		return challenge, 0, nil
	}

	tpl, ok := TemplateByID(challenge.TemplateID)
	if !ok {
		return nil, 0, fmt.Errorf("%w: unknown challenge template %q", ErrInvalidAction, challenge.TemplateID)
	}

	progressed := false
	switch tpl.Type {
	case ProgressDailyDraws:
		if isDraw && (challenge.LastUpdateDate == nil || !sameCalendarDay(challenge.LastUpdateDate.In(e.loc), now)) {
			challenge.Progress++
			progressed = true
		}
	case ProgressTotalDraws:
		if isDraw {
			challenge.Progress++
			progressed = true
		}
	case ProgressDistinctTypes:
		if challenge.AddCountedType(actionType) {
			challenge.Progress = len(challenge.CountedTypeList())
			progressed = true
		}
	case ProgressShares:
		if actionType == ActionShare {
			challenge.Progress++
			progressed = true
		}
	case ProgressListsCreated:
		if actionType == ActionListCreated {
			challenge.Progress++
			progressed = true
		}
	default:
		return nil, 0, fmt.Errorf("%w: unknown progress type %q", ErrInvalidAction, tpl.Type)
	}

	if !progressed {
		return challenge, 0, nil
	}

	challenge.LastUpdateDate = &now
	credited := 0
	if challenge.Progress >= challenge.Target {
		challenge.Completed = true
		challenge.CompletedAt = &now
		credited = challenge.RewardPoints
	}

	if err := e.store.UpdateWeeklyChallenge(userID, challenge); err != nil {
		return nil, 0, fmt.Errorf("%w: update weekly challenge: %v", ErrStorageUnavailable, err)
	}
	if credited > 0 {
		if err := e.store.AddPoints(userID, credited); err != nil {
			return nil, 0, fmt.Errorf("%w: credit challenge reward: %v", ErrStorageUnavailable, err)
		}
	}
	return challenge, credited, nil
}
