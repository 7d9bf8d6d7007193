// progression/streak.go
package progression

import "time"

// NextStreak derives the streak after an action at now, given the previous
// streak and the date of the last recorded action. Comparison is by
// calendar date only; both times must be in the same timezone.
//
// Same day: streak unchanged, not the first action today. Yesterday: streak
// continues. Anything older, or no previous action: streak restarts at 1.
func NextStreak(previousStreak int, lastActionDate *time.Time, now time.Time) (newStreak int, firstActionToday bool) {
	if lastActionDate == nil {
		return 1, true
	}

	last := dateOf(*lastActionDate)
	today := dateOf(now)

	switch {
	case last.Equal(today):
		return previousStreak, false
	case last.Equal(today.AddDate(0, 0, -1)):
		return previousStreak + 1, true
	default:
		return 1, true
	}
}

// dateOf truncates t to midnight in its own location.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameCalendarDay(a, b time.Time) bool {
	return dateOf(a).Equal(dateOf(b))
}
