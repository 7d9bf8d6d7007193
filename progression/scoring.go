// progression/scoring.go
package progression

import "time"

// PointsFor computes the points earned by one draw. Bonuses are additive
// and independent, so the result is never below the base value for the
// draw type. now must already be in the engine's reference timezone.
func PointsFor(drawType string, firstActionToday bool, streak int, now time.Time) int {
	points := basePointsFor(drawType)

	if firstActionToday {
		points += FirstDailyDrawBonus
	}

	if streak > 1 {
		n := streak
		if n > StreakBonusCap {
			n = StreakBonusCap
		}
		points += StreakBonusBase * n
	}

	if isWeekend(now) {
		points += WeekendBonus
	}

	if isLuckyHour(now) {
		points += LuckyDrawBonus
	}

	return points
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func isLuckyHour(t time.Time) bool {
	h := t.Hour()
	return h >= LuckyHourStart && h < LuckyHourEnd
}

func isNight(t time.Time) bool {
	return t.Hour() < NightHourEnd
}

func isMorning(t time.Time) bool {
	h := t.Hour()
	return h >= NightHourEnd && h < MorningHourEnd
}
