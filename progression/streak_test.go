package progression

import (
	"testing"
	"time"
)

func TestNextStreak(t *testing.T) {
	now := time.Date(2026, 8, 25, 14, 0, 0, 0, time.UTC)
	sameDay := time.Date(2026, 8, 25, 8, 30, 0, 0, time.UTC)
	yesterday := time.Date(2026, 8, 24, 22, 0, 0, 0, time.UTC)
	twoDaysAgo := time.Date(2026, 8, 23, 14, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2026, 7, 25, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		previous   int
		last       *time.Time
		wantStreak int
		wantFirst  bool
	}{
		{"no previous action", 0, nil, 1, true},
		{"same calendar day", 4, &sameDay, 4, false},
		{"yesterday continues", 4, &yesterday, 5, true},
		{"two day gap resets to one", 4, &twoDaysAgo, 1, true},
		{"one day streak then gap resets to one, not zero", 1, &lastMonth, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotStreak, gotFirst := NextStreak(tt.previous, tt.last, now)
			if gotStreak != tt.wantStreak || gotFirst != tt.wantFirst {
				t.Errorf("NextStreak(%d, %v) = (%d, %v), want (%d, %v)",
					tt.previous, tt.last, gotStreak, gotFirst, tt.wantStreak, tt.wantFirst)
			}
		})
	}
}

// Applying the streak rule twice within one calendar day must not grow the
// streak again: the second call sees today's date and reports not-first.
func TestNextStreakSameDayIdempotent(t *testing.T) {
	yesterday := time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC)
	now := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)

	first, firstToday := NextStreak(3, &yesterday, now)
	if first != 4 || !firstToday {
		t.Fatalf("first call = (%d, %v), want (4, true)", first, firstToday)
	}

	later := now.Add(5 * time.Hour)
	second, secondToday := NextStreak(first, &now, later)
	if second != 4 || secondToday {
		t.Fatalf("second call = (%d, %v), want (4, false)", second, secondToday)
	}
}

func TestNextStreakAcrossMidnight(t *testing.T) {
	lastNight := time.Date(2026, 8, 24, 23, 59, 0, 0, time.UTC)
	justAfterMidnight := time.Date(2026, 8, 25, 0, 1, 0, 0, time.UTC)

	got, first := NextStreak(2, &lastNight, justAfterMidnight)
	if got != 3 || !first {
		t.Errorf("minutes across midnight still count as consecutive days: got (%d, %v)", got, first)
	}
}
