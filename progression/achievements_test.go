package progression

import (
	"testing"

	"drawly/models"
)

func TestEvaluateAchievementsSkipsUnlocked(t *testing.T) {
	stats := models.UserStats{TotalDraws: 1}

	newly := EvaluateAchievements(stats, nil)
	if len(newly) != 1 || newly[0].ID != "first_draw" {
		t.Fatalf("expected only first_draw, got %v", ids(newly))
	}

	again := EvaluateAchievements(stats, map[string]bool{"first_draw": true})
	if len(again) != 0 {
		t.Errorf("already unlocked id returned again: %v", ids(again))
	}
}

func TestEvaluateAchievementsMultipleAtOnce(t *testing.T) {
	// A single action can satisfy several definitions; all are returned, in
	// catalog declaration order.
	stats := models.UserStats{TotalDraws: 10, LongestStreak: 3}

	newly := EvaluateAchievements(stats, nil)
	got := ids(newly)
	want := []string{"first_draw", "draws_10", "streak_3_days"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestEvaluateAchievementsMonotone(t *testing.T) {
	unlocked := map[string]bool{}
	smaller := models.UserStats{TotalDraws: 9, ShareCount: 1}
	larger := models.UserStats{TotalDraws: 50, ShareCount: 10}

	before := ids(EvaluateAchievements(smaller, unlocked))
	after := ids(EvaluateAchievements(larger, unlocked))

	afterSet := make(map[string]bool, len(after))
	for _, id := range after {
		afterSet[id] = true
	}
	for _, id := range before {
		if !afterSet[id] {
			t.Errorf("growing stats dropped previously satisfied id %s", id)
		}
	}
	if len(after) <= len(before) {
		t.Errorf("larger stats should satisfy more definitions: %v vs %v", before, after)
	}
}

func TestAchievementCatalogIntegrity(t *testing.T) {
	seen := map[string]bool{}
	for _, def := range Achievements() {
		if def.ID == "" {
			t.Error("achievement with empty id")
		}
		if seen[def.ID] {
			t.Errorf("duplicate achievement id %s", def.ID)
		}
		seen[def.ID] = true
		if def.RewardPoints <= 0 {
			t.Errorf("%s: reward must be positive", def.ID)
		}
		if def.Threshold <= 0 {
			t.Errorf("%s: threshold must be positive", def.ID)
		}
	}
}

func ids(defs []AchievementDefinition) []string {
	out := make([]string, 0, len(defs))
	for _, def := range defs {
		out = append(out, def.ID)
	}
	return out
}
