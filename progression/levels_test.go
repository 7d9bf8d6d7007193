package progression

import "testing"

func TestLevelForBoundaries(t *testing.T) {
	tests := []struct {
		points int
		level  int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{249, 2},
		{250, 3},
		{999, 4},
		{1000, 5},
		{11999, 9},
		{12000, 10},
		{1000000, 10},
	}

	for _, tt := range tests {
		got := LevelFor(tt.points)
		if got.Level != tt.level {
			t.Errorf("LevelFor(%d) = level %d, want %d", tt.points, got.Level, tt.level)
		}
	}
}

func TestLevelForIsTightUpperTier(t *testing.T) {
	tiers := LevelTiers()
	for points := 0; points <= 15000; points += 13 {
		tier := LevelFor(points)
		if tier.MinPoints > points {
			t.Fatalf("LevelFor(%d) returned tier %d with min_points %d", points, tier.Level, tier.MinPoints)
		}
		for _, other := range tiers {
			if other.MinPoints <= points && other.Level > tier.Level {
				t.Fatalf("LevelFor(%d) = %d but tier %d (min %d) also qualifies", points, tier.Level, other.Level, other.MinPoints)
			}
		}
	}
}

func TestPointsToNextLevel(t *testing.T) {
	if got := PointsToNextLevel(0); got != 100 {
		t.Errorf("PointsToNextLevel(0) = %d, want 100", got)
	}
	if got := PointsToNextLevel(240); got != 10 {
		t.Errorf("PointsToNextLevel(240) = %d, want 10", got)
	}
	if got := PointsToNextLevel(12000); got != 0 {
		t.Errorf("PointsToNextLevel(12000) = %d, want 0 at top tier", got)
	}
}
