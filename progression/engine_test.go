package progression

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"drawly/models"
)

// memStore is an in-memory Store with per-method failure injection.
type memStore struct {
	stats      map[uint]models.UserStats
	unlocked   map[uint][]string
	challenges map[string]*models.WeeklyChallenge

	failUpdateStats bool
	failAddPoints   bool
	addPointsCalls  []int
}

func newMemStore() *memStore {
	return &memStore{
		stats:      make(map[uint]models.UserStats),
		unlocked:   make(map[uint][]string),
		challenges: make(map[string]*models.WeeklyChallenge),
	}
}

func (s *memStore) GetStats(userID uint) (models.UserStats, error) {
	if st, ok := s.stats[userID]; ok {
		return st, nil
	}
	return models.UserStats{UserID: userID}, nil
}

func (s *memStore) UpdateStats(userID uint, fields map[string]any) error {
	if s.failUpdateStats {
		return errors.New("update rejected")
	}
	st := s.stats[userID]
	st.UserID = userID
	for k, v := range fields {
		switch k {
		case "total_points":
			st.TotalPoints = v.(int)
		case "total_draws":
			st.TotalDraws = v.(int)
		case "team_draws":
			st.TeamDraws = v.(int)
		case "number_draws":
			st.NumberDraws = v.(int)
		case "bingo_draws":
			st.BingoDraws = v.(int)
		case "share_count":
			st.ShareCount = v.(int)
		case "lists_created":
			st.ListsCreated = v.(int)
		case "favorite_lists":
			st.FavoriteLists = v.(int)
		case "weekend_draws":
			st.WeekendDraws = v.(int)
		case "night_draws":
			st.NightDraws = v.(int)
		case "morning_draws":
			st.MorningDraws = v.(int)
		case "current_streak":
			st.CurrentStreak = v.(int)
		case "longest_streak":
			st.LongestStreak = v.(int)
		case "last_action_date":
			st.LastActionDate = v.(*time.Time)
		}
	}
	s.stats[userID] = st
	return nil
}

func (s *memStore) GetUnlockedAchievementIDs(userID uint) ([]string, error) {
	return s.unlocked[userID], nil
}

func (s *memStore) UnlockAchievement(userID uint, achievementID string) error {
	for _, id := range s.unlocked[userID] {
		if id == achievementID {
			return nil
		}
	}
	s.unlocked[userID] = append(s.unlocked[userID], achievementID)
	return nil
}

func (s *memStore) AddPoints(userID uint, amount int) error {
	if s.failAddPoints {
		return errors.New("credit rejected")
	}
	s.addPointsCalls = append(s.addPointsCalls, amount)
	st := s.stats[userID]
	st.UserID = userID
	st.TotalPoints += amount
	s.stats[userID] = st
	return nil
}

func (s *memStore) challengeKey(userID uint, week string) string {
	return fmt.Sprintf("%d/%s", userID, week)
}

func (s *memStore) GetWeeklyChallenge(userID uint, week string) (*models.WeeklyChallenge, error) {
	return s.challenges[s.challengeKey(userID, week)], nil
}

func (s *memStore) SaveWeeklyChallenge(userID uint, challenge *models.WeeklyChallenge) error {
	s.challenges[s.challengeKey(userID, challenge.Week)] = challenge
	return nil
}

func (s *memStore) UpdateWeeklyChallenge(userID uint, challenge *models.WeeklyChallenge) error {
	s.challenges[s.challengeKey(userID, challenge.Week)] = challenge
	return nil
}

func newTestEngine(store Store) *Engine {
	return New(store, WithRand(rand.New(rand.NewSource(42))))
}

// Fresh user runs a names draw on a Tuesday afternoon: base plus first-daily
// bonus, streak 1, and the first_draw unlock credited on top.
func TestRecordDrawFreshUser(t *testing.T) {
	store := newMemStore()
	eng := newTestEngine(store)
	tuesday := time.Date(2026, 8, 25, 14, 0, 0, 0, time.UTC)

	result, err := eng.RecordDraw(1, DrawNames, tuesday)
	if err != nil {
		t.Fatalf("RecordDraw: %v", err)
	}

	wantPoints := BasicDrawPoints + FirstDailyDrawBonus
	if result.PointsEarned != wantPoints {
		t.Errorf("PointsEarned = %d, want %d", result.PointsEarned, wantPoints)
	}
	if !result.FirstActionToday || result.NewStreak != 1 {
		t.Errorf("got first=%v streak=%d, want first=true streak=1", result.FirstActionToday, result.NewStreak)
	}

	if len(result.UnlockedAchievements) != 1 || result.UnlockedAchievements[0].ID != "first_draw" {
		t.Fatalf("unlocked = %v, want [first_draw]", ids(result.UnlockedAchievements))
	}
	firstDrawReward := result.UnlockedAchievements[0].RewardPoints
	if result.TotalPoints != wantPoints+firstDrawReward {
		t.Errorf("TotalPoints = %d, want %d", result.TotalPoints, wantPoints+firstDrawReward)
	}

	stats := store.stats[1]
	if stats.TotalDraws != 1 || stats.CurrentStreak != 1 || stats.LongestStreak != 1 {
		t.Errorf("persisted stats off: %+v", stats)
	}
	if stats.TotalPoints != wantPoints+firstDrawReward {
		t.Errorf("persisted points = %d, want %d", stats.TotalPoints, wantPoints+firstDrawReward)
	}
	if stats.LastActionDate == nil || !stats.LastActionDate.Equal(tuesday) {
		t.Errorf("last action date not stamped: %v", stats.LastActionDate)
	}
}

// User on a 2-day streak draws bingo on Saturday evening: streak continues
// to 3, all bonuses stack, streak_3_days unlocks.
func TestRecordDrawStreakSaturdayEvening(t *testing.T) {
	store := newMemStore()
	yesterday := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	store.stats[7] = models.UserStats{
		UserID:         7,
		TotalPoints:    50,
		TotalDraws:     5,
		CurrentStreak:  2,
		LongestStreak:  2,
		LastActionDate: &yesterday,
	}
	store.unlocked[7] = []string{"first_draw"}

	eng := newTestEngine(store)
	saturday := time.Date(2026, 8, 29, 20, 0, 0, 0, time.UTC)

	result, err := eng.RecordDraw(7, DrawBingo, saturday)
	if err != nil {
		t.Fatalf("RecordDraw: %v", err)
	}

	if result.NewStreak != 3 {
		t.Errorf("NewStreak = %d, want 3", result.NewStreak)
	}
	wantPoints := BingoDrawPoints + FirstDailyDrawBonus + StreakBonusBase*3 + WeekendBonus + LuckyDrawBonus
	if result.PointsEarned != wantPoints {
		t.Errorf("PointsEarned = %d, want %d", result.PointsEarned, wantPoints)
	}

	if len(result.UnlockedAchievements) != 1 || result.UnlockedAchievements[0].ID != "streak_3_days" {
		t.Fatalf("unlocked = %v, want [streak_3_days]", ids(result.UnlockedAchievements))
	}

	stats := store.stats[7]
	if stats.LongestStreak != 3 || stats.BingoDraws != 1 || stats.WeekendDraws != 1 {
		t.Errorf("persisted stats off: %+v", stats)
	}
	if stats.LongestStreak < stats.CurrentStreak {
		t.Errorf("invariant violated: longest %d < current %d", stats.LongestStreak, stats.CurrentStreak)
	}
}

func TestRecordDrawSecondSameDayNoDailyBonus(t *testing.T) {
	store := newMemStore()
	eng := newTestEngine(store)
	morning := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
	afternoon := time.Date(2026, 8, 25, 15, 0, 0, 0, time.UTC)

	if _, err := eng.RecordDraw(1, DrawTeam, morning); err != nil {
		t.Fatalf("first draw: %v", err)
	}
	result, err := eng.RecordDraw(1, DrawTeam, afternoon)
	if err != nil {
		t.Fatalf("second draw: %v", err)
	}

	if result.FirstActionToday {
		t.Error("second draw of the day reported as first")
	}
	if result.NewStreak != 1 {
		t.Errorf("streak grew within one day: %d", result.NewStreak)
	}
	if result.PointsEarned != TeamDrawPoints {
		t.Errorf("PointsEarned = %d, want bare base %d", result.PointsEarned, TeamDrawPoints)
	}
}

func TestRecordShareFixedValue(t *testing.T) {
	store := newMemStore()
	eng := newTestEngine(store)
	saturday := time.Date(2026, 8, 29, 20, 0, 0, 0, time.UTC)

	// Shares take no streak or time bonuses even on a lucky weekend evening
	result, err := eng.RecordShare(3, saturday)
	if err != nil {
		t.Fatalf("RecordShare: %v", err)
	}
	if result.PointsEarned != SharePoints {
		t.Errorf("PointsEarned = %d, want fixed %d", result.PointsEarned, SharePoints)
	}

	stats := store.stats[3]
	if stats.ShareCount != 1 || stats.TotalDraws != 0 {
		t.Errorf("share must bump share_count only: %+v", stats)
	}
	if stats.LastActionDate != nil {
		t.Error("share must not touch the streak clock")
	}
}

func TestRecordDrawStorageFailureAborts(t *testing.T) {
	store := newMemStore()
	store.failUpdateStats = true
	eng := newTestEngine(store)

	_, err := eng.RecordDraw(1, DrawTeam, time.Date(2026, 8, 25, 14, 0, 0, 0, time.UTC))
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("err = %v, want ErrStorageUnavailable", err)
	}

	if len(store.unlocked[1]) != 0 {
		t.Error("achievements unlocked despite aborted update")
	}
	if len(store.challenges) != 0 {
		t.Error("weekly challenge advanced despite aborted update")
	}
	if len(store.addPointsCalls) != 0 {
		t.Error("points credited despite aborted update")
	}
}

func TestRecordDrawRewardCreditFailureSurfaces(t *testing.T) {
	store := newMemStore()
	store.failAddPoints = true
	eng := newTestEngine(store)

	// Fresh user unlocks first_draw, whose reward credit fails
	_, err := eng.RecordDraw(1, DrawTeam, time.Date(2026, 8, 25, 14, 0, 0, 0, time.UTC))
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("err = %v, want ErrStorageUnavailable", err)
	}
}

func TestActiveChallengeCreatedOncePerWeek(t *testing.T) {
	store := newMemStore()
	eng := newTestEngine(store)
	now := time.Date(2026, 8, 25, 14, 0, 0, 0, time.UTC)

	first, err := eng.ActiveChallenge(9, now)
	if err != nil {
		t.Fatalf("ActiveChallenge: %v", err)
	}
	if _, ok := TemplateByID(first.TemplateID); !ok {
		t.Fatalf("instance references unknown template %q", first.TemplateID)
	}
	if first.Week != "2026-W35" {
		t.Errorf("Week = %q, want 2026-W35", first.Week)
	}

	second, err := eng.ActiveChallenge(9, now.Add(48*time.Hour))
	if err != nil {
		t.Fatalf("ActiveChallenge again: %v", err)
	}
	if second.TemplateID != first.TemplateID || len(store.challenges) != 1 {
		t.Error("same week must reuse the stored instance")
	}

	// A new week rolls a fresh instance; the old one stays as history
	nextWeek, err := eng.ActiveChallenge(9, now.AddDate(0, 0, 7))
	if err != nil {
		t.Fatalf("ActiveChallenge next week: %v", err)
	}
	if nextWeek.Week == first.Week || len(store.challenges) != 2 {
		t.Error("new week must create an independent instance")
	}
}
