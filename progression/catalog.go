// progression/catalog.go - Static progression catalog: point values, level
// tiers, achievement definitions and weekly challenge templates. Pure data.
package progression

// Draw types. Unknown types score as a basic draw.
const (
	DrawTeam   = "team"
	DrawNumber = "number"
	DrawBingo  = "bingo"
	DrawNames  = "names"
)

// Fixed-value social action types.
const (
	ActionShare       = "share"
	ActionListCreated = "list_created"
	ActionFavorite    = "favorite"
)

// Point values.
const (
	BasicDrawPoints  = 10
	TeamDrawPoints   = 15
	NumberDrawPoints = 12
	BingoDrawPoints  = 20

	SharePoints       = 15
	ListCreatedPoints = 20
	FavoritePoints    = 5

	FirstDailyDrawBonus = 5
	StreakBonusBase     = 2
	StreakBonusCap      = 7
	WeekendBonus        = 5
	LuckyDrawBonus      = 8
)

// Bonus and counter windows, hours in the engine's reference timezone.
const (
	LuckyHourStart = 19 // inclusive
	LuckyHourEnd   = 23 // exclusive
	NightHourEnd   = 6  // 00:00-05:59 counts as night
	MorningHourEnd = 12 // 06:00-11:59 counts as morning
)

// basePointsFor maps a draw type to its base value. Unrecognized types fall
// back to the basic draw value rather than failing.
func basePointsFor(drawType string) int {
	switch drawType {
	case DrawTeam:
		return TeamDrawPoints
	case DrawNumber:
		return NumberDrawPoints
	case DrawBingo:
		return BingoDrawPoints
	default:
		return BasicDrawPoints
	}
}

// LevelTier is a named band of total points.
type LevelTier struct {
	Level     int    `json:"level"`
	Name      string `json:"name"`
	MinPoints int    `json:"min_points"`
}

// Ascending by MinPoints. The first tier starts at 0, so LevelFor is total.
var levelTiers = []LevelTier{
	{1, "Rookie", 0},
	{2, "Dabbler", 100},
	{3, "Regular", 250},
	{4, "Enthusiast", 500},
	{5, "Expert", 1000},
	{6, "Master", 2000},
	{7, "Grandmaster", 3500},
	{8, "Champion", 5500},
	{9, "Legend", 8000},
	{10, "Mythic", 12000},
}

// LevelTiers returns a copy of the level table.
func LevelTiers() []LevelTier {
	out := make([]LevelTier, len(levelTiers))
	copy(out, levelTiers)
	return out
}

// Rarity orders achievements by scarcity. Display-only.
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
)

func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "common"
	case RarityUncommon:
		return "uncommon"
	case RarityRare:
		return "rare"
	case RarityEpic:
		return "epic"
	case RarityLegendary:
		return "legendary"
	default:
		return "unknown"
	}
}

func (r Rarity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + r.String() + `"`), nil
}

// StatKind selects the UserStats field an achievement rule watches. Every
// watched stat only ever grows, so rules stay satisfied once satisfied and
// the evaluator never has to re-check unlocked ids.
type StatKind int

const (
	StatTotalPoints StatKind = iota
	StatTotalDraws
	StatTeamDraws
	StatNumberDraws
	StatBingoDraws
	StatShareCount
	StatListsCreated
	StatFavoriteLists
	StatWeekendDraws
	StatNightDraws
	StatMorningDraws
	StatLongestStreak
)

// AchievementDefinition is a table-driven unlock rule: unlocks when the
// selected stat reaches Threshold.
type AchievementDefinition struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Icon         string   `json:"icon"`
	Rarity       Rarity   `json:"rarity"`
	RewardPoints int      `json:"reward_points"`
	Stat         StatKind `json:"-"`
	Threshold    int      `json:"-"`
}

var achievementCatalog = []AchievementDefinition{
	{"first_draw", "First Draw", "Run your first draw", "🎲", RarityCommon, 10, StatTotalDraws, 1},
	{"draws_10", "Getting the Hang of It", "Run 10 draws", "🎯", RarityCommon, 25, StatTotalDraws, 10},
	{"draws_50", "Draw Enthusiast", "Run 50 draws", "🔥", RarityUncommon, 75, StatTotalDraws, 50},
	{"draws_100", "Draw Machine", "Run 100 draws", "⚙️", RarityRare, 150, StatTotalDraws, 100},
	{"draws_500", "Draw Legend", "Run 500 draws", "👑", RarityLegendary, 500, StatTotalDraws, 500},

	{"team_maker_10", "Team Maker", "Run 10 team draws", "⚽", RarityUncommon, 40, StatTeamDraws, 10},
	{"number_picker_10", "Number Picker", "Run 10 number draws", "🔢", RarityUncommon, 40, StatNumberDraws, 10},
	{"bingo_caller_10", "Bingo Caller", "Run 10 bingo draws", "🎱", RarityUncommon, 40, StatBingoDraws, 10},

	{"streak_3_days", "Warming Up", "Keep a 3 day streak", "🌡️", RarityCommon, 20, StatLongestStreak, 3},
	{"streak_7_days", "One Full Week", "Keep a 7 day streak", "📅", RarityUncommon, 60, StatLongestStreak, 7},
	{"streak_30_days", "Iron Habit", "Keep a 30 day streak", "🏆", RarityEpic, 300, StatLongestStreak, 30},

	{"first_share", "Spread the Word", "Share a draw result", "📣", RarityCommon, 10, StatShareCount, 1},
	{"social_10", "Social Butterfly", "Share 10 draw results", "🦋", RarityRare, 80, StatShareCount, 10},
	{"first_list", "List Builder", "Create your first list", "📝", RarityCommon, 10, StatListsCreated, 1},
	{"list_collector_5", "List Collector", "Create 5 lists", "🗂️", RarityUncommon, 40, StatListsCreated, 5},
	{"favorites_5", "Curator", "Favorite 5 lists", "⭐", RarityUncommon, 30, StatFavoriteLists, 5},

	{"weekend_10", "Weekend Warrior", "Run 10 weekend draws", "🛋️", RarityUncommon, 50, StatWeekendDraws, 10},
	{"night_owl_10", "Night Owl", "Run 10 draws after midnight", "🦉", RarityRare, 60, StatNightDraws, 10},
	{"early_bird_10", "Early Bird", "Run 10 morning draws", "🐦", RarityRare, 60, StatMorningDraws, 10},

	{"points_1000", "Point Collector", "Reach 1000 points", "💎", RarityRare, 100, StatTotalPoints, 1000},
	{"points_10000", "Point Hoarder", "Reach 10000 points", "🏦", RarityEpic, 400, StatTotalPoints, 10000},
}

// Achievements returns the catalog in declaration order.
func Achievements() []AchievementDefinition {
	out := make([]AchievementDefinition, len(achievementCatalog))
	copy(out, achievementCatalog)
	return out
}

// ProgressType tells the weekly challenge state machine how progress
// advances for a template.
type ProgressType string

const (
	ProgressDailyDraws    ProgressType = "daily_draws"    // one tick per distinct day with a draw
	ProgressTotalDraws    ProgressType = "total_draws"    // one tick per draw
	ProgressDistinctTypes ProgressType = "distinct_types" // tick when a new action type appears
	ProgressShares        ProgressType = "shares"
	ProgressListsCreated  ProgressType = "lists_created"
)

// ChallengeTemplate is an immutable weekly challenge blueprint.
type ChallengeTemplate struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Icon         string       `json:"icon"`
	Type         ProgressType `json:"type"`
	Target       int          `json:"target"`
	RewardPoints int          `json:"reward_points"`
}

var challengeCatalog = []ChallengeTemplate{
	{"weekly_daily_5", "Daily Dedication", "Draw on 5 different days this week", "📆", ProgressDailyDraws, 5, 100},
	{"weekly_draws_20", "Draw Marathon", "Run 20 draws this week", "🏃", ProgressTotalDraws, 20, 120},
	{"weekly_variety_4", "Mix It Up", "Use 4 different action types this week", "🎨", ProgressDistinctTypes, 4, 90},
	{"weekly_shares_3", "Show and Tell", "Share 3 results this week", "📤", ProgressShares, 3, 80},
	{"weekly_lists_2", "List Architect", "Create 2 lists this week", "🏗️", ProgressListsCreated, 2, 70},
}

// ChallengeTemplates returns the weekly template catalog.
func ChallengeTemplates() []ChallengeTemplate {
	out := make([]ChallengeTemplate, len(challengeCatalog))
	copy(out, challengeCatalog)
	return out
}

// TemplateByID resolves a stored template reference.
func TemplateByID(id string) (ChallengeTemplate, bool) {
	for _, tpl := range challengeCatalog {
		if tpl.ID == id {
			return tpl, true
		}
	}
	return ChallengeTemplate{}, false
}
