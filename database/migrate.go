// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"drawly/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.UserStats{},
		&models.UserAchievement{},
		&models.WeeklyChallenge{},
	); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	createIndexes()

	log.Println("✅ All migrations completed successfully")
}

func createIndexes() {
	db := GetDB()

	// Leaderboard orderings
	db.Exec("CREATE INDEX IF NOT EXISTS idx_user_stats_points ON user_stats(total_points DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_user_stats_streak ON user_stats(longest_streak DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_user_stats_draws ON user_stats(total_draws DESC)")

	// Unlock history lookups
	db.Exec("CREATE INDEX IF NOT EXISTS idx_user_achievements_user ON user_achievements(user_id)")

	// Challenge history per user
	db.Exec("CREATE INDEX IF NOT EXISTS idx_weekly_challenges_user ON weekly_challenges(user_id)")
}
