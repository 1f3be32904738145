package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"morent/internal/database"
	"morent/internal/domain"
	"morent/internal/modules/reminder"
	"morent/internal/repository"
)

// Standalone retention sweep: prunes sent reminders past the 30-day window
// and drops read notifications older than 90 days. Meant for cron.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "morent.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	ctx := context.Background()

	store := reminder.NewStore(repository.NewKVRepository(db))
	if err := store.Prune(ctx, time.Now()); err != nil {
		log.Fatalf("prune reminders failed: %v", err)
	}

	cutoff := time.Now().AddDate(0, 0, -90)
	res := db.Where("is_read = ? AND created_at < ?", true, cutoff).Delete(&domain.Notification{})
	if res.Error != nil {
		log.Fatalf("cleanup notifications failed: %v", res.Error)
	}

	log.Printf("cleanup completed: notifications=%d", res.RowsAffected)
}
