package main

import (
	"log"
	"os"
	"time"

	"taskboard/internal/database"
	"taskboard/internal/domain"

	"github.com/joho/godotenv"
)

// Deletes expired refresh tokens. Meant to run from cron as a fallback for
// deployments where the HTTP cleanup endpoint is not scheduled.
func main() {
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	res := db.Where("expires_at < ?", time.Now()).Delete(&domain.RefreshToken{})
	if res.Error != nil {
		log.Fatalf("cleanup refresh_tokens failed: %v", res.Error)
	}

	log.Printf("auth cleanup completed: refresh_tokens=%d", res.RowsAffected)
}
