package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"taskboard/internal/database"
	"taskboard/internal/domain"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		databaseURL = "taskboard.db"
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.RefreshToken{},
		&domain.Status{},
		&domain.Tag{},
		&domain.Task{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM task_tags")
	db.Exec("DELETE FROM tasks")
	db.Exec("DELETE FROM tags")
	db.Exec("DELETE FROM statuses")
	db.Exec("DELETE FROM refresh_tokens")
	db.Exec("DELETE FROM users")

	log.Println("Creating demo user...")
	hash, _ := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)
	user := domain.User{
		ID:           uuid.NewString(),
		Email:        "a@b.com",
		PasswordHash: string(hash),
	}
	db.Create(&user)

	log.Println("Creating default statuses...")
	statuses := make(map[string]domain.Status, len(domain.DefaultStatuses))
	for _, ds := range domain.DefaultStatuses {
		s := domain.Status{
			ID:        uuid.NewString(),
			Name:      ds.Name,
			Color:     ds.Color,
			IsDefault: true,
			UserID:    user.ID,
		}
		db.Create(&s)
		statuses[s.Name] = s
	}

	log.Println("Creating default tags...")
	tags := make(map[string]domain.Tag, len(domain.DefaultTags))
	for _, dt := range domain.DefaultTags {
		t := domain.Tag{
			ID:        uuid.NewString(),
			Name:      dt.Name,
			Color:     dt.Color,
			IsDefault: true,
			UserID:    user.ID,
		}
		db.Create(&t)
		tags[t.Name] = t
	}

	log.Println("Creating sample tasks...")
	deadline := time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour)
	samples := []struct {
		title       string
		description string
		status      string
		tags        []string
		deadline    *time.Time
	}{
		{
			title:       "Set up the project board",
			description: "Walk through the columns and drag this card around.",
			status:      domain.StatusToDo,
			tags:        []string{"Documentation"},
		},
		{
			title:       "Fix login redirect loop",
			description: "Expired sessions bounce between the board and the login page.",
			status:      "In Progress",
			tags:        []string{"Bug", "Urgent"},
			deadline:    &deadline,
		},
		{
			title:       "Add deadline reminders",
			description: "Push a board event when a task crosses its deadline.",
			status:      "Backlog",
			tags:        []string{"Feature"},
		},
	}
	for i, sample := range samples {
		status := statuses[sample.status]
		taskTags := make([]domain.Tag, 0, len(sample.tags))
		for _, name := range sample.tags {
			taskTags = append(taskTags, tags[name])
		}
		task := domain.Task{
			ID:          uuid.NewString(),
			Title:       sample.title,
			Description: sample.description,
			StatusID:    &status.ID,
			Deadline:    sample.deadline,
			UserID:      user.ID,
			Tags:        taskTags,
		}
		if err := db.Create(&task).Error; err != nil {
			log.Fatal(fmt.Sprintf("task %d failed: ", i+1), err)
		}
	}

	log.Println("Seed completed!")
	log.Println("Test account: a@b.com / Password123")
}
