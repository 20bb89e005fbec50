package config

import (
	"fmt"
	"log"
	"os"

	"github.com/lifeguidancewithjesper/pound-drop-sub001/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, relying on environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_USER", "pounddrop"),
		getEnv("DB_PASSWORD", "pounddrop"),
		getEnv("DB_NAME", "pounddrop"),
		getEnv("DB_PORT", "5432"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.WeightEntry{},
		&models.StepEntry{},
		&models.WaterEntry{},
		&models.Meal{},
		&models.DailyMood{},
		&models.UserDevice{},
		&models.ScheduledNotification{},
		&models.ReminderKey{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	seedDemoUser()
}

// seedDemoUser makes sure the fixed demo identity exists so header-less
// requests always resolve to a real row.
func seedDemoUser() {
	demo := models.User{Name: "Jesper", Unit: "lb"}
	demo.ID = models.DemoUserID
	if err := DB.FirstOrCreate(&demo, "id = ?", models.DemoUserID).Error; err != nil {
		log.Fatalf("failed to seed demo user: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
