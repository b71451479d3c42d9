package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/appdotbuilder/smart-diet-tracker/models"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment")
	}

	// Nutrient quantities travel as decimals end to end; encode them as
	// plain JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		slog.Error("failed to connect to database", "err", err)
		os.Exit(1)
	}
	DB = db

	if err := Migrate(DB); err != nil {
		slog.Error("migration failed", "err", err)
		os.Exit(1)
	}
}

// Migrate creates or updates the tables for every tracked entity. Also used
// by the test suites against an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.DailyGoal{},
		&models.FoodLog{},
		&models.FluidLog{},
		&models.DailySummary{},
	)
}
