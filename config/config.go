package config

import (
	"log"
	"os"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/rajatjain1997/meal-planner/models"
)

// OpenDB opens the SQLite database at path and migrates the schema. Tests
// pass ":memory:".
func OpenDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	err = db.AutoMigrate(
		&models.DailyLog{},
		&models.MealPlan{},
		&models.ChatMeal{},
		&models.ChatDay{},
		&models.Counter{},
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}

func InitDB() *gorm.DB {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "meal-planner.db"
	}

	db, err := OpenDB(path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	return db
}
