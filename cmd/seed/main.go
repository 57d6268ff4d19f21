package main

import (
	"log"
	"os"

	"featurevote-be/internal/entity"
	"featurevote-be/internal/model"
	"featurevote-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding admin account...")
	admin := seedAdmin(db)

	color.Cyan("Seeding demo features...")
	seedFeatures(db, admin)

	color.Green("Seeding completed!")
}

func seedAdmin(db *gorm.DB) *model.User {
	email := getEnv("SEED_ADMIN_EMAIL", "admin@featurevote.local")

	var existing model.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		color.Yellow("Admin '%s' already exists, skipping...", email)
		return &existing
	}

	password := getEnv("SEED_ADMIN_PASSWORD", "admin12345")
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: failed to hash admin password: %v", err)
	}
	hashStr := string(hash)

	admin := model.User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: &hashStr,
		Role:         string(entity.UserRoleAdmin),
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Error: failed to create admin: %v", err)
	}

	color.Green("Created admin: %s", email)
	return &admin
}

func seedFeatures(db *gorm.DB, creator *model.User) {
	features := []model.Feature{
		{Title: "Dark mode", Description: "A dark color scheme for late-night browsing", Status: string(entity.StatusInProgress), CreatorId: creator.Id},
		{Title: "CSV export", Description: "Export the feature list with vote counts as CSV", Status: string(entity.StatusPlanned), CreatorId: creator.Id},
		{Title: "Email digests", Description: "Weekly summary of the most-voted features", Status: string(entity.StatusPending), CreatorId: creator.Id},
	}

	for _, f := range features {
		var existing model.Feature
		if err := db.Where("title = ? AND creator_id = ?", f.Title, f.CreatorId).First(&existing).Error; err == nil {
			color.Yellow("Feature '%s' already exists, skipping...", f.Title)
			continue
		}

		if err := db.Create(&f).Error; err != nil {
			log.Printf("Error creating feature '%s': %v", f.Title, err)
			continue
		}

		// Keep the audit trail coherent for seeded rows as well.
		change := model.StatusChange{
			FeatureId: f.Id,
			OldStatus: string(entity.StatusPending),
			NewStatus: f.Status,
		}
		if err := db.Create(&change).Error; err != nil {
			log.Printf("Error creating status change for '%s': %v", f.Title, err)
		}

		color.Green("Created feature: %s [%s]", f.Title, f.Status)
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
