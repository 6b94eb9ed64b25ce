package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shibbster321321/vegan-restaurant-1/config"
	"github.com/shibbster321321/vegan-restaurant-1/models"
	"github.com/shibbster321321/vegan-restaurant-1/router"
	"github.com/shibbster321321/vegan-restaurant-1/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)
	seedAdmins(db)

	r := router.SetupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.Restaurant{},
		&models.Admin{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}

// seedAdmins fills an empty allow-list with the default admin accounts.
// Existing rows are left alone so password changes survive restarts.
func seedAdmins(db *gorm.DB) {
	var count int64
	db.Model(&models.Admin{}).Count(&count)
	if count > 0 {
		return
	}

	defaults := map[string]string{
		"admin": "password123",
		"demo":  "demo123",
	}

	for username, password := range defaults {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			utils.ErrorLogger.Fatalf("Failed to hash seed password: %v", err)
		}
		if err := db.Create(&models.Admin{Username: username, Password: string(hashed)}).Error; err != nil {
			utils.ErrorLogger.Fatalf("Failed to seed admin %s: %v", username, err)
		}
	}
	utils.InfoLogger.Println("Seeded default admin accounts.")
}
