package main

import (
	"fmt"
	"log"
	"os"

	"github.com/FullStack-Digital-CA/medicare/config"
	"github.com/FullStack-Digital-CA/medicare/models"
	"github.com/FullStack-Digital-CA/medicare/routes"
	"github.com/FullStack-Digital-CA/medicare/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.ServiceCategory{},
		&models.Service{},
	)
}

func main() {
	seedAdminUser()

	audit := services.NewAuditService(config.DB)
	audit.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter(config.DB)
	printRoutes(r)
	r.Run(":" + port)
}

// seedAdminUser creates the initial dashboard account on a fresh deployment.
// User management has no API surface yet, so without this nobody can log in.
func seedAdminUser() {
	username := os.Getenv("SEED_ADMIN_USERNAME")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if username == "" || password == "" {
		return
	}

	var count int64
	config.DB.Model(&models.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		return
	}

	admin := models.User{
		Username:  username,
		Password:  password, // Will be hashed in BeforeCreate hook
		Email:     os.Getenv("SEED_ADMIN_EMAIL"),
		FirstName: "Clinic",
		LastName:  "Admin",
		Role:      models.RoleAdmin,
		IsActive:  true,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed admin user: %v", err)
		return
	}
	log.Printf("Seeded admin user %q", username)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
