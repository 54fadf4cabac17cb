package routes

import (
	"net/http"
	"os"

	"github.com/FullStack-Digital-CA/medicare/config"
	"github.com/FullStack-Digital-CA/medicare/controllers"
	"github.com/FullStack-Digital-CA/medicare/repositories"
	"github.com/FullStack-Digital-CA/medicare/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	// The marketing website is the only external origin allowed to read the
	// public catalog.
	publicOrigin := os.Getenv("PUBLIC_SITE_ORIGIN")
	if publicOrigin == "" {
		publicOrigin = "https://www.sintamedicalcenter.ae"
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			publicOrigin,
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.RequestID())
	r.Use(config.PerformanceLogger())

	categoryRepo := repositories.NewCategoryRepository(db)
	serviceRepo := repositories.NewServiceRepository(db)
	userRepo := repositories.NewUserRepository(db)

	authController := controllers.NewAuthController(userRepo)
	categoryController := controllers.NewCategoryController(categoryRepo)
	serviceController := controllers.NewServiceController(serviceRepo, categoryRepo)

	auth := r.Group("/auth")
	{
		auth.POST("/login", authController.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", authController.Me)
	}

	// Public catalog reads consumed by the marketing website
	r.GET("/categories", categoryController.List)
	r.OPTIONS("/categories", preflight)
	r.GET("/services", serviceController.PublicCatalog)
	r.OPTIONS("/services", preflight)

	// Catalog mutations require a session
	r.POST("/categories", utils.AuthMiddleware(), categoryController.Create)
	r.PUT("/categories/:id", utils.AuthMiddleware(), categoryController.Update)
	r.DELETE("/categories/:id", utils.AuthMiddleware(), categoryController.Delete)

	r.POST("/services", utils.AuthMiddleware(), serviceController.Create)
	r.PUT("/services/:id", utils.AuthMiddleware(), serviceController.Update)
	r.DELETE("/services/:id", utils.AuthMiddleware(), serviceController.Delete)

	admin := r.Group("/admin", utils.AuthMiddleware())
	{
		admin.GET("/services", serviceController.AdminList)
	}

	// Dashboard modules still under construction
	api := r.Group("/api", utils.AuthMiddleware())
	{
		api.GET("/appointments", controllers.ComingSoon("appointments"))
		api.GET("/patients", controllers.ComingSoon("patients"))
		api.GET("/consultations", controllers.ComingSoon("consultations"))
		api.GET("/employees", controllers.ComingSoon("employees"))
	}

	return r
}

// preflight answers OPTIONS requests that the CORS middleware does not
// intercept (no Origin header); actual preflights are handled upstream.
func preflight(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
