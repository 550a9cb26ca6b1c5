package main

import (
	"log"

	"quizhub/config"
	"quizhub/handlers"
	"quizhub/models"
	"quizhub/routes"
	"quizhub/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database models
	err = db.AutoMigrate(
		&models.Quiz{},
		&models.Question{},
		&models.Option{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize services
	quizService := services.NewQuizService(db)

	// Initialize handlers
	quizHandler := handlers.NewQuizHandler(quizService)

	// Setup Gin router
	router := gin.Default()

	// Add CORS middleware
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))

	// Setup routes
	routes.SetupRoutes(router, quizHandler)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.BindAddress + ":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
