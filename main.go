package main

import (
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hospital-records-server/internal/config"
	"hospital-records-server/internal/models"
	"hospital-records-server/internal/routes"
	"hospital-records-server/internal/store"
)

func main() {
	// Load environment variables; a missing .env is fine since every key
	// has a default.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Create a DatabaseConfig for models
	modelDbConfig := models.DatabaseConfig{
		Path: cfg.Database.Path,
	}

	// Open the data file and ensure the schema exists
	db, err := models.InitDB(modelDbConfig)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}

	// Seed the default login accounts on first run
	if err := store.New(db).SeedDefaultUsers(); err != nil {
		log.Fatalf("Error seeding default users: %v", err)
	}

	// Initialize Gin router
	router := gin.Default()

	// Configure CORS for the local dashboard client
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Set up routes
	routes.SetupRoutes(router, db, cfg)

	// Start serving the dashboard, loopback only
	serverAddr := fmt.Sprintf("%s:%s", cfg.Addr, cfg.Port)
	fmt.Printf("Hospital records server running on %s\n", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
