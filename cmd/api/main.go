package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/applytrack/applytrack/internal/auth"
	"github.com/applytrack/applytrack/internal/config"
	"github.com/applytrack/applytrack/internal/database"
	"github.com/applytrack/applytrack/internal/handlers"
	"github.com/applytrack/applytrack/internal/logging"
	"github.com/applytrack/applytrack/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading config from environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}
	logging.New(cfg.Log)

	// 2. Database Connection
	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	// 3. Initialize Core Services (Dependencies)
	appService := services.NewApplicationService(db)

	// The bullet generator degrades to a 500 when no key is configured,
	// matching how the rest of the app works without it.
	var llmService *services.LLMService
	if cfg.LLM.GeminiAPIKey != "" {
		llmService, err = services.NewLLMService(context.Background(), cfg.LLM.GeminiAPIKey)
		if err != nil {
			log.Fatal("Failed to create Gemini client: ", err)
		}
		slog.Info("Gemini client connected")
	} else {
		slog.Warn("GEMINI_API_KEY not set, bullet generation disabled")
	}

	// 4. Initialize Handlers
	appHandler := handlers.NewApplicationHandler(appService)
	statsHandler := handlers.NewStatsHandler(appService)
	bulletHandler := handlers.NewBulletHandler(llmService)

	// 5. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsConfig))

	// 6. Sign-in flow (outside the authenticated group)
	if !cfg.Auth.Disabled {
		google := auth.NewGoogleHandler(
			cfg.Auth.GoogleClientID,
			cfg.Auth.GoogleClientSecret,
			cfg.Auth.GoogleRedirectURL,
			cfg.Auth.JWTSecret,
			cfg.Auth.SessionTTL,
		)
		r.GET("/auth/signin", google.SignIn)
		r.GET("/auth/callback", google.Callback)
	}

	// 7. Define Routes
	api := r.Group("/api/v1")
	api.GET("/health", handlers.HealthCheck)
	if !cfg.Auth.Disabled {
		api.Use(auth.RequireSession(cfg.Auth.JWTSecret))
	}
	{
		api.GET("/applications", appHandler.ListApplications)
		api.POST("/applications", appHandler.CreateApplication)
		api.PATCH("/applications/:id", appHandler.UpdateApplication)
		api.DELETE("/applications/:id", appHandler.DeleteApplication)

		api.GET("/stats", statsHandler.GetStats)

		api.POST("/generate-bullets", bulletHandler.GenerateBullets)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	slog.Info("Server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("Server failed to start: ", err)
	}
}
