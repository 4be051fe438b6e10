package main

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/marcusvinicius1er/Reach-online/pkg/api"
	"github.com/marcusvinicius1er/Reach-online/pkg/clients/airtable"
	"github.com/marcusvinicius1er/Reach-online/pkg/config"
	"github.com/marcusvinicius1er/Reach-online/pkg/origin"
	"github.com/marcusvinicius1er/Reach-online/pkg/ratelimit"
	"github.com/marcusvinicius1er/Reach-online/pkg/services"
)

func main() {
	logger := logrus.New()

	if err := godotenv.Load(); err != nil {
		logger.Println("Error loading .env file")
	}

	// Initialize configuration
	cfg := config.LoadConfig()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	// Rate limiting is optional: without a Redis address the limiter
	// fails open and origin restriction is the only abuse control.
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	} else {
		logger.Warn("REDIS_ADDR not set, rate limiting disabled")
	}

	// Initialize API clients
	airtableClient := airtable.NewClient(cfg.AirtableAPIKey, cfg.AirtableBaseID)

	// Initialize services
	submissionService := services.NewSubmissionService(airtableClient, cfg, logger)
	authService := services.NewAuthService(cfg.AdminPassword)

	policy := origin.NewPolicy(cfg.AllowedOrigins)
	limiter := ratelimit.NewLimiter(rdb, cfg.RateLimitMax, logger)

	// Initialize handlers and routes
	handlers := api.NewHandlers(submissionService, authService, policy, limiter, cfg, logger)
	router := api.NewRouter(handlers, policy)

	// Start the server
	logger.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("Error starting server: %v", err)
	}
}
