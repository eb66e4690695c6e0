package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"evaluapp/client"
	"evaluapp/config"
	"evaluapp/handlers"
	"evaluapp/middleware"
	"evaluapp/routes"
	"evaluapp/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// The remote exam API is the only system of record
	api := client.New(cfg.APIBaseURL, cfg.APITimeout)

	// Session state lives in Redis when configured, otherwise in memory
	var store services.Store
	if cfg.RedisAddr != "" {
		store = services.NewRedisStore(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}), cfg.SessionTTL)
		log.Printf("Session store: redis at %s", cfg.RedisAddr)
	} else {
		store = services.NewMemoryStore()
		log.Printf("Session store: in-memory")
	}

	// Initialize services
	sessionService := services.NewSessionService(api)
	authoringService := services.NewAuthoringService(api, cfg.DefaultCreatorID)
	reportService := services.NewReportService(api)

	// Initialize handlers
	pagesHandler := handlers.NewPagesHandler(reportService)
	examHandler := handlers.NewExamHandler(authoringService)
	sessionHandler := handlers.NewSessionHandler(sessionService, store)
	reportHandler := handlers.NewReportHandler(reportService)

	// Setup Gin router
	router := gin.Default()
	router.Use(middleware.CORS())
	router.LoadHTMLGlob("templates/*.html")

	routes.SetupRoutes(router, pagesHandler, examHandler, sessionHandler, reportHandler)

	log.Printf("Evaluapp UI starting on port %s (exam api: %s)", cfg.Port, cfg.APIBaseURL)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
