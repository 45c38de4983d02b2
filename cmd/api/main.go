package main

import (
	"log"

	"github.com/clockwisehq/workforce-go/config"
	"github.com/clockwisehq/workforce-go/cron"
	"github.com/clockwisehq/workforce-go/db"
	"github.com/clockwisehq/workforce-go/events"
	"github.com/clockwisehq/workforce-go/handlers"
	"github.com/clockwisehq/workforce-go/middleware"
	"github.com/clockwisehq/workforce-go/repositories"
	"github.com/clockwisehq/workforce-go/routes"
	"github.com/clockwisehq/workforce-go/services"
	"github.com/clockwisehq/workforce-go/storage"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection and migrate schemas
	db.Init()

	// Initialize receipt storage
	storage.InitMinio()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	hub := events.NewHub()
	repos := repositories.New()
	svc := services.New(repos, logger, hub)
	h := handlers.New(svc, hub)

	cron.StartCleanupTask(svc.Audit)
	cron.StartOverdueInvoiceTask(svc.Invoice)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware(logger))

	routes.RegisterRoutes(router, h, repos)

	port := ":" + config.ServerPort
	log.Printf("Starting API server on %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
}
