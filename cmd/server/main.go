package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"studio-manager-backend/internal/api/routes"
	"studio-manager-backend/internal/config"
	"studio-manager-backend/internal/database"
	"studio-manager-backend/internal/queue"
	"studio-manager-backend/internal/repository"
	"studio-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

//	@title			Studio Manager Backend API
//	@version		1.0
//	@description	Backend API for photography studio management: clients, quotations, events, crew assignments, payments and accounting.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Redis is optional: without it assignment saves still work, crew
	// notifications are just not sent.
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logrus.Warnf("Redis unreachable at %s, crew notifications disabled: %v", cfg.RedisAddr, err)
			redisClient = nil
		}
	}

	// Initialize router
	router := routes.SetupRoutes(db, redisClient, cfg)

	// Start the notification worker alongside the server
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	if redisClient != nil {
		people := service.NewPersonService(
			repository.NewStaffRepository(db),
			repository.NewFreelancerRepository(db),
		)
		outbox := queue.NewOutbox(redisClient, people)
		worker := queue.NewNotificationWorker(outbox, service.NewWhatsAppService(cfg))
		go worker.Run(workerCtx)
		logrus.Info("Notification worker started")
	}

	// Stop the worker cleanly on SIGINT/SIGTERM
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		logrus.Info("Shutdown signal received")
		stopWorker()
		os.Exit(0)
	}()

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7010"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
