package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	"moto-rental-backend/internal/config"
	"moto-rental-backend/internal/logger"
	"moto-rental-backend/internal/messaging"
	"moto-rental-backend/internal/repository/postgres"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting motorcycle event worker...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Messaging. The worker cannot do anything without the
	// broker, so unlike the API server it fails hard here.
	connectCtx, cancelConnect := context.WithTimeout(ctx, time.Minute)
	mq, err := messaging.Connect(connectCtx, cfg.GetAMQPURL())
	cancelConnect()
	if err != nil {
		logger.Error("Failed to connect to RabbitMQ", "error", err)
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer mq.Close()
	logger.Info("RabbitMQ connection established")

	consumer := messaging.NewMotorcycleCreatedConsumer(mq, store.MotorcycleRepository, store.MotorcycleEventRepository)
	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Consumer stopped with error", "error", err)
		log.Fatalf("Consumer stopped with error: %v", err)
	}

	logger.Info("Worker stopped")
}
