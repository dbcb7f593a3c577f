package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "moto-rental-backend/internal/api/http"
	"moto-rental-backend/internal/config"
	"moto-rental-backend/internal/jobs"
	"moto-rental-backend/internal/logger"
	"moto-rental-backend/internal/messaging"
	"moto-rental-backend/internal/repository/postgres"
	"moto-rental-backend/internal/scheduler"
	"moto-rental-backend/internal/security"
	"moto-rental-backend/internal/service"

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
	logger.Info("Starting moto rental backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)

	// Initialize Messaging. The API stays up without the broker; motorcycle
	// created events are simply not published until it comes back.
	var publisher service.EventPublisher
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), time.Minute)
	mq, err := messaging.Connect(connectCtx, cfg.GetAMQPURL())
	cancelConnect()
	if err != nil {
		logger.Warn("RabbitMQ unavailable, motorcycle events will not be published", "error", err)
	} else {
		defer mq.Close()
		publisher = messaging.NewEventPublisher(mq)
		logger.Info("RabbitMQ connection established")
	}

	// Initialize Services
	courierSvc := service.NewCourierService(store.CourierRepository)
	motorcycleSvc := service.NewMotorcycleService(store.MotorcycleRepository, store.RentalRepository, publisher)
	rentalSvc := service.NewRentalService(store.RentalRepository, store.MotorcycleRepository, store.CourierRepository)

	// Initialize HTTP routes
	router := httpapi.NewRouter(courierSvc, motorcycleSvc, rentalSvc, tokenManager)

	// Start the cron scheduler
	jobRunner := jobs.NewJobRunner(db, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
