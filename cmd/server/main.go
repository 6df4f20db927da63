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

	_ "github.com/lib/pq"

	httpapi "library-service-backend/internal/api/http"
	"library-service-backend/internal/config"
	"library-service-backend/internal/logger"
	"library-service-backend/internal/notify"
	"library-service-backend/internal/payment"
	"library-service-backend/internal/repository/postgres"
	"library-service-backend/internal/security"
	"library-service-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Library Service Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
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
	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
	)

	// Initialize Notification Dispatcher
	notifier := notify.NewDispatcher(buildSink(cfg), cfg.Notifications.QueueSize)
	defer notifier.Close()

	// Initialize Checkout Provider
	provider := payment.NewStripeProvider(
		cfg.Stripe.SecretKey,
		cfg.Stripe.BaseURL,
		time.Duration(cfg.Stripe.TimeoutSeconds)*time.Second,
	)

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	bookSvc := service.NewBookService(store.BookRepository)
	paymentSvc := service.NewPaymentService(
		store.PaymentRepository,
		store.BorrowingRepository,
		store.BookRepository,
		provider,
		notifier,
		service.CheckoutConfig{
			Currency:   cfg.Stripe.Currency,
			SuccessURL: cfg.Stripe.SuccessURL,
			CancelURL:  cfg.Stripe.CancelURL,
		},
	)
	borrowingSvc := service.NewBorrowingService(
		store.BorrowingRepository,
		store.BookRepository,
		paymentSvc,
		notifier,
	)

	// Set up HTTP server
	router := httpapi.NewRouter(authSvc, bookSvc, borrowingSvc, paymentSvc, tokenManager)
	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}

// buildSink selects the notification sink from configuration
func buildSink(cfg *config.Config) notify.Sink {
	switch cfg.Notifications.Sink {
	case "email":
		logger.Info("Using email notification sink", "from", cfg.SendGrid.From, "to", cfg.SendGrid.To)
		return notify.NewEmailSink(cfg.SendGrid.APIKey, cfg.SendGrid.From, cfg.SendGrid.To)
	default:
		logger.Info("Using telegram notification sink", "chat_id", cfg.Telegram.ChatID)
		return notify.NewTelegramSink(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Telegram.BaseURL)
	}
}
