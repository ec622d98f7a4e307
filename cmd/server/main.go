package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"swms/internal/app"
	"swms/internal/config"
	"swms/internal/gateway"
	"swms/internal/handler"
	internalRedis "swms/internal/redis"
	"swms/internal/repository/postgres"
	"swms/internal/service"
)

func main() {
	// Load configuration.
	cfg := config.Load()
	cfg.LogStartupWarnings()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic first so the database driver can be instrumented.
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s", cfg.NewRelic.AppName)
		}
	}

	// Initialize database.
	db, err := app.NewDatabase(ctx, cfg.Database, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Connected to PostgreSQL")

	// Initialize Redis.
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Connected to Redis")

	// Wire dependencies.
	server := wireServer(db, redisClient, nrApp, cfg)

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(db *sql.DB, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) *http.Server {
	// Initialize Redis stores.
	cacheStore := internalRedis.NewCacheStore(redisClient)

	// Initialize repositories.
	userRepo := postgres.NewUserRepository(db)
	classificationRepo := postgres.NewClassificationRepository(db)
	quizRepo := postgres.NewQuizResultRepository(db)
	paymentRecordRepo := postgres.NewPaymentRecordRepository(db)

	// Initialize the payment gateway client and services.
	razorpayClient := gateway.NewRazorpayClient(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)
	paymentService := service.NewPaymentService(razorpayClient, cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret, cfg.Razorpay.Currency)
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TokenTTL)
	classificationService := service.NewClassificationService(classificationRepo, cacheStore)
	quizService := service.NewQuizService(quizRepo)

	// Initialize handlers.
	userHandler := handler.NewUserHandler(authService)
	paymentHandler := handler.NewPaymentHandler(paymentService, paymentRecordRepo)
	classificationHandler := handler.NewClassificationHandler(classificationService)
	quizHandler := handler.NewQuizHandler(quizService)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		UserHandler:           userHandler,
		PaymentHandler:        paymentHandler,
		ClassificationHandler: classificationHandler,
		QuizHandler:           quizHandler,
		AuthService:           authService,
		RedisClient:           redisClient,
		NewRelicApp:           nrApp,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
