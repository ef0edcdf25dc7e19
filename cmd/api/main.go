package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-consulting-backend/config"
	_ "go-consulting-backend/docs" // Important for Swagger
	v1 "go-consulting-backend/internal/delivery/http/v1"
	"go-consulting-backend/internal/repository/postgres"
	"go-consulting-backend/internal/usecase"
	"go-consulting-backend/pkg/auth"
	"go-consulting-backend/pkg/database"
	"go-consulting-backend/pkg/email"
	"go-consulting-backend/pkg/logger"
	"go-consulting-backend/pkg/redis"
	"go-consulting-backend/pkg/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// @title           Consulting Backend API
// @version         1.0
// @description     Lead intake and booking notification backend using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting consulting backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl, cfg.DBMaxConns)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting falls back to in-memory without it)
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
	}
	defer redis.Close()

	// 5. Register custom validators on gin's binding engine
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// 6. Setup Email Service
	emailService := email.NewService(cfg.ResendAPIKey)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - dispatch will be unavailable")
	}

	// 7. Setup Repositories
	bookingRepo := postgres.NewBookingRepository(dbPool)
	serviceRepo := postgres.NewServiceRepository(dbPool)
	leadRepo := postgres.NewLeadRepository(dbPool)
	discountRepo := postgres.NewDiscountRepository(dbPool)
	analyticsRepo := postgres.NewAnalyticsRepository(dbPool)

	// 8. Setup UseCases
	notificationUC := usecase.NewNotificationUsecase(
		bookingRepo, emailService, analyticsRepo,
		cfg.EmailFrom, cfg.AppBaseURL, cfg.ContactEmail,
	)
	leadUC := usecase.NewLeadUsecase(
		leadRepo, analyticsRepo, emailService,
		cfg.LeadsFrom, cfg.NotifyTo, cfg.FrontendURL,
	)
	bookingUC := usecase.NewBookingUsecase(bookingRepo, serviceRepo, discountRepo, analyticsRepo)

	// 9. Setup Auth Provider (JWKS)
	jwksURL := cfg.SupabaseUrl + "/auth/v1/.well-known/jwks.json"
	jwksProvider := auth.NewProvider(jwksURL)

	// 10. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		NotificationUC: notificationUC,
		LeadUC:         leadUC,
		BookingUC:      bookingUC,
		JWKSProvider:   jwksProvider,
		Config:         cfg,
	})

	// 11. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
