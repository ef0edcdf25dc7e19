package v1

import (
	"net/http"

	"go-consulting-backend/config"
	"go-consulting-backend/internal/delivery/http/middleware"
	"go-consulting-backend/internal/domain"
	"go-consulting-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	NotificationUC domain.NotificationUsecase
	LeadUC         domain.LeadUsecase
	BookingUC      domain.BookingUsecase
	JWKSProvider   *auth.Provider
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	notifications := v1.Group("")
	notifications.Use(middleware.RateLimitMiddleware(middleware.NotificationRateLimitConfig()))
	{
		NewNotificationHandler(notifications, deps.NotificationUC)
	}

	leads := v1.Group("")
	leads.Use(middleware.RateLimitMiddleware(middleware.LeadRateLimitConfig()))
	{
		NewLeadHandler(leads, deps.LeadUC)
	}

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.GlobalRateLimitMiddleware())
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config))
	{
		NewBookingHandler(protected, deps.BookingUC)
	}

	return r
}
