package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"swms/internal/handler"
	"swms/internal/middleware"
	"swms/internal/service"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	UserHandler           *handler.UserHandler
	PaymentHandler        *handler.PaymentHandler
	ClassificationHandler *handler.ClassificationHandler
	QuizHandler           *handler.QuizHandler
	AuthService           *service.AuthService
	RedisClient           *redis.Client
	NewRelicApp           *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	if deps.RedisClient != nil {
		router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Payment gateway routes. Paths match what the checkout frontend calls;
	// verification accepts anonymous checkouts, so auth is optional there.
	router.GET("/get-key", deps.PaymentHandler.GetKey)
	router.POST("/create-order", deps.PaymentHandler.CreateOrder)
	router.POST("/verify-payment", middleware.OptionalAuth(deps.AuthService), deps.PaymentHandler.VerifyPayment)

	// User routes.
	users := router.Group("/user")
	{
		users.POST("/register", deps.UserHandler.Register)
		users.POST("/login", deps.UserHandler.Login)
	}

	// Quiz result routes. Reads are public (result pages are shareable).
	router.GET("/userQuizResult/:id", deps.QuizHandler.GetResult)
	router.POST("/userQuizResult", middleware.RequireAuth(deps.AuthService), deps.QuizHandler.RecordResult)

	// Classification history routes (all protected).
	history := router.Group("/wasteClassificationHistory")
	history.Use(middleware.RequireAuth(deps.AuthService))
	{
		history.POST("", deps.ClassificationHandler.Create)
		history.GET("", deps.ClassificationHandler.GetMine)
		history.DELETE("/:id", deps.ClassificationHandler.Delete)
		history.DELETE("", deps.ClassificationHandler.Clear)
	}

	return router
}
