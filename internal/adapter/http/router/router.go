package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Ipso-ferro/backEnd-nlpSentimentApp/internal/adapter/http/handler"
	"github.com/Ipso-ferro/backEnd-nlpSentimentApp/internal/adapter/http/middleware"
	"github.com/Ipso-ferro/backEnd-nlpSentimentApp/internal/infrastructure/config"
	"github.com/Ipso-ferro/backEnd-nlpSentimentApp/internal/usecase"
)

// Setup creates and configures the Gin router
func Setup(classifyUC usecase.ClassifyUsecase, cfg *config.ClassifierConfig, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())
	router.Use(middleware.Metrics())

	// Health endpoints
	healthHandler := handler.NewHealthHandler(cfg.Provider, cfg.Model)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Initialize handlers
	classifyHandler := handler.NewClassifyHandler(classifyUC)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/classify", classifyHandler.Classify)
	}

	return router
}
