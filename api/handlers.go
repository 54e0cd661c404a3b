package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-tfidf-search/config"
	"github.com/gcbaptista/go-tfidf-search/internal/analytics"
	"github.com/gcbaptista/go-tfidf-search/internal/logger"
	"github.com/gcbaptista/go-tfidf-search/services"
)

// API holds dependencies for API handlers: the index, the request history
// that records every served search, and optional metrics.
type API struct {
	index   services.IndexAccessor
	history services.HistoryRecorder
	metrics *analytics.Metrics
	log     *slog.Logger
}

// NewAPI creates a new API handler structure. metrics may be nil.
func NewAPI(index services.IndexAccessor, history services.HistoryRecorder, metrics *analytics.Metrics) *API {
	return &API{
		index:   index,
		history: history,
		metrics: metrics,
		log:     logger.WithComponent("api"),
	}
}

// RouterOptions configures the middleware chain.
type RouterOptions struct {
	MaxBodyBytes int64
	RateLimit    config.RateLimitConfig
}

// SetupRoutes registers middleware and all API routes.
func SetupRoutes(router *gin.Engine, api *API, opts RouterOptions) {
	router.Use(RequestIDMiddleware())
	router.Use(RequestLoggerMiddleware(api.log))
	router.Use(CORSMiddleware())
	if api.metrics != nil {
		router.Use(MetricsMiddleware(api.metrics))
	}
	if opts.RateLimit.RequestsPerSecond > 0 {
		router.Use(RateLimitMiddleware(opts.RateLimit.RequestsPerSecond, opts.RateLimit.Burst))
	}
	if opts.MaxBodyBytes > 0 {
		router.Use(RequestSizeLimitMiddleware(opts.MaxBodyBytes))
	}

	// Health check route
	router.GET("/health", api.HealthCheckHandler)
	if api.metrics != nil {
		router.GET("/metrics", gin.WrapH(api.metrics.Handler()))
	}

	// Analytics routes
	analyticsRoutes := router.Group("/analytics")
	{
		analyticsRoutes.GET("/history", api.GetHistoryHandler)
		analyticsRoutes.GET("/history/events", api.GetHistoryEventsHandler)
	}

	// Document management routes
	docRoutes := router.Group("/documents")
	{
		docRoutes.PUT("", api.AddDocumentsHandler)
		docRoutes.GET("", api.GetDocumentsHandler)
		docRoutes.DELETE("/:documentId", api.DeleteDocumentHandler)
		docRoutes.GET("/:documentId/frequencies", api.GetWordFrequenciesHandler)
	}

	router.GET("/terms/:term/idf", api.GetInverseDocumentFrequencyHandler)

	// Search routes
	router.POST("/_search", api.SearchHandler)
	router.POST("/_multi_search", api.MultiSearchHandler)
	router.POST("/_match", api.MatchHandler)
	router.POST("/_dedupe", api.RemoveDuplicatesHandler)
}

// HealthCheckHandler reports liveness and the live document count.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"documents": api.index.DocumentCount(),
	})
}
