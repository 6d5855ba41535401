package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vedicastro/panchanga-api/internal/infra/config"
	"github.com/vedicastro/panchanga-api/pkg/metrics"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, collector *metrics.Collector, logger *slog.Logger) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		requestLogger(logger),
		metricsMiddleware(collector),
		errorHandlingMiddleware(logger),
		corsMiddleware(),
		rateLimitMiddleware(cfg.HTTP.RateLimit, logger),
	)

	router.GET("/", handler.Root)
	router.GET("/healthz", handler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(collector.Registry, promhttp.HandlerOpts{})))

	api := router.Group("/api/v1")
	{
		api.POST("/panchanga", handler.Panchanga)
		api.POST("/kundli/match", handler.KundliMatch)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        withRetry(router, cfg.HTTP.Retry, logger),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
