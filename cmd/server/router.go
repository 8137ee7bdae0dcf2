// List of all REST API endpoints and the decoration pipeline of Uplift.

package main

import (
	"Uplift/internal/accessibility"
	"Uplift/internal/analytics"
	"Uplift/internal/broadcast"
	"Uplift/internal/classifier"
	"Uplift/internal/errors"
	"Uplift/pkg/db"
	"Uplift/pkg/log"
	"Uplift/pkg/middlewares"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Router(server *gin.Engine, dbConnWrp *db.RedisDB, logger log.Logger) {
	// Decoration pipeline, ordered outermost first: the decorator buffers the
	// body written by everything after it, the collector measures everything
	// after it, the recovery handler converts panics before either runs.
	server.Use(log.LoggerGinExtension(logger))
	server.Use(middlewares.CorrelationMiddleware(logger))
	server.Use(middlewares.CORSMiddleware(os.Getenv("CORS_ORIGIN")))
	server.Use(middlewares.SecurityHeadersMiddleware())
	server.Use(accessibility.ContextMiddleware())
	server.Use(classifier.Middleware())
	server.Use(accessibility.DecoratorMiddleware(logger))

	// Broadcast hub and the analytics pipeline feeding it
	broadcastMetrics := broadcast.NewMetrics(prometheus.DefaultRegisterer)
	hub := broadcast.NewHub(broadcastMetrics, logger)
	broadcastService := broadcast.NewService(hub, broadcast.NewRepository(dbConnWrp), broadcastMetrics, logger)

	analyticsService := analytics.NewService(
		analytics.NewRepository(dbConnWrp),
		[]analytics.Sink{analytics.NewLogSink(logger)},
		hub,
		analytics.NewMetrics(prometheus.DefaultRegisterer),
		logger,
	)
	server.Use(analyticsService.CollectorMiddleware())
	server.Use(errors.RecoveryMiddleware(logger))

	// This is the route to default path
	server.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to Uplift - Inclusive Platform API",
			"version": Version,
			"status":  "operational",
			"accessibility": gin.H{
				"wcag_compliance":         "2.1 " + accessibility.WCAGLevel,
				"screen_reader_optimized": true,
				"keyboard_navigation":     true,
				"high_contrast_support":   true,
			},
			"empowerment_features": gin.H{
				"social_security_assistance":   true,
				"accessible_housing":           true,
				"business_funding":             true,
				"non_discrimination_reporting": true,
				"inclusive_job_matching":       true,
			},
		})
	})

	// Housekeeping endpoints, excluded from analytics assembly
	server.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"services": gin.H{
				"database":  "connected",
				"analytics": "active",
				"broadcast": "active",
			},
		})
	})
	server.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API groups
	accessibility.APIHandlers(server, logger)
	analytics.APIHandlers(server, analyticsService, logger)
	broadcast.APIHandlers(server, broadcastService, logger)
}
