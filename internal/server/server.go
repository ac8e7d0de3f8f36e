package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brimiq/Late-Show-CodeChallenge/internal/config"
	"github.com/brimiq/Late-Show-CodeChallenge/internal/logger"
)

// SetupRouter configures and returns the main router
func SetupRouter() *gin.Engine {
	if config.Get().Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())

	// Unhandled faults roll back with the request transaction and surface
	// as a generic 500, never the internal detail
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Panic recovered while handling %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}))

	if config.Get().Server.EnableCORS {
		r.Use(corsMiddleware())
	}

	// Unmatched routes get the generic not-found body
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	})

	setupRoutes(r)

	return r
}

// corsMiddleware allows browser clients during development
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
