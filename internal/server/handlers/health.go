package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brimiq/Late-Show-CodeChallenge/internal/database"
)

// HandleHealthCheck returns the basic health status of the service
func HandleHealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "lateshow",
	})
}

// HandleDBStatus checks and returns the database connection status
func HandleDBStatus(c *gin.Context) {
	db := database.GetDB()
	sqlDB, err := db.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "error",
			"error":  "Failed to get database instance",
		})
		return
	}

	if err := sqlDB.Ping(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "error",
			"error":  "Database ping failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "connected",
		"database": "ready",
	})
}
