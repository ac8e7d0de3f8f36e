package server

import (
	"github.com/gin-gonic/gin"

	"github.com/brimiq/Late-Show-CodeChallenge/internal/apiroutes"
	"github.com/brimiq/Late-Show-CodeChallenge/internal/server/handlers"
)

// setupRoutes configures all API routes
func setupRoutes(r *gin.Engine) {
	r.GET("/", handlers.HandleIndex)
	apiroutes.Register("/", "GET", "API root, lists available endpoints.")

	r.GET("/health", handlers.HandleHealthCheck)
	apiroutes.Register("/health", "GET", "Service health check.")

	r.GET("/health/db", handlers.HandleDBStatus)
	apiroutes.Register("/health/db", "GET", "Database connection status.")

	r.GET("/episodes", handlers.GetEpisodes)
	apiroutes.Register("/episodes", "GET", "List all episodes ordered by number.")

	r.GET("/episodes/:id", handlers.GetEpisode)
	apiroutes.Register("/episodes/:id", "GET", "Retrieve one episode with its appearances.")

	r.GET("/guests", handlers.GetGuests)
	apiroutes.Register("/guests", "GET", "List all guests ordered by name.")

	r.POST("/appearances", handlers.CreateAppearance)
	apiroutes.Register("/appearances", "POST", "Create an appearance linking a guest to an episode.")
}
