package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/brimiq/Late-Show-CodeChallenge/internal/apiroutes"
)

// HandleIndex serves the root endpoint, describing the available API surface.
func HandleIndex(c *gin.Context) {
	registeredRoutes := apiroutes.Get()

	endpoints := make(map[string]string)
	for _, route := range registeredRoutes {
		switch {
		case route.Path == "/episodes":
			endpoints["episodes"] = route.Path
		case strings.HasPrefix(route.Path, "/episodes/"):
			endpoints["episode_detail"] = route.Path
		case route.Path == "/guests":
			endpoints["guests"] = route.Path
		case route.Path == "/appearances":
			endpoints["appearances"] = route.Path
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Welcome to the Late Show API",
		"status":    "running",
		"endpoints": endpoints,
	})
}
