// Package handlers contains HTTP request handlers organized by resource.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brimiq/Late-Show-CodeChallenge/internal/database"
	"github.com/brimiq/Late-Show-CodeChallenge/internal/logger"
)

// GetEpisodes retrieves all episodes ordered by episode number
func GetEpisodes(c *gin.Context) {
	var episodes []database.Episode
	db := database.GetDB()

	if err := db.Order("number asc").Find(&episodes).Error; err != nil {
		logger.Error("Failed to retrieve episodes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// List view stays shallow; nested appearances are only served per episode
	list := make([]map[string]interface{}, 0, len(episodes))
	for i := range episodes {
		list = append(list, episodes[i].Serialize(false))
	}

	c.JSON(http.StatusOK, list)
}

// GetEpisode retrieves a single episode with its appearances and their guests
func GetEpisode(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		// non-numeric ids never match an episode route
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
		return
	}

	var episode database.Episode
	db := database.GetDB()

	result := db.Preload("Appearances.Guest").First(&episode, uint(id))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Episode not found"})
			return
		}
		logger.Error("Failed to retrieve episode %d: %v", id, result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, episode.Serialize(true))
}
