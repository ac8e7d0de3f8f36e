package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brimiq/Late-Show-CodeChallenge/internal/database"
	"github.com/brimiq/Late-Show-CodeChallenge/internal/logger"
)

// GetGuests retrieves all guests ordered by name
func GetGuests(c *gin.Context) {
	var guests []database.Guest
	db := database.GetDB()

	if err := db.Order("name asc").Find(&guests).Error; err != nil {
		logger.Error("Failed to retrieve guests: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	list := make([]map[string]interface{}, 0, len(guests))
	for i := range guests {
		list = append(list, guests[i].Serialize(false))
	}

	c.JSON(http.StatusOK, list)
}
