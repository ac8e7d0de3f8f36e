package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/brimiq/Late-Show-CodeChallenge/internal/database"
	"github.com/brimiq/Late-Show-CodeChallenge/internal/logger"
)

// createAppearanceRequest captures the raw request fields so validation can
// tell a missing field from a mistyped one.
type createAppearanceRequest struct {
	Rating    interface{} `json:"rating"`
	EpisodeID interface{} `json:"episode_id"`
	GuestID   interface{} `json:"guest_id"`
}

// CreateAppearance creates a new appearance linking a guest to an episode.
// All validation problems are collected and reported together; nothing is
// written unless every check passes.
func CreateAppearance(c *gin.Context) {
	var req createAppearanceRequest

	// UseNumber keeps integers distinct from floats during validation
	decoder := json.NewDecoder(c.Request.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request body"}})
		return
	}

	db := database.GetDB()

	var validationErrors []string
	var rating int64
	var episode database.Episode
	var guest database.Guest

	if req.Rating == nil {
		validationErrors = append(validationErrors, "Rating is required")
	} else if r, ok := asInt(req.Rating); !ok {
		validationErrors = append(validationErrors, "Rating must be an integer")
	} else if r < 1 || r > 5 {
		validationErrors = append(validationErrors, "Rating must be between 1 and 5 (inclusive)")
	} else {
		rating = r
	}

	if req.EpisodeID == nil {
		validationErrors = append(validationErrors, "Episode ID is required")
	} else if id, ok := asInt(req.EpisodeID); !ok {
		validationErrors = append(validationErrors, "Episode not found")
	} else if err := db.First(&episode, id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("Failed to look up episode %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		validationErrors = append(validationErrors, "Episode not found")
	}

	if req.GuestID == nil {
		validationErrors = append(validationErrors, "Guest ID is required")
	} else if id, ok := asInt(req.GuestID); !ok {
		validationErrors = append(validationErrors, "Guest not found")
	} else if err := db.First(&guest, id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("Failed to look up guest %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		validationErrors = append(validationErrors, "Guest not found")
	}

	if len(validationErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validationErrors})
		return
	}

	appearance, err := database.NewAppearance(int(rating), episode.ID, guest.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{err.Error()}})
		return
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(appearance).Error
	}); err != nil {
		logger.Error("Failed to create appearance: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// The referenced rows were fetched during validation; reuse them for the
	// nested response instead of reloading.
	appearance.Episode = episode
	appearance.Guest = guest

	c.JSON(http.StatusCreated, appearance.Serialize(true, true))
}

// asInt reports whether a decoded JSON value is an integer. Floats and
// strings do not qualify, matching the API's strict rating contract.
func asInt(v interface{}) (int64, bool) {
	num, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	n, err := num.Int64()
	if err != nil {
		return 0, false
	}
	return n, true
}
