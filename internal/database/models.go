package database

import (
	"fmt"

	"gorm.io/gorm"
)

// Episode represents a single broadcast of the show
type Episode struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Date   string `gorm:"size:20;not null" json:"date"` // display string, M/D/YY
	Number int    `gorm:"not null" json:"number"`

	// Appearances are removed together with their episode
	Appearances []Appearance `gorm:"foreignKey:EpisodeID;constraint:OnDelete:CASCADE" json:"-"`
}

// Guest represents a person who can appear on episodes
type Guest struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"size:100;not null" json:"name"`
	Occupation string `gorm:"size:100;not null" json:"occupation"`

	Appearances []Appearance `gorm:"foreignKey:GuestID;constraint:OnDelete:CASCADE" json:"-"`
}

// Appearance joins a guest to an episode with a 1-5 rating
type Appearance struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	Rating    int  `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	EpisodeID uint `gorm:"not null;index" json:"episode_id"`
	GuestID   uint `gorm:"not null;index" json:"guest_id"`

	Episode Episode `gorm:"foreignKey:EpisodeID" json:"-"`
	Guest   Guest   `gorm:"foreignKey:GuestID" json:"-"`
}

// NewAppearance builds an appearance, rejecting out-of-range ratings immediately
func NewAppearance(rating int, episodeID, guestID uint) (*Appearance, error) {
	a := &Appearance{
		Rating:    rating,
		EpisodeID: episodeID,
		GuestID:   guestID,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate enforces the rating invariant
func (a *Appearance) Validate() error {
	if a.Rating < 1 || a.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5 (inclusive), got %d", a.Rating)
	}
	return nil
}

// BeforeSave rejects invalid appearances before they reach the database
func (a *Appearance) BeforeSave(tx *gorm.DB) error {
	return a.Validate()
}

// Serialize converts the episode to its response representation.
// When includeAppearances is set, each appearance nests its guest but not the
// episode again, so expansion always terminates.
func (e *Episode) Serialize(includeAppearances bool) map[string]interface{} {
	result := map[string]interface{}{
		"id":     e.ID,
		"date":   e.Date,
		"number": e.Number,
	}

	if includeAppearances {
		appearances := make([]map[string]interface{}, 0, len(e.Appearances))
		for i := range e.Appearances {
			appearances = append(appearances, e.Appearances[i].Serialize(true, false))
		}
		result["appearances"] = appearances
	}

	return result
}

// Serialize converts the guest to its response representation
func (g *Guest) Serialize(includeAppearances bool) map[string]interface{} {
	result := map[string]interface{}{
		"id":         g.ID,
		"name":       g.Name,
		"occupation": g.Occupation,
	}

	if includeAppearances {
		appearances := make([]map[string]interface{}, 0, len(g.Appearances))
		for i := range g.Appearances {
			appearances = append(appearances, g.Appearances[i].Serialize(false, true))
		}
		result["appearances"] = appearances
	}

	return result
}

// Serialize converts the appearance to its response representation.
// Related entities are only ever nested one level deep: a nested guest or
// episode is serialized without its own appearances.
func (a *Appearance) Serialize(includeGuest, includeEpisode bool) map[string]interface{} {
	result := map[string]interface{}{
		"id":         a.ID,
		"rating":     a.Rating,
		"episode_id": a.EpisodeID,
		"guest_id":   a.GuestID,
	}

	if includeGuest {
		result["guest"] = a.Guest.Serialize(false)
	}

	if includeEpisode {
		result["episode"] = a.Episode.Serialize(false)
	}

	return result
}
