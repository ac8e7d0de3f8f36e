package database

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"gorm.io/gorm"

	"github.com/brimiq/Late-Show-CodeChallenge/internal/logger"
)

type seedAppearance struct {
	rating     int
	guestIdx   int
	episodeIdx int
}

// Seed wipes the three tables and repopulates them with sample data.
// Guests come from the CSV file at guestCSVPath when it exists, otherwise
// from the built-in sample set.
func Seed(db *gorm.DB, guestCSVPath string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{"appearances", "guests", "episodes"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}

		episodes := []Episode{
			{Date: "1/11/99", Number: 1},
			{Date: "1/12/99", Number: 2},
			{Date: "1/13/99", Number: 3},
			{Date: "1/14/99", Number: 4},
			{Date: "1/15/99", Number: 5},
			{Date: "1/18/99", Number: 6},
			{Date: "1/19/99", Number: 7},
			{Date: "1/20/99", Number: 8},
			{Date: "1/21/99", Number: 9},
			{Date: "1/22/99", Number: 10},
		}
		if err := tx.Create(&episodes).Error; err != nil {
			return fmt.Errorf("failed to seed episodes: %w", err)
		}

		guests, err := loadGuestsFromCSV(guestCSVPath)
		if err != nil {
			logger.Warn("Could not read guest CSV %s: %v, using sample data", guestCSVPath, err)
			guests = sampleGuests()
		}
		if err := tx.Create(&guests).Error; err != nil {
			return fmt.Errorf("failed to seed guests: %w", err)
		}

		seeds := []seedAppearance{
			{4, 0, 0}, {5, 1, 0}, {3, 2, 0},
			{5, 2, 1}, {4, 3, 1}, {5, 4, 1},
			{4, 0, 2}, {3, 5, 2}, {5, 6, 2},
			{4, 1, 3}, {5, 7, 3},
			{3, 3, 4}, {4, 4, 4}, {5, 5, 4},
			{5, 0, 5}, {4, 2, 5},
			{3, 6, 6}, {5, 7, 6}, {4, 1, 6},
			{4, 4, 7}, {5, 5, 7},
			{3, 0, 8}, {4, 3, 8}, {5, 6, 8},
			{5, 2, 9}, {4, 7, 9},
		}

		appearances := make([]Appearance, 0, len(seeds))
		for _, s := range seeds {
			// CSV imports can carry fewer guests than the sample pairings expect
			if s.guestIdx >= len(guests) {
				continue
			}
			appearances = append(appearances, Appearance{
				Rating:    s.rating,
				GuestID:   guests[s.guestIdx].ID,
				EpisodeID: episodes[s.episodeIdx].ID,
			})
		}
		if err := tx.Create(&appearances).Error; err != nil {
			return fmt.Errorf("failed to seed appearances: %w", err)
		}

		logger.Info("Seeded %d episodes, %d guests, %d appearances",
			len(episodes), len(guests), len(appearances))
		return nil
	})
}

// loadGuestsFromCSV reads guest rows from a CSV file with name and
// occupation columns identified by a header row.
func loadGuestsFromCSV(path string) ([]Guest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("csv file %s has no data rows", path)
	}

	nameCol, occupationCol := -1, -1
	for i, col := range records[0] {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "name":
			nameCol = i
		case "occupation":
			occupationCol = i
		}
	}
	if nameCol < 0 || occupationCol < 0 {
		return nil, fmt.Errorf("csv file %s is missing name/occupation columns", path)
	}

	var guests []Guest
	for _, record := range records[1:] {
		if len(record) <= nameCol || len(record) <= occupationCol {
			continue
		}
		name := strings.TrimSpace(record[nameCol])
		if name == "" {
			continue
		}
		guests = append(guests, Guest{
			Name:       name,
			Occupation: strings.TrimSpace(record[occupationCol]),
		})
	}
	if len(guests) == 0 {
		return nil, fmt.Errorf("csv file %s yielded no guests", path)
	}

	return guests, nil
}

func sampleGuests() []Guest {
	return []Guest{
		{Name: "Michael J. Fox", Occupation: "actor"},
		{Name: "Sandra Bernhard", Occupation: "Comedian"},
		{Name: "Tracey Ullman", Occupation: "television actress"},
		{Name: "Bradley Whitford", Occupation: "actor"},
		{Name: "Janeane Garofalo", Occupation: "comedian"},
		{Name: "William Baldwin", Occupation: "actor"},
		{Name: "John Turturro", Occupation: "actor"},
		{Name: "Minnie Driver", Occupation: "actress"},
	}
}
