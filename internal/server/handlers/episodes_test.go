package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brimiq/Late-Show-CodeChallenge/internal/database"
)

func TestGetEpisodesOrderedByNumber(t *testing.T) {
	r, db := setupTestRouter(t)
	seedFixtures(t, db)

	w := doRequest(r, http.MethodGet, "/episodes", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var episodes []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &episodes))
	require.Len(t, episodes, 3)

	// insertion order was 2, 1, 3
	assert.Equal(t, float64(1), episodes[0]["number"])
	assert.Equal(t, float64(2), episodes[1]["number"])
	assert.Equal(t, float64(3), episodes[2]["number"])

	for _, episode := range episodes {
		assert.Contains(t, episode, "id")
		assert.Contains(t, episode, "date")
		assert.NotContains(t, episode, "appearances", "list view must stay shallow")
	}
}

func TestGetEpisodesEmpty(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doRequest(r, http.MethodGet, "/episodes", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetEpisodeWithAppearances(t *testing.T) {
	r, db := setupTestRouter(t)
	episodes, guests := seedFixtures(t, db)

	appearances := []database.Appearance{
		{Rating: 4, EpisodeID: episodes[0].ID, GuestID: guests[0].ID},
		{Rating: 5, EpisodeID: episodes[0].ID, GuestID: guests[1].ID},
		{Rating: 3, EpisodeID: episodes[1].ID, GuestID: guests[2].ID},
	}
	require.NoError(t, db.Create(&appearances).Error)

	w := doRequest(r, http.MethodGet, fmt.Sprintf("/episodes/%d", episodes[0].ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(episodes[0].ID), body["id"])
	assert.Equal(t, episodes[0].Date, body["date"])

	nested, ok := body["appearances"].([]interface{})
	require.True(t, ok, "appearances must be present on the detail view")
	require.Len(t, nested, 2, "appearance count must match the rows referencing the episode")

	for _, item := range nested {
		appearance, ok := item.(map[string]interface{})
		require.True(t, ok)
		assert.Contains(t, appearance, "rating")
		assert.Contains(t, appearance, "guest", "each appearance nests its guest")
		assert.NotContains(t, appearance, "episode", "the known episode is not nested again")

		guest, ok := appearance["guest"].(map[string]interface{})
		require.True(t, ok)
		assert.NotContains(t, guest, "appearances", "nested guest stays shallow")
	}
}

func TestGetEpisodeNotFound(t *testing.T) {
	r, db := setupTestRouter(t)
	seedFixtures(t, db)

	w := doRequest(r, http.MethodGet, "/episodes/9999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Episode not found"}`, w.Body.String())
}

func TestGetEpisodeNonNumericID(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doRequest(r, http.MethodGet, "/episodes/abc", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Resource not found"}`, w.Body.String())
}
