package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/brimiq/Late-Show-CodeChallenge/internal/database"
)

// setupTestDB opens a throwaway sqlite database with foreign keys enabled
// and installs it as the handler-visible connection.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "lateshow_test.db") + "?_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	database.DB = db
	return db
}

// setupTestRouter wires the resource routes the way the server package does.
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := setupTestDB(t)

	r := gin.New()
	r.GET("/episodes", GetEpisodes)
	r.GET("/episodes/:id", GetEpisode)
	r.GET("/guests", GetGuests)
	r.POST("/appearances", CreateAppearance)

	return r, db
}

func seedFixtures(t *testing.T, db *gorm.DB) ([]database.Episode, []database.Guest) {
	t.Helper()

	episodes := []database.Episode{
		{Date: "1/12/99", Number: 2},
		{Date: "1/11/99", Number: 1},
		{Date: "1/13/99", Number: 3},
	}
	require.NoError(t, db.Create(&episodes).Error)

	guests := []database.Guest{
		{Name: "Tracey Ullman", Occupation: "television actress"},
		{Name: "Michael J. Fox", Occupation: "actor"},
		{Name: "Sandra Bernhard", Occupation: "Comedian"},
	}
	require.NoError(t, db.Create(&guests).Error)

	return episodes, guests
}

func doRequest(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req, _ := http.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "response body: %s", w.Body.String())
	return body
}
