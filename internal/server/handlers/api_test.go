package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brimiq/Late-Show-CodeChallenge/internal/apiroutes"
)

// TestHandleIndex checks the root endpoint descriptor.
func TestHandleIndex(t *testing.T) {
	gin.SetMode(gin.TestMode)
	apiroutes.ClearForTesting()

	apiroutes.Register("/", "GET", "API root, lists available endpoints.")
	apiroutes.Register("/episodes", "GET", "List all episodes ordered by number.")
	apiroutes.Register("/episodes/:id", "GET", "Retrieve one episode with its appearances.")
	apiroutes.Register("/guests", "GET", "List all guests ordered by name.")
	apiroutes.Register("/appearances", "POST", "Create an appearance linking a guest to an episode.")

	r := gin.New()
	r.GET("/", HandleIndex)

	w := doRequest(r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Welcome to the Late Show API", body["message"])
	assert.Equal(t, "running", body["status"])

	endpoints, ok := body["endpoints"].(map[string]interface{})
	require.True(t, ok, "endpoints map should exist")
	assert.Equal(t, "/episodes", endpoints["episodes"])
	assert.Equal(t, "/episodes/:id", endpoints["episode_detail"])
	assert.Equal(t, "/guests", endpoints["guests"])
	assert.Equal(t, "/appearances", endpoints["appearances"])
}

// TestHandleHealthCheck covers the basic health endpoint.
func TestHandleHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/health", HandleHealthCheck)

	w := doRequest(r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","service":"lateshow"}`, w.Body.String())
}

// TestHandleDBStatus verifies the database readiness probe against a live
// test connection.
func TestHandleDBStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	setupTestDB(t)

	r := gin.New()
	r.GET("/health/db", HandleDBStatus)

	w := doRequest(r, http.MethodGet, "/health/db", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"connected","database":"ready"}`, w.Body.String())
}
