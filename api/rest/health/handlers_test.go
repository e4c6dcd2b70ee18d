package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TCUnion/power/internal/config"
)

func TestRootHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/", RootHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp RootResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "online", resp.Status)
	assert.Equal(t, "TCU Power API is running", resp.Message)
}

func TestHealthHandler_MasksKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		SupabaseURL: "https://proj.supabase.co",
		SupabaseKey: "abcdefgh-long-key-wxyz",
		KeySource:   "SUPABASE_SERVICE_KEY",
	}

	router := gin.New()
	router.GET("/health", Handler(cfg))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.ConfigCheck.HasURL)
	assert.True(t, resp.ConfigCheck.URLClean)
	assert.True(t, resp.ConfigCheck.HasKey)
	assert.Equal(t, len(cfg.SupabaseKey), resp.ConfigCheck.KeyLength)
	assert.Equal(t, "abcd...wxyz", resp.ConfigCheck.KeyMasked)

	// the raw key must never appear in the response
	assert.NotContains(t, w.Body.String(), cfg.SupabaseKey)
}
