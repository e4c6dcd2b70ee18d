package health

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TCUnion/power/internal/config"
)

// returns the service banner for the root path
func RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Status:  "online",
		Message: "TCU Power API is running",
	})
}

// creates the health handler; reports liveness plus a redacted view of the
// Supabase configuration for deployment debugging
func Handler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{
			Status:    "ok",
			Version:   "1.0.0",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			ConfigCheck: ConfigCheck{
				HasURL:    cfg.SupabaseURL != "",
				URLClean:  cfg.SupabaseURL == strings.TrimSpace(cfg.SupabaseURL),
				HasKey:    cfg.SupabaseKey != "",
				KeyLength: len(cfg.SupabaseKey),
				KeyMasked: config.MaskKey(cfg.SupabaseKey),
				KeySource: cfg.KeySource,
			},
		})
	}
}
