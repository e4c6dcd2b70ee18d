package settings

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TCUnion/power/internal/errors"
	"github.com/TCUnion/power/internal/logger"
	tcusettings "github.com/TCUnion/power/tcu/settings"
)

// lists all system settings as a bare array, the shape the frontend expects
func ListHandler(store tcusettings.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := store.All(c.Request.Context())
		if err != nil {
			errors.InternalError(c, "failed to load settings", err)
			return
		}

		if all == nil {
			all = []tcusettings.Setting{}
		}

		c.JSON(http.StatusOK, all)
	}
}

// upserts a batch of settings; the first failure aborts the batch
func UpdateHandler(store tcusettings.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.BadRequest(c, "invalid request body", err)
			return
		}

		for _, s := range req.Settings {
			if s.Key == "" {
				errors.BadRequest(c, "setting key must not be empty", nil)
				return
			}
		}

		updated := make([]tcusettings.Setting, 0, len(req.Settings))

		for _, s := range req.Settings {
			stored, err := store.Upsert(c.Request.Context(), s)
			if err != nil {
				errors.InternalError(c, "failed to update setting "+s.Key, err)
				return
			}

			updated = append(updated, *stored)
		}

		logger.Info("settings updated", "count", len(updated))

		c.JSON(http.StatusOK, updated)
	}
}
