package ai

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/TCUnion/power/internal/aicoach"
	"github.com/TCUnion/power/internal/errors"
	"github.com/TCUnion/power/tcu/usage"
)

const defaultHistoryLimit = 5

// ChatHandler godoc
// @Summary Chat with the AI coach
// @Description Quota-gated chat forwarding; a reached limit is a 200 with limit_reached
// @Tags ai
// @Accept json
// @Produce json
// @Success 200 {object} aicoach.ChatResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /api/ai/chat [post]
func ChatHandler(svc *aicoach.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.BadRequest(c, "invalid request body", err)
			return
		}

		result, err := svc.Chat(c.Request.Context(), req.UserID, req.Message)
		if err != nil {
			if stderrors.Is(err, usage.ErrNotBound) {
				errors.Forbidden(c, "account is not bound to a member")
				return
			}

			errors.InternalError(c, "chat failed", err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// SummaryHandler godoc
// @Summary Generate a daily training summary
// @Tags ai
// @Accept json
// @Produce json
// @Success 200 {object} aicoach.SummaryResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/ai/summary [post]
func SummaryHandler(svc *aicoach.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SummaryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.BadRequest(c, "invalid request body", err)
			return
		}

		result, err := svc.DailySummary(c.Request.Context(), req.UserID, req.Date)
		if err != nil {
			if stderrors.Is(err, usage.ErrNotBound) {
				errors.Forbidden(c, "account is not bound to a member")
				return
			}

			errors.InternalError(c, "summary generation failed", err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// UsageHandler godoc
// @Summary Today's AI usage for a user
// @Tags ai
// @Produce json
// @Param user_id path string true "Strava athlete ID or auth UUID"
// @Success 200 {object} aicoach.UsageResult
// @Failure 403 {object} errors.ErrorResponse
// @Router /api/ai/usage/{user_id} [get]
func UsageHandler(svc *aicoach.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := svc.Usage(c.Request.Context(), c.Param("user_id"))
		if err != nil {
			if stderrors.Is(err, usage.ErrNotBound) {
				errors.Forbidden(c, "account is not bound to a member")
				return
			}

			errors.InternalError(c, "usage lookup failed", err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// HistoryHandler godoc
// @Summary Recent AI chat history for a user
// @Tags ai
// @Produce json
// @Param user_id path string true "Strava athlete ID or auth UUID"
// @Param limit query int false "Max rows, default 5"
// @Success 200 {array} usage.LogEntry
// @Failure 403 {object} errors.ErrorResponse
// @Router /api/ai/history/{user_id} [get]
func HistoryHandler(svc *aicoach.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := defaultHistoryLimit
		if raw := c.Query("limit"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 100 {
				limit = parsed
			}
		}

		entries, err := svc.History(c.Request.Context(), c.Param("user_id"), limit)
		if err != nil {
			if stderrors.Is(err, usage.ErrNotBound) {
				errors.Forbidden(c, "account is not bound to a member")
				return
			}

			errors.InternalError(c, "history lookup failed", err)
			return
		}

		if entries == nil {
			entries = []usage.LogEntry{}
		}

		c.JSON(http.StatusOK, gin.H{"history": entries, "count": len(entries)})
	}
}
