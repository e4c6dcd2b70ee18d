package auth

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/markbates/goth/gothic"

	"github.com/TCUnion/power/internal/auth"
	"github.com/TCUnion/power/internal/errors"
	"github.com/TCUnion/power/internal/logger"
	"github.com/TCUnion/power/tcu/bindings"
)

// BindingStatusHandler godoc
// @Summary Check binding status
// @Description Resolve whether a Strava athlete is bound to a TCU member
// @Tags auth
// @Produce json
// @Param athlete_id path int true "Strava athlete ID"
// @Success 200 {object} bindings.ResolveResult
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/auth/binding-status/{athlete_id} [get]
func BindingStatusHandler(resolver *bindings.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		athleteID, err := strconv.ParseInt(c.Param("athlete_id"), 10, 64)
		if err != nil {
			errors.BadRequest(c, "invalid athlete_id", err)
			return
		}

		c.JSON(http.StatusOK, resolver.Resolve(c.Request.Context(), athleteID))
	}
}

// CheckBindingHandler godoc
// @Summary Check binding status (query form)
// @Description Legacy query-parameter variant of binding-status
// @Tags auth
// @Produce json
// @Param athlete_id query int true "Strava athlete ID"
// @Success 200 {object} bindings.ResolveResult
// @Failure 400 {object} errors.ErrorResponse
// @Router /check-binding [get]
func CheckBindingHandler(resolver *bindings.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Query("athlete_id")
		if raw == "" {
			errors.BadRequest(c, "athlete_id is required", nil)
			return
		}

		athleteID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errors.BadRequest(c, "invalid athlete_id", err)
			return
		}

		c.JSON(http.StatusOK, resolver.Resolve(c.Request.Context(), athleteID))
	}
}

// StravaTokenHandler godoc
// @Summary Acknowledge a Strava token sync
// @Description The frontend keeps tokens in its own session; the backend only acknowledges
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/auth/strava-token [post]
func StravaTokenHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StravaTokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.BadRequest(c, "invalid request body", err)
			return
		}

		logger.Info("strava token acknowledged", "athlete_id", req.AthleteID)

		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Token synced",
		})
	}
}

// MemberBindingHandler godoc
// @Summary Start the member binding flow
// @Description Only the generate_otp action is supported; OTP delivery is simulated
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} MemberBindingResponse
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/auth/member-binding [post]
func MemberBindingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MemberBindingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.BadRequest(c, "invalid request body", err)
			return
		}

		if req.Action != "generate_otp" {
			c.JSON(http.StatusOK, MemberBindingResponse{
				Success: false,
				Message: "無效的動作",
			})
			return
		}

		logger.Info("otp requested", "email", req.Email, "strava_id", req.StravaID)

		c.JSON(http.StatusOK, MemberBindingResponse{
			Success: true,
			Message: "已發送驗證碼（模擬）",
		})
	}
}

// ConfirmBindingHandler godoc
// @Summary Confirm a member binding
// @Description Writes the athlete-to-member binding record
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} bindings.WriteResult
// @Failure 400 {object} errors.ErrorResponse
// @Router /api/auth/confirm-binding [post]
func ConfirmBindingHandler(resolver *bindings.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ConfirmBindingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.BadRequest(c, "invalid request body", err)
			return
		}

		result := resolver.Confirm(c.Request.Context(), bindings.ConfirmRequest{
			Email:      req.Email,
			StravaID:   req.StravaID,
			TCUAccount: req.TCUAccount,
			MemberName: req.MemberName,
			UserID:     req.UserID,
		})

		c.JSON(http.StatusOK, result)
	}
}

// begins the Strava OAuth redirect
func BeginStravaAuthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Request.URL.Query()
		q.Add("provider", "strava")
		c.Request.URL.RawQuery = q.Encode()

		gothic.BeginAuthHandler(c.Writer, c.Request)
	}
}

// completes the OAuth flow, issues a JWT and reports the binding state so
// the frontend can route the athlete straight to binding when needed
func StravaCallbackHandler(resolver *bindings.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Request.URL.Query()
		q.Add("provider", "strava")
		c.Request.URL.RawQuery = q.Encode()

		gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
		if err != nil {
			errors.InternalError(c, "authentication failed", err)
			return
		}

		token, err := auth.GenerateJWT(gothUser.UserID, gothUser.Name)
		if err != nil {
			errors.InternalError(c, "failed to generate token", err)
			return
		}

		resp := AuthResponse{
			Token:    token,
			StravaID: gothUser.UserID,
			Name:     gothUser.Name,
		}

		if athleteID, err := strconv.ParseInt(gothUser.UserID, 10, 64); err == nil {
			resolver.RefreshName(c.Request.Context(), athleteID, gothUser.Name)

			result := resolver.Resolve(c.Request.Context(), athleteID)
			resp.Binding = &result
		}

		c.JSON(http.StatusOK, resp)
	}
}
