package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/TCUnion/power/tcu/bindings"
)

// RegisterRoutes wires the binding and token endpoints under /api/auth.
func RegisterRoutes(router *gin.RouterGroup, resolver *bindings.Resolver) {
	router.GET("/auth/binding-status/:athlete_id", BindingStatusHandler(resolver))
	router.POST("/auth/strava-token", StravaTokenHandler())
	router.POST("/auth/member-binding", MemberBindingHandler())
	router.POST("/auth/confirm-binding", ConfirmBindingHandler(resolver))
}

// RegisterOAuthRoutes wires the Strava OAuth flow. Only called when the
// Strava client credentials are configured.
func RegisterOAuthRoutes(router *gin.RouterGroup, resolver *bindings.Resolver) {
	router.GET("/auth/strava/login", BeginStravaAuthHandler())
	router.GET("/auth/strava/callback", StravaCallbackHandler(resolver))
}
