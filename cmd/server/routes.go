package main

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/TCUnion/power/api/rest/ai"
	"github.com/TCUnion/power/api/rest/auth"
	"github.com/TCUnion/power/api/rest/health"
	"github.com/TCUnion/power/api/rest/settings"
	"github.com/TCUnion/power/internal/ratelimit"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) error {
	router.Use(CORSMiddleware())

	router.GET("/", health.RootHandler)
	router.GET("/health", health.Handler(server.config))
	router.GET("/check-binding", auth.CheckBindingHandler(server.resolver))

	api := router.Group("/api")

	{
		auth.RegisterRoutes(api, server.resolver)

		if server.oauth {
			auth.RegisterOAuthRoutes(api, server.resolver)
		}

		settings.RegisterRoutes(api, server.settings)

		limiterMiddleware, err := ratelimit.Middleware(server.config.RedisURL)
		if err != nil {
			return fmt.Errorf("failed to build rate limiter: %w", err)
		}

		aiGroup := api.Group("/ai", limiterMiddleware)
		ai.RegisterRoutes(aiGroup, server.coach)
	}

	return nil
}
