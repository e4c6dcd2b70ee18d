package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TCUnion/power/internal/aicoach"
	"github.com/TCUnion/power/internal/config"
	"github.com/TCUnion/power/tcu/bindings"
	"github.com/TCUnion/power/tcu/settings"
)

// holds all dependencies and state for the API server
type Server struct {
	db       *pgxpool.Pool // nil when running over the Supabase REST API
	config   *config.Config
	resolver *bindings.Resolver
	settings settings.Store
	coach    *aicoach.Service
	oauth    bool // Strava OAuth routes enabled
	router   *gin.Engine
}
