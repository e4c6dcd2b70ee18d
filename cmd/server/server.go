package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TCUnion/power/internal/aicoach"
	"github.com/TCUnion/power/internal/auth"
	"github.com/TCUnion/power/internal/config"
	"github.com/TCUnion/power/internal/logger"
	"github.com/TCUnion/power/internal/supabase"
	"github.com/TCUnion/power/tcu/bindings"
	"github.com/TCUnion/power/tcu/members"
	"github.com/TCUnion/power/tcu/settings"
	"github.com/TCUnion/power/tcu/training"
	"github.com/TCUnion/power/tcu/usage"
)

// the data-access layer behind the domain stores; either a pgx pool (direct
// connection) or the Supabase REST API, chosen by configuration
type stores struct {
	bindings bindings.Store
	members  members.Store
	settings settings.Store
	usage    usage.Store
	training training.Store
}

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	var (
		db  *pgxpool.Pool
		st  stores
		err error
	)

	if cfg.ConnString != "" {
		db, st, err = newPostgresStores(cfg)
	} else {
		st = newSupabaseStores(cfg)
	}

	if err != nil {
		return nil, err
	}

	resolver := bindings.NewResolver(st.bindings, st.members)
	gate := usage.NewGate(st.bindings, st.members, st.settings, st.usage)

	var llm *aicoach.OpenAIClient
	if cfg.OpenAIKey != "" {
		llm = aicoach.NewOpenAIClient(cfg.OpenAIKey)
	} else {
		logger.Warn("OPENAI_API_KEY not set, daily summaries disabled")
	}

	coach := aicoach.NewService(gate, st.usage, st.bindings, st.training, aicoach.NewWebhookClient(), llm)

	oauth := false
	if os.Getenv("STRAVA_CLIENT_ID") != "" {
		if err := auth.InitializeProviders(); err != nil {
			return nil, fmt.Errorf("failed to initialize OAuth providers: %w", err)
		}
		oauth = true
	} else {
		logger.Info("STRAVA_CLIENT_ID not set, OAuth routes disabled")
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &Server{
		db:       db,
		config:   cfg,
		resolver: resolver,
		settings: st.settings,
		coach:    coach,
		oauth:    oauth,
		router:   gin.New(),
	}

	server.router.Use(gin.Recovery())

	if err := RegisterRoutes(server.router, server); err != nil {
		if db != nil {
			db.Close()
		}
		return nil, err
	}

	return server, nil
}

func newPostgresStores(cfg *config.Config) (*pgxpool.Pool, stores, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(cfg.ConnString)
	if err != nil {
		return nil, stores{}, fmt.Errorf("failed to parse database config: %w", err)
	}

	// configure connection pool for supabase free tier pooler compatibility
	// free tier has ~10-15 pooler connections, so keep our pool small
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	// CRITICAL: use simple protocol for supabase pooler (PgBouncer) compatibility
	// pgBouncer in transaction mode doesn't support prepared statements,
	// which causes connections to hang on subsequent queries
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, stores{}, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, stores{}, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("using direct postgres connection")

	return db, stores{
		bindings: bindings.NewPostgresStore(db),
		members:  members.NewPostgresStore(db),
		settings: settings.NewPostgresStore(db),
		usage:    usage.NewPostgresStore(db),
		training: training.NewPostgresStore(db),
	}, nil
}

func newSupabaseStores(cfg *config.Config) stores {
	client := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseKey)

	logger.Info("using supabase REST API", "key_source", cfg.KeySource, "key_masked", config.MaskKey(cfg.SupabaseKey))

	return stores{
		bindings: bindings.NewSupabaseStore(client),
		members:  members.NewSupabaseStore(client),
		settings: settings.NewSupabaseStore(client),
		usage:    usage.NewSupabaseStore(client),
		training: training.NewSupabaseStore(client),
	}
}
