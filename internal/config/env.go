package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/TCUnion/power/internal/logger"
)

// .env locations probed in order; the deployed layout keeps the frontend env
// file under web/
var envPaths = []string{
	".env",
	"web/.env",
	"../web/.env",
	filepath.Join("..", "web", ".env"),
}

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	loadDotEnv()

	url, key, source := ResolveSupabase(os.Getenv)
	if url == "" || key == "" {
		return nil, fmt.Errorf("missing Supabase credentials: SUPABASE_URL or key not set (checked %v)", availableSupabaseKeys(os.Environ()))
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		SupabaseURL: url,
		SupabaseKey: key,
		KeySource:   source,
		ConnString:  os.Getenv("SUPABASE_CONNECTION_STRING"),
		RedisURL:    os.Getenv("REDIS_URL"),
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		Environment: environment,
		Port:        port,
	}, nil
}

func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			if err := godotenv.Load(p); err == nil {
				logger.Info("loaded environment variables", "path", p)
			}
		}
	}
}
