package config

// holds all runtime configuration, resolved once at startup and passed to
// components via constructors
type Config struct {
	SupabaseURL string
	SupabaseKey string
	KeySource   string // env var name the key was resolved from

	// optional direct Postgres connection (bypasses the REST API)
	ConnString string

	RedisURL    string
	OpenAIKey   string
	Environment string
	Port        string
}

// reads an environment variable; swappable in tests
type GetenvFunc func(string) string
