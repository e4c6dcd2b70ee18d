package config

import (
	"strings"

	"github.com/TCUnion/power/internal/logger"
)

// candidate env var names for the Supabase URL
var urlCandidates = []string{
	"SUPABASE_URL",
	"VITE_SUPABASE_URL",
}

// candidate env var names for the API key, strongest privilege first; the
// VITE_ variants are frontend fallbacks, anon key last
var keyCandidates = []string{
	"SUPABASE_SERVICE_KEY",
	"SUPABASE_SERVICE_ROLE_KEY",
	"SUPABASE_KEY",
	"VITE_SUPABASE_SERVICE_ROLE_KEY",
	"VITE_SUPABASE_ANON_KEY",
}

// resolves the Supabase base URL and API key from the candidate env var
// lists, cleaning stray whitespace, quotes and trailing slashes. Returns
// empty strings (never an error) when nothing resolves; the caller decides
// whether that is fatal.
func ResolveSupabase(getenv GetenvFunc) (url, key, keySource string) {
	for _, name := range urlCandidates {
		if v := cleanValue(getenv(name)); v != "" {
			url = strings.TrimRight(v, "/")
			break
		}
	}

	keySource = "None"

	for _, name := range keyCandidates {
		if v := cleanValue(getenv(name)); v != "" {
			key = v
			keySource = name
			break
		}
	}

	if url == "" || key == "" {
		logger.Error("missing Supabase config",
			"url", url,
			"key_source", keySource,
		)
		return url, key, keySource
	}

	// diagnostics only: length and masked preview, never the raw secret
	logger.Info("Supabase config loaded",
		"key_source", keySource,
		"key_length", len(key),
		"key_masked", MaskKey(key),
	)

	return url, key, keySource
}

// strips surrounding whitespace and quote characters
func cleanValue(v string) string {
	v = strings.TrimSpace(v)
	v = strings.Trim(v, `"'`)
	return v
}

// returns a first4...last4 preview of a secret, safe for logs
func MaskKey(key string) string {
	if len(key) <= 8 {
		return "too_short"
	}

	return key[:4] + "..." + key[len(key)-4:]
}

// lists SUPABASE-related variable names visible in the environment, for
// diagnosing deployments with misnamed secrets
func availableSupabaseKeys(environ []string) []string {
	var names []string

	for _, kv := range environ {
		name, _, ok := strings.Cut(kv, "=")
		if ok && strings.Contains(name, "SUPABASE") {
			names = append(names, name)
		}
	}

	return names
}
