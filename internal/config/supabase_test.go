package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fakeEnv(vars map[string]string) GetenvFunc {
	return func(name string) string {
		return vars[name]
	}
}

func TestResolveSupabase_ServiceKeyPriority(t *testing.T) {
	url, key, source := ResolveSupabase(fakeEnv(map[string]string{
		"SUPABASE_URL":           "https://proj.supabase.co",
		"SUPABASE_SERVICE_KEY":   "service-key-value-long-enough",
		"VITE_SUPABASE_ANON_KEY": "anon-key-value",
	}))

	assert.Equal(t, "https://proj.supabase.co", url)
	assert.Equal(t, "service-key-value-long-enough", key)
	assert.Equal(t, "SUPABASE_SERVICE_KEY", source)
}

func TestResolveSupabase_AnonKeyFallback(t *testing.T) {
	_, key, source := ResolveSupabase(fakeEnv(map[string]string{
		"SUPABASE_URL":           "https://proj.supabase.co",
		"VITE_SUPABASE_ANON_KEY": "anon-key-value-long-enough",
	}))

	assert.Equal(t, "anon-key-value-long-enough", key)
	assert.Equal(t, "VITE_SUPABASE_ANON_KEY", source)
}

func TestResolveSupabase_ViteURLFallback(t *testing.T) {
	url, _, _ := ResolveSupabase(fakeEnv(map[string]string{
		"VITE_SUPABASE_URL": "https://proj.supabase.co",
		"SUPABASE_KEY":      "some-key-value-long-enough",
	}))

	assert.Equal(t, "https://proj.supabase.co", url)
}

func TestResolveSupabase_CleansValues(t *testing.T) {
	url, key, _ := ResolveSupabase(fakeEnv(map[string]string{
		"SUPABASE_URL":         ` "https://proj.supabase.co/" `,
		"SUPABASE_SERVICE_KEY": `'  padded-key-value-long-enough  '`,
	}))

	// trailing slash trimmed so path joining stays predictable
	assert.Equal(t, "https://proj.supabase.co", url)
	assert.Equal(t, "padded-key-value-long-enough", key)
}

func TestResolveSupabase_NothingSet(t *testing.T) {
	url, key, source := ResolveSupabase(fakeEnv(nil))

	assert.Empty(t, url)
	assert.Empty(t, key)
	assert.Equal(t, "None", source)
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "abcd...wxyz", MaskKey("abcdefgh-long-key-wxyz"))
	assert.Equal(t, "too_short", MaskKey("short"))
	assert.Equal(t, "too_short", MaskKey("12345678"))
	assert.Equal(t, "1234...6789", MaskKey("123456789"))
}

func TestCleanValue(t *testing.T) {
	assert.Equal(t, "value", cleanValue(`  "value"  `))
	assert.Equal(t, "value", cleanValue(`'value'`))
	assert.Equal(t, "", cleanValue("   "))
}

func TestAvailableSupabaseKeys(t *testing.T) {
	names := availableSupabaseKeys([]string{
		"PATH=/usr/bin",
		"SUPABASE_URL=x",
		"VITE_SUPABASE_ANON_KEY=y",
		"HOME=/root",
	})

	assert.Equal(t, []string{"SUPABASE_URL", "VITE_SUPABASE_ANON_KEY"}, names)
}
