package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntValues(t *testing.T) {
	rows := []Setting{
		{Key: "ai_limit_guest", Value: "10"},
		{Key: "ai_limit_basic", Value: "20"},
		{Key: "welcome_message", Value: "hello riders"},
		{Key: "ai_limit_premium", Value: "-5"},  // sign makes it non-digit
		{Key: "maintenance_until", Value: "3.5"}, // decimal point too
		{Key: "empty", Value: ""},
	}

	values := IntValues(rows)

	assert.Equal(t, map[string]int{
		"ai_limit_guest": 10,
		"ai_limit_basic": 20,
	}, values)
}

func TestIntValues_Empty(t *testing.T) {
	assert.Empty(t, IntValues(nil))
	assert.Empty(t, IntValues([]Setting{}))
}
