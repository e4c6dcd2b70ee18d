package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TCUnion/power/internal/aicoach"
	"github.com/TCUnion/power/tcu/bindings"
	"github.com/TCUnion/power/tcu/members"
	"github.com/TCUnion/power/tcu/settings"
	"github.com/TCUnion/power/tcu/training"
	"github.com/TCUnion/power/tcu/usage"
)

type fixture struct {
	router   *gin.Engine
	bindings *bindings.MemoryStore
	usage    *usage.MemoryStore
}

func newFixture(t *testing.T, webhookURL string) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	bindingStore := bindings.NewMemoryStore()
	memberStore := members.NewMemoryStore()
	settingStore := settings.NewMemoryStore()
	usageStore := usage.NewMemoryStore()
	trainingStore := training.NewMemoryStore()

	gate := usage.NewGate(bindingStore, memberStore, settingStore, usageStore)
	svc := aicoach.NewService(gate, usageStore, bindingStore, trainingStore,
		aicoach.NewWebhookClientWithURL(webhookURL), nil)

	router := gin.New()
	RegisterRoutes(router.Group("/api/ai"), svc)

	return &fixture{router: router, bindings: bindingStore, usage: usageStore}
}

func (f *fixture) bind(t *testing.T, stravaID string) {
	t.Helper()

	_, err := f.bindings.Upsert(context.Background(), &bindings.Binding{StravaID: stravaID})
	require.NoError(t, err)
}

func (f *fixture) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	return w
}

func TestChat_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"answer": "train at threshold twice a week"}`)) //nolint:errcheck
	}))
	defer srv.Close()

	f := newFixture(t, srv.URL)
	f.bind(t, "12345678")

	w := f.do(http.MethodPost, "/api/ai/chat",
		`{"user_id": "12345678", "message": "how to improve FTP?"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var result aicoach.ChatResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "train at threshold twice a week", result.Answer)
	assert.False(t, result.LimitReached)
	assert.Equal(t, 1, result.Usage.Current)
}

func TestChat_LimitReachedIs200(t *testing.T) {
	f := newFixture(t, "http://127.0.0.1:1")
	f.bind(t, "12345678")

	for i := 0; i < 5; i++ {
		err := f.usage.Append(context.Background(), &usage.LogEntry{
			StravaID:  "12345678",
			Type:      usage.TypeChat,
			CreatedAt: time.Now(),
		})
		require.NoError(t, err)
	}

	w := f.do(http.MethodPost, "/api/ai/chat",
		`{"user_id": "12345678", "message": "one more"}`)

	// quota denial is a successful response, not an HTTP error
	require.Equal(t, http.StatusOK, w.Code)

	var result aicoach.ChatResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.LimitReached)
	assert.Contains(t, result.Answer, "已達今日 AI 使用上限")
}

func TestChat_NotBoundIs403(t *testing.T) {
	f := newFixture(t, "http://127.0.0.1:1")

	w := f.do(http.MethodPost, "/api/ai/chat",
		`{"user_id": "99999999", "message": "hello"}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestChat_MissingMessage(t *testing.T) {
	f := newFixture(t, "http://127.0.0.1:1")

	w := f.do(http.MethodPost, "/api/ai/chat", `{"user_id": "12345678"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUsage_Success(t *testing.T) {
	f := newFixture(t, "http://127.0.0.1:1")
	f.bind(t, "12345678")

	w := f.do(http.MethodGet, "/api/ai/usage/12345678", "")

	require.Equal(t, http.StatusOK, w.Code)

	var result aicoach.UsageResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 0, result.Current)
	assert.Equal(t, 5, result.Limit)
	assert.Equal(t, "guest", result.Tier)
}

func TestUsage_NotBound(t *testing.T) {
	f := newFixture(t, "http://127.0.0.1:1")

	w := f.do(http.MethodGet, "/api/ai/usage/99999999", "")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHistory_ReturnsEntries(t *testing.T) {
	f := newFixture(t, "http://127.0.0.1:1")
	f.bind(t, "12345678")

	for i := 0; i < 3; i++ {
		err := f.usage.Append(context.Background(), &usage.LogEntry{
			StravaID:  "12345678",
			Type:      usage.TypeChat,
			Message:   "q",
			CreatedAt: time.Now(),
		})
		require.NoError(t, err)
	}

	w := f.do(http.MethodGet, "/api/ai/history/12345678?limit=2", "")

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		History []usage.LogEntry `json:"history"`
		Count   int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Len(t, resp.History, 2)
}

func TestHistory_EmptyIsAnArray(t *testing.T) {
	f := newFixture(t, "http://127.0.0.1:1")
	f.bind(t, "12345678")

	w := f.do(http.MethodGet, "/api/ai/history/12345678", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"history":[]`)
}

func TestSummary_LLMNotConfigured(t *testing.T) {
	f := newFixture(t, "http://127.0.0.1:1")
	f.bind(t, "12345678")

	w := f.do(http.MethodPost, "/api/ai/summary",
		`{"user_id": "12345678", "date": "2026-08-30"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
