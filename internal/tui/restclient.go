package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// timeout for coach requests; the backend itself waits up to 60s on the
// AI workflow
const coachRequestTimeout = 90 * time.Second

// manages HTTP requests to the power API
type CoachClient struct {
	endpoint   string
	httpClient *http.Client
}

// creates a new coach REST client
func NewCoachClient() *CoachClient {
	endpoint := os.Getenv("TCU_API_ENDPOINT")
	if endpoint == "" {
		endpoint = "http://localhost:8080"
	}

	return &CoachClient{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: coachRequestTimeout,
		},
	}
}

type chatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

type chatResponse struct {
	Answer       string `json:"answer"`
	LimitReached bool   `json:"limit_reached"`
	Usage        struct {
		Current int `json:"current"`
		Limit   int `json:"limit"`
	} `json:"usage"`
}

type apiErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// sends one chat message to the backend
func (c *CoachClient) Chat(ctx context.Context, userID, message string) (*CoachResponseMsg, error) {
	payload, err := json.Marshal(chatRequest{UserID: userID, Message: message})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/ai/chat", c.endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp apiErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			return nil, fmt.Errorf("%s: %s", errResp.Error, errResp.Message)
		}
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result chatResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &CoachResponseMsg{
		answer:       result.Answer,
		limitReached: result.LimitReached,
		current:      result.Usage.Current,
		limit:        result.Usage.Limit,
	}, nil
}

// returns a tea.Cmd that sends a chat message
func (c *CoachClient) ChatCmd(userID, message string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), coachRequestTimeout)
		defer cancel()

		resp, err := c.Chat(ctx, userID, message)
		if err != nil {
			return CoachErrorMsg{err: err}
		}

		return *resp
	}
}
