package aicoach

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// the N8N workflow endpoint; deliberately a constant, the workflow address
// is part of the deployment
const n8nWebhookURL = "https://n8n.criterium.tw/webhook/ai-coach"

// the downstream does generative-AI work, give it plenty of time
const webhookTimeout = 60 * time.Second

// shared HTTP client for webhook calls
var webhookHTTPClient = &http.Client{
	Timeout: webhookTimeout,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// forwards allowed chat messages to the external AI workflow
type WebhookClient struct {
	url        string
	httpClient *http.Client
}

func NewWebhookClient() *WebhookClient {
	return &WebhookClient{
		url:        n8nWebhookURL,
		httpClient: webhookHTTPClient,
	}
}

// for tests
func NewWebhookClientWithURL(url string) *WebhookClient {
	return &WebhookClient{
		url:        url,
		httpClient: webhookHTTPClient,
	}
}

type webhookRequest struct {
	AthleteID string `json:"athlete_id"`
	Message   string `json:"message"`
}

type webhookResponse struct {
	Answer string `json:"answer"`
	Output string `json:"output"`
}

// sends the message downstream and returns the reply text. Any failure
// (network, non-200, empty reply) is folded into an error; the caller
// substitutes the canned apology.
func (c *WebhookClient) Forward(ctx context.Context, athleteID, message string) (string, error) {
	body, err := json.Marshal(webhookRequest{AthleteID: athleteID, Message: message})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("webhook request failed: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read webhook response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, string(raw))
	}

	// N8N workflows answer either {"answer": ...} or {"output": ...}
	var parsed webhookResponse
	if err := json.Unmarshal(raw, &parsed); err == nil {
		if parsed.Answer != "" {
			return parsed.Answer, nil
		}

		if parsed.Output != "" {
			return parsed.Output, nil
		}
	}

	if text := strings.TrimSpace(string(raw)); text != "" {
		return text, nil
	}

	return "", fmt.Errorf("webhook returned an empty reply")
}
