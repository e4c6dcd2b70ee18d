package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// shared HTTP client for Supabase REST calls
// reuses connection pool and timeout configuration
var sharedHTTPClient = &http.Client{
	Timeout: 30 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// Client talks to the Supabase PostgREST API (/rest/v1). It carries no
// per-request state and is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: sharedHTTPClient,
	}
}

// fetches rows matching the query and decodes the JSON array into dest
// (pointer to a slice)
func (c *Client) Select(ctx context.Context, table string, q *Query, dest any) error {
	req, err := c.newRequest(ctx, http.MethodGet, table, q, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return readAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// counts rows matching the query without fetching them, via the exact-count
// preference and the Content-Range response header
func (c *Client) Count(ctx context.Context, table string, q *Query) (int, error) {
	req, err := c.newRequest(ctx, http.MethodGet, table, q, nil)
	if err != nil {
		return 0, err
	}

	req.Header.Set("Prefer", "count=exact")
	req.Header.Set("Range-Unit", "items")
	req.Header.Set("Range", "0-0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	// PostgREST answers ranged requests with 200 or 206
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		return 0, readAPIError(resp)
	}

	return parseContentRange(resp.Header.Get("Content-Range"))
}

// inserts rows, overwriting existing rows that collide on onConflict
// (last write wins, no partial merge). The affected rows are decoded into
// dest when dest is non-nil.
func (c *Client) Upsert(ctx context.Context, table, onConflict string, payload any, dest any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	q := NewQuery()
	if onConflict != "" {
		q.params.Set("on_conflict", onConflict)
	}

	req, err := c.newRequest(ctx, http.MethodPost, table, q, bytes.NewReader(body))
	if err != nil {
		return err
	}

	req.Header.Set("Prefer", "resolution=merge-duplicates,return=representation")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return readAPIError(resp)
	}

	if dest == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// inserts rows without conflict handling
func (c *Client) Insert(ctx context.Context, table string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, table, nil, bytes.NewReader(body))
	if err != nil {
		return err
	}

	req.Header.Set("Prefer", "return=minimal")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK &&
		resp.StatusCode != http.StatusNoContent {
		return readAPIError(resp)
	}

	return nil
}

func (c *Client) newRequest(ctx context.Context, method, table string, q *Query, body io.Reader) (*http.Request, error) {
	url := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table)
	if q != nil && len(q.params) > 0 {
		url += "?" + q.params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}

func readAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body) //nolint:errcheck
	return fmt.Errorf("supabase request failed with status %d: %s", resp.StatusCode, string(body))
}

// Content-Range looks like "0-0/42" (or "*/0" for empty tables)
func parseContentRange(header string) (int, error) {
	_, total, ok := strings.Cut(header, "/")
	if !ok {
		return 0, fmt.Errorf("missing Content-Range header in count response")
	}

	if total == "*" {
		return 0, nil
	}

	n, err := strconv.Atoi(total)
	if err != nil {
		return 0, fmt.Errorf("invalid Content-Range total %q: %w", total, err)
	}

	return n, nil
}
