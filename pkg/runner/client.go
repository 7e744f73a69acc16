package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 60 * time.Second

// Client talks to the external conversational agent runner over HTTP.
// The runner receives enriched queries and returns natural-language replies.
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient creates a runner client for the given base URL, e.g.
// "http://127.0.0.1:8000". The model string is forwarded with every query
// and may be empty to let the runner pick.
func NewClient(baseURL string, model string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Query sends a query to the runner and returns its textual reply.
func (c *Client) Query(ctx context.Context, query string, sessionID string) (string, error) {
	url := fmt.Sprintf("%s/query", c.baseURL)

	body, err := json.Marshal(QueryRequest{
		Query:     query,
		SessionID: sessionID,
		Model:     c.model,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal query: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to call agent runner: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("agent runner error %d: %s", resp.StatusCode, string(raw))
	}

	var result QueryResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode runner response: %w", err)
	}
	if result.Error != "" {
		return "", fmt.Errorf("agent runner rejected query: %s", result.Error)
	}

	return result.Result, nil
}
