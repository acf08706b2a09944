package coverage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"quality-engine/src/config"
	"quality-engine/src/util"
)

// Client fetches coverage summaries from a coverage service
type Client struct {
	baseURL    string
	project    string
	httpClient *http.Client
	retryConf  config.RetryConfig
}

// NewClient creates a new coverage service client
func NewClient(cfg config.CoverageServiceConfig) *Client {
	return &Client{
		baseURL: cfg.URL,
		project: cfg.Project,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		retryConf: cfg.Retry,
	}
}

// FetchRequest is the body of a coverage request
type FetchRequest struct {
	Project string `json:"project"`
}

// Fetch retrieves the latest coverage summary for the configured project
func (c *Client) Fetch(ctx context.Context) (*Data, error) {
	util.Debug("Fetching coverage for project: %s", c.project)

	var data Data
	if err := c.post(ctx, "/api/v1/coverage", FetchRequest{Project: c.project}, &data); err != nil {
		util.Error("Coverage fetch failed: %v", err)
		return nil, err
	}

	util.Debug("Coverage service returned %d files", len(data.Files))
	return &data, nil
}

func (c *Client) post(ctx context.Context, path string, body any, result any) error {
	var lastErr error

	for attempt := 0; attempt < max(c.retryConf.MaxAttempts, 1); attempt++ {
		if attempt > 0 {
			delay := c.calculateBackoff(attempt)
			util.Warn("Retrying request to %s (attempt %d/%d) after %v", path, attempt+1, c.retryConf.MaxAttempts, delay)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		err := c.doPost(ctx, path, body, result)
		if err == nil {
			return nil
		}

		lastErr = err
		if !c.shouldRetry(err) {
			break
		}
	}

	return lastErr
}

func (c *Client) doPost(ctx context.Context, path string, body any, result any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

// calculateBackoff returns InitialDelay * BackoffFactor^(attempt-1), capped
// at MaxDelay
func (c *Client) calculateBackoff(attempt int) time.Duration {
	delay := float64(c.retryConf.InitialDelay)
	for i := 1; i < attempt; i++ {
		delay *= c.retryConf.BackoffFactor
	}
	if c.retryConf.MaxDelay > 0 && delay > float64(c.retryConf.MaxDelay) {
		delay = float64(c.retryConf.MaxDelay)
	}
	return time.Duration(delay)
}

func (c *Client) shouldRetry(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		for _, code := range c.retryConf.RetryOnStatus {
			if apiErr.StatusCode == code {
				return true
			}
		}
	}
	return false
}

// APIError represents an error response from the coverage service
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("coverage service error (status %d): %s", e.StatusCode, e.Body)
}
