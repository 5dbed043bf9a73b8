package winston

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// ErrChannelLookup signals that the gateway could not resolve the requested
// channel pattern. Wildcarded channel fetches fall back to the exact name on
// this error.
var ErrChannelLookup = errors.New("channel lookup failed")

// APIError represents an error response from the gateway.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("winston gateway error %d: %s", e.StatusCode, e.Message)
}

// IsRetryable returns true if the error should trigger a retry.
func (e *APIError) IsRetryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == 429
}

// errorBody is the gateway's JSON error envelope.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// doRequest performs a GET against the given path.
func (c *Client) doRequest(ctx context.Context, path string, query url.Values, requestID string) ([]byte, error) {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var eb errorBody
		if json.Unmarshal(body, &eb) == nil && eb.Code == "channel_lookup" {
			return nil, fmt.Errorf("%w: %s", ErrChannelLookup, eb.Message)
		}
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Body:       body,
		}
	}

	return body, nil
}

// doWithRetry performs a request with exponential backoff retry.
func (c *Client) doWithRetry(ctx context.Context, path string, query url.Values) ([]byte, error) {
	requestID := uuid.NewString()

	var lastErr error
	backoff := c.retryBackoff

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			// Add jitter: backoff * (0.5 to 1.5)
			jitter := backoff / 2 + time.Duration(rand.Int64N(int64(backoff)))
			c.logger.Debug("retrying request",
				"attempt", attempt,
				"backoff", jitter,
				"path", path,
				"request_id", requestID,
			)

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(jitter):
			}

			backoff *= 2
		}

		body, err := c.doRequest(ctx, path, query, requestID)
		if err == nil {
			return body, nil
		}

		lastErr = err

		// Check if error is retryable
		apiErr, ok := err.(*APIError)
		if !ok || !apiErr.IsRetryable() {
			return nil, err
		}
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// get performs a GET request with retries and decodes the JSON response.
func (c *Client) get(ctx context.Context, path string, query url.Values, result any) error {
	body, err := c.doWithRetry(ctx, path, query)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}
