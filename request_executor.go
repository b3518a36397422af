// request_executor.go
// -------------------
// The RequestExecutor builds and issues a single HTTP call from a
// RequestSpec: it resolves auth headers, waits for rate-limit clearance,
// records the response headers back into the limiter, and classifies the
// result. Throttled (429) responses are retried inside a bounded loop rather
// than surfaced to the caller.
package helixbridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const headerClientID = "Client-Id"

type RequestExecutor struct {
	client *Client
}

func newRequestExecutor(c *Client) *RequestExecutor {
	return &RequestExecutor{client: c}
}

// Execute issues the call described by spec and decodes the response
// envelope.
func (re *RequestExecutor) Execute(ctx context.Context, spec *RequestSpec) (*PageEnvelope, error) {
	body, err := re.executeRaw(ctx, spec)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		// 204-style responses carry no envelope.
		return &PageEnvelope{}, nil
	}
	var env PageEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decoding response from %s: %w", re.requestURL(spec), err)
	}
	return &env, nil
}

// executeRaw runs the retry loop and returns the raw response body of the
// first successful attempt. A 429 consumes an attempt; every other non-2xx
// status fails immediately.
func (re *RequestExecutor) executeRaw(ctx context.Context, spec *RequestSpec) ([]byte, error) {
	c := re.client
	url := re.requestURL(spec)

	for attempt := 0; ; attempt++ {
		headers, err := re.resolveHeaders(ctx, spec)
		if err != nil {
			return nil, err
		}

		if err := c.limiter.AwaitClearance(ctx); err != nil {
			return nil, err
		}

		status, respBody, respHeaders, err := re.issue(ctx, spec, url, headers)
		if err != nil {
			return nil, err
		}

		c.limiter.RecordResponse(respHeaders)

		switch {
		case status == http.StatusTooManyRequests:
			if attempt >= c.maxRetries {
				c.logger.Debug().Str("url", url).Int("attempts", attempt+1).
					Msg("throttled and retry budget exhausted")
				return nil, &HTTPError{StatusCode: status, URL: url}
			}
			// Clearance now blocks until the next reset since the
			// remaining budget just dropped to zero. When the response
			// carried no deadline, fall back to exponential backoff.
			if wait := re.backoffWithoutDeadline(attempt); wait > 0 {
				if err := c.limiter.sleep(ctx, wait); err != nil {
					return nil, err
				}
			}
			c.logger.Debug().Str("url", url).Int("attempt", attempt+1).
				Msg("throttled, retrying")
			continue

		case status == http.StatusBadRequest:
			return nil, &BadRequestError{URL: url, Message: providerMessage(respBody)}

		case status < 200 || status >= 300:
			return nil, &HTTPError{StatusCode: status, URL: url}
		}

		return respBody, nil
	}
}

// issue performs one HTTP round trip.
func (re *RequestExecutor) issue(ctx context.Context, spec *RequestSpec, url string, headers map[string]string) (int, []byte, http.Header, error) {
	var body io.Reader
	if spec.Body != nil {
		payload, err := json.Marshal(spec.Body)
		if err != nil {
			return 0, nil, nil, err
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, spec.Method, url, body)
	if err != nil {
		return 0, nil, nil, err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if spec.Body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := re.client.httpClient.Do(req)
	if err != nil {
		return 0, nil, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, nil, err
	}
	return resp.StatusCode, data, resp.Header, nil
}

// resolveHeaders attaches the client-identifier header on every call and a
// bearer token on everything except the auth calls themselves, which would
// otherwise recurse into token acquisition. Explicit spec headers win.
func (re *RequestExecutor) resolveHeaders(ctx context.Context, spec *RequestSpec) (map[string]string, error) {
	c := re.client
	headers := map[string]string{}

	c.mu.Lock()
	clientID := c.creds.ClientID
	c.mu.Unlock()
	if clientID != "" {
		headers[headerClientID] = clientID
	}

	if !spec.AuthCall {
		token, err := c.tokens.Obtain(ctx)
		if err != nil {
			return nil, err
		}
		if token != "" {
			headers["Authorization"] = "Bearer " + token
		}
	}

	for k, v := range spec.Headers {
		headers[k] = v
	}
	return headers, nil
}

func (re *RequestExecutor) requestURL(spec *RequestSpec) string {
	base := spec.BaseURL
	if base == "" {
		base = re.client.baseURL + "/" + spec.Path
	}
	if len(spec.Params) == 0 {
		return base
	}
	return base + "?" + spec.Params.Encode()
}

// backoffWithoutDeadline computes the fallback wait before a 429 retry when
// the limiter holds no future reset deadline. Exponential from the configured
// base, capped at 30 seconds.
func (re *RequestExecutor) backoffWithoutDeadline(attempt int) time.Duration {
	snap := re.client.limiter.Snapshot()
	now := re.client.now()
	for _, reset := range snap.Resets {
		if reset.After(now) {
			return 0 // AwaitClearance will handle the wait
		}
	}
	backoff := re.client.baseBackoff * (1 << attempt)
	if backoff > 30*time.Second {
		backoff = 30 * time.Second
	}
	return backoff
}

// providerMessage extracts the human-readable message field of an error body.
func providerMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}
