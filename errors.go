// errors.go
// ---------
// Error taxonomy for the client. Validation and configuration problems are
// raised before any network call; auth and HTTP failures propagate unchanged
// to the original caller. Throttling (429) is retried by the executor and
// surfaces as *HTTPError only once the retry budget runs out.
package helixbridge

import (
	"fmt"
	"net/http"
)

// ConfigurationError indicates the client was constructed without usable
// credentials: neither a client id + secret pair nor an OAuth token.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "helixbridge: " + e.Reason
}

// ValidationError indicates a caller-supplied argument violates a documented
// endpoint constraint. No network call has been made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AuthError indicates the token exchange or token validation was rejected by
// the provider. It is not retried automatically.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AuthError) Unwrap() error { return e.Err }

// BadRequestError carries the provider-supplied message from a 400 response.
// The message format mirrors a generic client-error string so upstream code
// can pattern-match on it uniformly.
type BadRequestError struct {
	URL     string
	Message string
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("400 Client Error: Bad Request for url: %s: %s", e.URL, e.Message)
}

// HTTPError is any other non-2xx response.
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	kind := "Client Error"
	if e.StatusCode >= 500 {
		kind = "Server Error"
	}
	return fmt.Sprintf("%d %s: %s for url: %s", e.StatusCode, kind, http.StatusText(e.StatusCode), e.URL)
}

// NotProvidedError indicates the caller asked for pagination metadata the
// provider did not supply for this endpoint.
type NotProvidedError struct {
	Field string
}

func (e *NotProvidedError) Error() string {
	return fmt.Sprintf("provider did not supply a value for %q", e.Field)
}
