// config.go
// ----------
// Functional options for constructing a Client, plus an environment-backed
// constructor for the common deployment case where credentials arrive via
// HELIX_* variables.
package helixbridge

import (
	"net/http"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"

	"github.com/streambridge/helix-bridge/store"
)

type Option func(*Client)

// WithCredentials sets the client id and secret used for the
// client-credentials grant.
func WithCredentials(clientID, clientSecret string) Option {
	return func(c *Client) {
		c.creds.ClientID = clientID
		c.creds.ClientSecret = clientSecret
	}
}

// WithUserToken seeds the session with an existing user OAuth token. A client
// secret is then optional.
func WithUserToken(token string) Option {
	return func(c *Client) {
		c.creds.AccessToken = token
	}
}

// WithHTTPClient replaces the HTTP client used for all calls, including the
// token exchange. Callers that need request timeouts set them here.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger attaches a zerolog logger; the default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithMaxRetries caps how many times a throttled request is re-issued before
// the 429 surfaces as an error.
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		c.maxRetries = n
	}
}

// WithBaseBackoff sets the starting backoff used when a 429 response carries
// no reset deadline.
func WithBaseBackoff(d time.Duration) Option {
	return func(c *Client) {
		c.baseBackoff = d
	}
}

// WithPageSize changes the default page size requested by paginated
// endpoints.
func WithPageSize(n int) Option {
	return func(c *Client) {
		c.pageSize = n
	}
}

// WithTokenStore caches app access tokens in an external store so multiple
// processes sharing one credential set reuse a single token.
func WithTokenStore(s store.TokenStore) Option {
	return func(c *Client) {
		c.tokenStore = s
	}
}

// WithBaseURL overrides the versioned API base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithAuthURL overrides the token and introspection endpoints.
func WithAuthURL(tokenURL, validateURL string) Option {
	return func(c *Client) {
		c.authURL = tokenURL
		c.validateURL = validateURL
	}
}

type envCredentials struct {
	ClientID     string `envconfig:"CLIENT_ID"`
	ClientSecret string `envconfig:"CLIENT_SECRET"`
	OAuthToken   string `envconfig:"OAUTH_TOKEN"`
}

// FromEnv builds a Client from HELIX_CLIENT_ID, HELIX_CLIENT_SECRET and
// HELIX_OAUTH_TOKEN. Additional options are applied on top.
func FromEnv(opts ...Option) (*Client, error) {
	var env envCredentials
	if err := envconfig.Process("helix", &env); err != nil {
		return nil, &ConfigurationError{Reason: "reading environment: " + err.Error()}
	}

	all := []Option{WithCredentials(env.ClientID, env.ClientSecret)}
	if env.OAuthToken != "" {
		all = append(all, WithUserToken(env.OAuthToken))
	}
	all = append(all, opts...)
	return New(all...)
}
