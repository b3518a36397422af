// client.go
// ---------
// The Client is the session object of the library and the main entry point.
// It owns the credential state, the shared RateLimiter, the RequestExecutor
// and the TokenManager; every request issued through the same Client shares
// that state, approximating the single server-side quota and credential set
// per API key.
package helixbridge

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/streambridge/helix-bridge/store"
)

const (
	defaultBaseURL     = "https://api.twitch.tv/helix"
	defaultAuthURL     = "https://id.twitch.tv/oauth2/token"
	defaultValidateURL = "https://id.twitch.tv/oauth2/validate"

	defaultPageSize   = 20
	defaultMaxRetries = 3
)

// Credentials holds the mutable credential state of one session. The access
// token, scope list and expiry are rewritten in place whenever a new token is
// obtained.
type Credentials struct {
	ClientID     string
	ClientSecret string
	AccessToken  string
	RefreshToken string
	Scopes       []string
	Expiry       time.Time
}

type Client struct {
	mu    sync.Mutex
	creds Credentials

	baseURL     string
	authURL     string
	validateURL string

	pageSize    int
	maxRetries  int
	baseBackoff time.Duration

	httpClient *http.Client
	logger     zerolog.Logger
	tokenStore store.TokenStore
	now        func() time.Time

	limiter  *RateLimiter
	executor *RequestExecutor
	tokens   *TokenManager
}

// New builds a Client from the supplied options. Construction fails with
// *ConfigurationError unless either a client id + secret pair or an OAuth
// token is supplied.
func New(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:     defaultBaseURL,
		authURL:     defaultAuthURL,
		validateURL: defaultValidateURL,
		pageSize:    defaultPageSize,
		maxRetries:  defaultMaxRetries,
		baseBackoff: time.Second,
		httpClient:  http.DefaultClient,
		logger:      zerolog.Nop(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	if (c.creds.ClientID == "" || c.creds.ClientSecret == "") && c.creds.AccessToken == "" {
		return nil, &ConfigurationError{
			Reason: "must provide both a client id and client secret, or an OAuth token",
		}
	}

	c.limiter = NewRateLimiter(c.logger)
	c.executor = newRequestExecutor(c)
	c.tokens = newTokenManager(c)
	return c, nil
}

// Tokens exposes the session's token manager.
func (c *Client) Tokens() *TokenManager {
	return c.tokens
}

// RateLimit returns the current known rate-limit state of the session.
func (c *Client) RateLimit() RateLimitSnapshot {
	return c.limiter.Snapshot()
}

// Credentials returns a copy of the current credential state.
func (c *Client) Credentials() Credentials {
	c.mu.Lock()
	defer c.mu.Unlock()
	creds := c.creds
	creds.Scopes = append([]string(nil), c.creds.Scopes...)
	return creds
}

// Execute issues an arbitrary RequestSpec through the session's executor.
// Per-resource methods are thin wrappers over this entry point.
func (c *Client) Execute(ctx context.Context, spec *RequestSpec) (*PageEnvelope, error) {
	return c.executor.Execute(ctx, spec)
}
