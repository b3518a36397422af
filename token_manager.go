// token_manager.go
// ----------------
// The TokenManager owns the credential state of a Client: it exchanges a
// client id + secret for an app access token via the client-credentials
// grant, validates tokens against the provider's introspection endpoint, and
// mutates the shared Credentials in place. Callers must not assume a previous
// token string remains valid after Obtain or Validate.
package helixbridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/streambridge/helix-bridge/store"
)

// tokenExpiryMargin forces proactive renewal: a token is considered expired
// five minutes before the server-declared lifetime ends.
const tokenExpiryMargin = 5 * time.Minute

// TokenClaims are the identity claims returned by the token introspection
// endpoint.
type TokenClaims struct {
	ClientID  string   `json:"client_id"`
	Login     string   `json:"login"`
	UserID    string   `json:"user_id"`
	Scopes    []string `json:"scopes"`
	ExpiresIn int      `json:"expires_in"`
}

type TokenManager struct {
	client *Client
}

func newTokenManager(c *Client) *TokenManager {
	return &TokenManager{client: c}
}

// Obtain returns a usable access token. An existing unexpired token is
// returned unchanged. Otherwise the token store is consulted, and finally the
// client-credentials grant is run against the auth endpoint. The shared
// credential state is updated in place on every new token.
func (tm *TokenManager) Obtain(ctx context.Context) (string, error) {
	c := tm.client

	c.mu.Lock()
	if tok := c.creds.AccessToken; tok != "" && (c.creds.Expiry.IsZero() || c.now().Before(c.creds.Expiry)) {
		c.mu.Unlock()
		return tok, nil
	}
	clientID, clientSecret := c.creds.ClientID, c.creds.ClientSecret
	c.mu.Unlock()

	if clientID == "" || clientSecret == "" {
		return "", &AuthError{Message: "no usable token and no client credentials to exchange"}
	}

	if cached, err := tm.fromStore(ctx, clientID); err == nil && cached != "" {
		return cached, nil
	}

	cfg := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     c.authURL,
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	tok, err := cfg.Token(context.WithValue(ctx, oauth2.HTTPClient, c.httpClient))
	if err != nil {
		return "", &AuthError{Message: "token exchange failed", Err: err}
	}
	if tok.AccessToken == "" {
		return "", &AuthError{Message: "token exchange response carried no access token"}
	}

	expiry := tok.Expiry
	if !expiry.IsZero() {
		expiry = expiry.Add(-tokenExpiryMargin)
	}

	c.mu.Lock()
	c.creds.AccessToken = tok.AccessToken
	c.creds.RefreshToken = tok.RefreshToken
	c.creds.Expiry = expiry
	if scope, ok := tok.Extra("scope").(string); ok && scope != "" {
		c.creds.Scopes = splitScopes(scope)
	}
	c.mu.Unlock()

	c.logger.Debug().Time("expiry", expiry).Msg("obtained app access token")

	if c.tokenStore != nil {
		if err := c.tokenStore.Put(ctx, clientID, &store.Token{AccessToken: tok.AccessToken, Expiry: expiry}); err != nil {
			c.logger.Warn().Err(err).Msg("failed to cache access token")
		}
	}
	return tok.AccessToken, nil
}

// fromStore loads a previously cached token, adopting it into the shared
// credential state when still valid.
func (tm *TokenManager) fromStore(ctx context.Context, clientID string) (string, error) {
	c := tm.client
	if c.tokenStore == nil {
		return "", nil
	}
	cached, err := c.tokenStore.Get(ctx, clientID)
	if err != nil || cached == nil {
		return "", err
	}
	if !cached.Expiry.IsZero() && !c.now().Before(cached.Expiry) {
		return "", nil
	}
	c.mu.Lock()
	c.creds.AccessToken = cached.AccessToken
	c.creds.Expiry = cached.Expiry
	c.mu.Unlock()
	return cached.AccessToken, nil
}

// Validate calls the token introspection endpoint and returns the decoded
// identity claims. The granted scopes (and the client id, when the client was
// constructed from a bare user token) are recorded on the shared credential
// state. A rejected token fails with *AuthError.
func (tm *TokenManager) Validate(ctx context.Context, token string) (*TokenClaims, error) {
	c := tm.client

	spec := &RequestSpec{
		Method:   http.MethodGet,
		BaseURL:  c.validateURL,
		AuthCall: true,
		Headers:  map[string]string{"Authorization": "Bearer " + token},
	}
	body, err := c.executor.executeRaw(ctx, spec)
	if err != nil {
		var httpErr *HTTPError
		if errors.As(err, &httpErr) && (httpErr.StatusCode == http.StatusUnauthorized || httpErr.StatusCode == http.StatusForbidden) {
			return nil, &AuthError{Message: "token validation rejected", Err: err}
		}
		return nil, err
	}

	var claims TokenClaims
	if err := json.Unmarshal(body, &claims); err != nil {
		return nil, &AuthError{Message: "malformed token validation response", Err: err}
	}

	c.mu.Lock()
	c.creds.Scopes = claims.Scopes
	if c.creds.ClientID == "" {
		c.creds.ClientID = claims.ClientID
	}
	c.mu.Unlock()

	return &claims, nil
}

// DecodeIDToken extracts the claims of an OIDC id_token returned by grants
// that requested openid scopes. The signature is not verified here; callers
// that need verification must check the token against the provider's JWKS.
func DecodeIDToken(idToken string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		return nil, fmt.Errorf("decoding id_token: %w", err)
	}
	return claims, nil
}

// splitScopes parses the scope string of a token response. Providers vary
// between space- and plus-separated scope lists.
func splitScopes(scope string) []string {
	return strings.FieldsFunc(scope, func(r rune) bool {
		return r == ' ' || r == '+'
	})
}
