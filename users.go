package helixbridge

import (
	"context"
	"net/http"
	"net/url"
)

var usersRules = ruleSet{
	MaxLen: map[string]int{"id": 100, "login": 100},
	OneOf:  []string{"id", "login"},
}

// GetUsers gets information about one or more users by id or login name.
func (c *Client) GetUsers(ctx context.Context, ids, logins []string) ([]User, error) {
	params := url.Values{}
	setList("users", params, "id", ids)
	setList("users", params, "login", logins)
	if err := usersRules.validate(params); err != nil {
		return nil, err
	}
	return fetchList(ctx, c, c.newSpec("users", params, 0), DecodeRecord[User])
}

// GetUser gets a single user. With no id or login it resolves the user the
// session's OAuth token belongs to.
func (c *Client) GetUser(ctx context.Context, id, login string) (*User, error) {
	if id == "" && login == "" {
		return c.authenticatedUser(ctx)
	}

	var ids, logins []string
	if id != "" {
		ids = append(ids, id)
	}
	if login != "" {
		logins = append(logins, login)
	}
	users, err := c.GetUsers(ctx, ids, logins)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, &NotProvidedError{Field: "user"}
	}
	return &users[0], nil
}

// authenticatedUser validates the session token and looks up its owner.
func (c *Client) authenticatedUser(ctx context.Context) (*User, error) {
	c.mu.Lock()
	token := c.creds.AccessToken
	c.mu.Unlock()
	if token == "" {
		return nil, &ValidationError{Message: "must provide a user id, a login, or authenticate with a user token"}
	}

	claims, err := c.tokens.Validate(ctx, token)
	if err != nil {
		return nil, err
	}
	if claims.Login == "" {
		return nil, &ValidationError{Message: "token does not belong to a user"}
	}
	return c.GetUser(ctx, "", claims.Login)
}

// FollowsOptions filters the users/follows listing. At least one of FromID
// and ToID is required and they must differ.
type FollowsOptions struct {
	FromID   string
	ToID     string
	PageSize int
}

var followsRules = ruleSet{
	OneOf: []string{"from_id", "to_id"},
}

// GetUsersFollows lists follow relationships between two users.
func (c *Client) GetUsersFollows(ctx context.Context, opts FollowsOptions) (*Cursor[Follow], error) {
	if opts.FromID != "" && opts.FromID == opts.ToID {
		return nil, &ValidationError{Message: "value of to_id cannot match from_id"}
	}

	params := url.Values{}
	if opts.FromID != "" {
		params.Set("from_id", opts.FromID)
	}
	if opts.ToID != "" {
		params.Set("to_id", opts.ToID)
	}
	if err := followsRules.validate(params); err != nil {
		return nil, err
	}
	return fetchCursor(ctx, c, c.newSpec("users/follows", params, c.pageSizeOr(opts.PageSize)), DecodeRecord[Follow])
}

// CreateUserFollows adds from_id to the followers of to_id. Requires a user
// token with the user:edit:follows scope.
func (c *Client) CreateUserFollows(ctx context.Context, fromID, toID string, allowNotifications bool) error {
	if fromID == "" || toID == "" {
		return &ValidationError{Message: "must include both from_id and to_id"}
	}

	params := url.Values{}
	params.Set("from_id", fromID)
	params.Set("to_id", toID)
	if allowNotifications {
		params.Set("allow_notifications", "true")
	}
	spec := &RequestSpec{Method: http.MethodPost, Path: "users/follows", Params: params}
	_, err := c.executor.Execute(ctx, spec)
	return err
}

// GetUserExtensions lists all extensions of the authenticated user, active
// and inactive. Requires the user:read:broadcast scope.
func (c *Client) GetUserExtensions(ctx context.Context) ([]Extension, error) {
	return fetchList(ctx, c, c.newSpec("users/extensions/list", nil, 0), DecodeRecord[Extension])
}

// GetUserActiveExtensions lists the active extensions of a user. With an
// empty userID the authenticated user is assumed.
func (c *Client) GetUserActiveExtensions(ctx context.Context, userID string) ([]Extension, error) {
	if userID == "" {
		user, err := c.authenticatedUser(ctx)
		if err != nil {
			return nil, err
		}
		userID = user.ID
	}

	params := url.Values{}
	params.Set("user_id", userID)
	return fetchList(ctx, c, c.newSpec("users/extensions", params, 0), DecodeRecord[Extension])
}

// pageSizeOr falls back to the client default page size.
func (c *Client) pageSizeOr(n int) int {
	if n > 0 {
		return n
	}
	return c.pageSize
}
