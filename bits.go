package helixbridge

import (
	"context"
	"net/url"
	"strconv"
)

// GetCheermotes lists available Cheermotes, optionally scoped to a
// broadcaster's custom set; the authenticated user is assumed when
// broadcasterID is empty and a user token is present.
func (c *Client) GetCheermotes(ctx context.Context, broadcasterID string) ([]Cheermote, error) {
	params := url.Values{}
	if broadcasterID != "" {
		params.Set("broadcaster_id", broadcasterID)
	}
	return fetchList(ctx, c, c.newSpec("bits/cheermotes", params, 0), DecodeRecord[Cheermote])
}

// BitsLeaderboardOptions shape the Bits leaderboard query.
type BitsLeaderboardOptions struct {
	Count     int    // max 100, provider default 10
	Period    string // day, week, month, year, all
	StartedAt string // RFC3339, ignored when Period is all
	UserID    string
}

var leaderboardRules = ruleSet{
	Enum: map[string][]string{
		"period": {"day", "week", "month", "year", "all"},
	},
}

// GetBitsLeaderboard returns the ranked Bits leaderboard of the
// authenticated broadcaster. Requires the bits:read scope.
func (c *Client) GetBitsLeaderboard(ctx context.Context, opts BitsLeaderboardOptions) ([]BitsLeaderboardEntry, error) {
	if opts.Count > 100 {
		return nil, &ValidationError{Message: "value of count must be less than or equal to 100"}
	}

	params := url.Values{}
	if opts.Count > 0 {
		params.Set("count", strconv.Itoa(opts.Count))
	}
	if opts.Period != "" {
		params.Set("period", opts.Period)
	}
	if opts.StartedAt != "" {
		params.Set("started_at", opts.StartedAt)
	}
	if opts.UserID != "" {
		params.Set("user_id", opts.UserID)
	}
	if err := leaderboardRules.validate(params); err != nil {
		return nil, err
	}
	return fetchList(ctx, c, c.newSpec("bits/leaderboard", params, 0), DecodeRecord[BitsLeaderboardEntry])
}

var codesRules = ruleSet{
	MaxLen: map[string]int{"code": 20},
	OneOf:  []string{"code"},
}

// GetCodeStatus reports the redemption status of 1 to 20 entitlement codes.
func (c *Client) GetCodeStatus(ctx context.Context, codes []string, userID string) ([]CodeStatus, error) {
	params := url.Values{}
	setList("entitlements/codes", params, "code", codes)
	if userID != "" {
		params.Set("user_id", userID)
	}
	if err := codesRules.validate(params); err != nil {
		return nil, err
	}
	return fetchList(ctx, c, c.newSpec("entitlements/codes", params, 0), DecodeRecord[CodeStatus])
}
