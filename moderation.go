// moderation.go
// -------------
// Moderation listings all operate on the authenticated broadcaster: the
// provider requires broadcaster_id to match the token owner, so these
// methods resolve it from the session token instead of taking an argument.
package helixbridge

import (
	"context"
	"net/url"
)

var authedBroadcasterRules = ruleSet{
	MaxLen: map[string]int{"user_id": 100},
}

func (c *Client) authedBroadcasterParams(ctx context.Context, userIDs []string) (url.Values, error) {
	user, err := c.authenticatedUser(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("broadcaster_id", user.ID)
	setList("moderation", params, "user_id", userIDs)
	if err := authedBroadcasterRules.validate(params); err != nil {
		return nil, err
	}
	return params, nil
}

// GetBannedUsers lists banned and timed-out users in the authenticated
// channel, optionally filtered by user id. Requires the moderation:read
// scope.
func (c *Client) GetBannedUsers(ctx context.Context, userIDs []string) (*Cursor[BannedUser], error) {
	params, err := c.authedBroadcasterParams(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	return fetchCursor(ctx, c, c.newSpec("moderation/banned", params, 0), DecodeRecord[BannedUser])
}

// GetBannedEvents lists ban and un-ban events in the authenticated channel.
// Requires the moderation:read scope.
func (c *Client) GetBannedEvents(ctx context.Context, userIDs []string, pageSize int) (*Cursor[ModerationEvent], error) {
	params, err := c.authedBroadcasterParams(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	return fetchCursor(ctx, c, c.newSpec("moderation/banned/events", params, c.pageSizeOr(pageSize)), DecodeRecord[ModerationEvent])
}

// GetModerators lists moderators of the authenticated channel. Requires the
// moderation:read scope.
func (c *Client) GetModerators(ctx context.Context, userIDs []string) (*Cursor[Moderator], error) {
	params, err := c.authedBroadcasterParams(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	return fetchCursor(ctx, c, c.newSpec("moderation/moderators", params, 0), DecodeRecord[Moderator])
}

// GetModeratorEvents lists moderator-add and moderator-remove events in the
// authenticated channel. Requires the moderation:read scope.
func (c *Client) GetModeratorEvents(ctx context.Context, userIDs []string) (*Cursor[ModerationEvent], error) {
	params, err := c.authedBroadcasterParams(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	return fetchCursor(ctx, c, c.newSpec("moderation/moderators/events", params, 0), DecodeRecord[ModerationEvent])
}
