package helixbridge

import (
	"context"
	"net/http"
	"net/url"
)

// GetChannelInformation returns channel settings for a broadcaster.
func (c *Client) GetChannelInformation(ctx context.Context, broadcasterID string) (*Channel, error) {
	if broadcasterID == "" {
		return nil, &ValidationError{Message: "must provide a broadcaster id"}
	}

	params := url.Values{}
	params.Set("broadcaster_id", broadcasterID)
	channels, err := fetchList(ctx, c, c.newSpec("channels", params, 0), DecodeRecord[Channel])
	if err != nil {
		return nil, err
	}
	if len(channels) == 0 {
		return nil, &NotProvidedError{Field: "channel"}
	}
	return &channels[0], nil
}

// GetBroadcasterSubscriptions lists subscribers of the authenticated
// broadcaster, optionally filtered by user id. Requires the
// channel:read:subscriptions scope.
func (c *Client) GetBroadcasterSubscriptions(ctx context.Context, userIDs []string) (*Cursor[Subscription], error) {
	params, err := c.authedBroadcasterParams(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	return fetchCursor(ctx, c, c.newSpec("subscriptions", params, 0), DecodeRecord[Subscription])
}

var commercialLengths = []int{30, 60, 90, 120, 150, 180}

// StartCommercial starts a commercial on the authenticated channel.
// Requires the channel:edit:commercial scope.
func (c *Client) StartCommercial(ctx context.Context, length int) (*Commercial, error) {
	valid := false
	for _, l := range commercialLengths {
		if length == l {
			valid = true
			break
		}
	}
	if !valid {
		return nil, &ValidationError{Message: "value of length must be 30, 60, 90, 120, 150, or 180"}
	}

	user, err := c.authenticatedUser(ctx)
	if err != nil {
		return nil, err
	}

	spec := &RequestSpec{
		Method: http.MethodPost,
		Path:   "channels/commercial",
		Params: url.Values{},
		Body: map[string]interface{}{
			"broadcaster_id": user.ID,
			"length":         length,
		},
	}
	commercials, err := fetchList(ctx, c, spec, DecodeRecord[Commercial])
	if err != nil {
		return nil, err
	}
	if len(commercials) == 0 {
		return nil, &NotProvidedError{Field: "commercial"}
	}
	return &commercials[0], nil
}

// GetHypeTrainEvents lists recent Hype Train events of a broadcaster; the
// authenticated user is assumed when broadcasterID is empty.
func (c *Client) GetHypeTrainEvents(ctx context.Context, broadcasterID, eventID string, pageSize int) (*Cursor[HypeTrainEvent], error) {
	if broadcasterID == "" {
		user, err := c.authenticatedUser(ctx)
		if err != nil {
			return nil, err
		}
		broadcasterID = user.ID
	}

	params := url.Values{}
	params.Set("broadcaster_id", broadcasterID)
	if eventID != "" {
		params.Set("id", eventID)
	}
	return fetchCursor(ctx, c, c.newSpec("hypetrain/events", params, c.pageSizeOr(pageSize)), DecodeRecord[HypeTrainEvent])
}
