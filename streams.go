package helixbridge

import (
	"context"
	"net/http"
	"net/url"
)

// StreamsOptions filters the streams listing. All list filters cap at 100
// values.
type StreamsOptions struct {
	UserIDs    []string
	UserLogins []string
	GameIDs    []string
	Languages  []string
	PageSize   int
}

var streamsRules = ruleSet{
	MaxLen: map[string]int{
		"user_id":    100,
		"user_login": 100,
		"game_id":    100,
		"language":   100,
	},
}

// GetStreams lists active streams sorted by viewer count, descending.
func (c *Client) GetStreams(ctx context.Context, opts StreamsOptions) (*Cursor[Stream], error) {
	params := url.Values{}
	setList("streams", params, "user_id", opts.UserIDs)
	setList("streams", params, "user_login", opts.UserLogins)
	setList("streams", params, "game_id", opts.GameIDs)
	setList("streams", params, "language", opts.Languages)
	if err := streamsRules.validate(params); err != nil {
		return nil, err
	}
	return fetchCursor(ctx, c, c.newSpec("streams", params, c.pageSizeOr(opts.PageSize)), DecodeRecord[Stream])
}

// GetStreamKey returns the stream key of the authenticated channel. Requires
// the channel:read:stream_key scope.
func (c *Client) GetStreamKey(ctx context.Context) (*StreamKey, error) {
	user, err := c.authenticatedUser(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("broadcaster_id", user.ID)
	keys, err := fetchList(ctx, c, c.newSpec("streams/key", params, 0), DecodeRecord[StreamKey])
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, &NotProvidedError{Field: "stream_key"}
	}
	return &keys[0], nil
}

// MarkersOptions selects whose markers to list: exactly one of UserID and
// VideoID.
type MarkersOptions struct {
	UserID   string
	VideoID  string
	PageSize int
}

var markersRules = ruleSet{
	OneOf:     []string{"user_id", "video_id"},
	Exclusive: [][]string{{"user_id", "video_id"}},
}

// GetStreamMarkers lists markers for a user's most recent stream or for a
// specific video. Requires the user:read:broadcast scope.
func (c *Client) GetStreamMarkers(ctx context.Context, opts MarkersOptions) (*Cursor[StreamMarker], error) {
	params := url.Values{}
	if opts.UserID != "" {
		params.Set("user_id", opts.UserID)
	}
	if opts.VideoID != "" {
		params.Set("video_id", opts.VideoID)
	}
	if err := markersRules.validate(params); err != nil {
		return nil, err
	}
	return fetchCursor(ctx, c, c.newSpec("streams/markers", params, c.pageSizeOr(opts.PageSize)), DecodeRecord[StreamMarker])
}

// CreateStreamMarker drops a marker in the live stream of userID; the
// authenticated user is assumed when empty. Requires the
// user:edit:broadcast scope.
func (c *Client) CreateStreamMarker(ctx context.Context, userID, description string) (*StreamMarker, error) {
	if userID == "" {
		user, err := c.authenticatedUser(ctx)
		if err != nil {
			return nil, err
		}
		userID = user.ID
	}

	payload := map[string]interface{}{"user_id": userID}
	if description != "" {
		payload["description"] = description
	}
	spec := &RequestSpec{Method: http.MethodPost, Path: "streams/markers", Params: url.Values{}, Body: payload}
	markers, err := fetchList(ctx, c, spec, DecodeRecord[StreamMarker])
	if err != nil {
		return nil, err
	}
	if len(markers) == 0 {
		return nil, &NotProvidedError{Field: "marker"}
	}
	return &markers[0], nil
}

// GetStreamTags lists the tags set on a channel.
func (c *Client) GetStreamTags(ctx context.Context, broadcasterID string) ([]StreamTag, error) {
	if broadcasterID == "" {
		return nil, &ValidationError{Message: "must provide a broadcaster id"}
	}

	params := url.Values{}
	params.Set("broadcaster_id", broadcasterID)
	return fetchList(ctx, c, c.newSpec("streams/tags", params, 0), DecodeRecord[StreamTag])
}

// TagsOptions filters the catalog of all stream tags.
type TagsOptions struct {
	TagIDs   []string
	PageSize int
}

// GetAllStreamTags lists every stream tag defined by the provider. Tag ids
// are joined with ampersands, an encoding quirk specific to this endpoint,
// so the length cap is checked before the values collapse into one
// parameter.
func (c *Client) GetAllStreamTags(ctx context.Context, opts TagsOptions) (*Cursor[StreamTag], error) {
	if len(opts.TagIDs) > 100 {
		return nil, &ValidationError{Message: "a maximum of 100 tag_id values may be provided"}
	}

	params := url.Values{}
	setList("tags/streams", params, "tag_id", opts.TagIDs)
	return fetchCursor(ctx, c, c.newSpec("tags/streams", params, c.pageSizeOr(opts.PageSize)), DecodeRecord[StreamTag])
}
