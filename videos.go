package helixbridge

import (
	"context"
	"net/url"
)

// VideosOptions filters the videos listing. At least one of VideoIDs,
// UserID and GameID is required.
type VideosOptions struct {
	VideoIDs []string
	UserID   string
	GameID   string
	Language string
	Period   string // all, day, week, month
	SortBy   string // time, trending, views
	Type     string // all, upload, archive, highlight
	PageSize int
}

var videosRules = ruleSet{
	MaxLen: map[string]int{"id": 100},
	OneOf:  []string{"id", "user_id", "game_id"},
	Enum: map[string][]string{
		"period": {"all", "day", "week", "month"},
		"sort":   {"time", "trending", "views"},
		"type":   {"all", "upload", "archive", "highlight"},
	},
}

// GetVideos lists videos by id, user, or game.
func (c *Client) GetVideos(ctx context.Context, opts VideosOptions) (*Cursor[Video], error) {
	params := url.Values{}
	setList("videos", params, "id", opts.VideoIDs)
	if opts.UserID != "" {
		params.Set("user_id", opts.UserID)
	}
	if opts.GameID != "" {
		params.Set("game_id", opts.GameID)
	}
	if opts.Language != "" {
		params.Set("language", opts.Language)
	}
	if opts.Period != "" {
		params.Set("period", opts.Period)
	}
	if opts.SortBy != "" {
		params.Set("sort", opts.SortBy)
	}
	if opts.Type != "" {
		params.Set("type", opts.Type)
	}
	if err := videosRules.validate(params); err != nil {
		return nil, err
	}
	return fetchCursor(ctx, c, c.newSpec("videos", params, c.pageSizeOr(opts.PageSize)), DecodeRecord[Video])
}
