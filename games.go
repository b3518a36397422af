package helixbridge

import (
	"context"
	"net/url"
)

// GetTopGames lists the most-watched games, most popular first. A pageSize
// of 0 uses the client default.
func (c *Client) GetTopGames(ctx context.Context, pageSize int) (*Cursor[Game], error) {
	return fetchCursor(ctx, c, c.newSpec("games/top", nil, c.pageSizeOr(pageSize)), DecodeRecord[Game])
}

var gamesRules = ruleSet{
	MaxLen: map[string]int{"id": 100, "name": 100},
	OneOf:  []string{"id", "name"},
}

// GetGames looks up games by id or exact name.
func (c *Client) GetGames(ctx context.Context, ids, names []string) ([]Game, error) {
	params := url.Values{}
	setList("games", params, "id", ids)
	setList("games", params, "name", names)
	if err := gamesRules.validate(params); err != nil {
		return nil, err
	}
	return fetchList(ctx, c, c.newSpec("games", params, 0), DecodeRecord[Game])
}
