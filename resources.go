// resources.go
// ------------
// Typed records produced by the default codec. Each struct names the fields
// the provider documents today; anything else a response carries lands in
// the Extra map untouched.
package helixbridge

// User is a Twitch user account.
type User struct {
	ID              string    `json:"id"`
	Login           string    `json:"login"`
	DisplayName     string    `json:"display_name"`
	Type            string    `json:"type"`
	BroadcasterType string    `json:"broadcaster_type"`
	Description     string    `json:"description"`
	ProfileImageURL string    `json:"profile_image_url"`
	OfflineImageURL string    `json:"offline_image_url"`
	ViewCount       int       `json:"view_count"`
	Email           string    `json:"email"`
	CreatedAt       Timestamp `json:"created_at"`

	Extra map[string]interface{} `json:"-"`
}

// Stream is an active broadcast.
type Stream struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	UserLogin    string    `json:"user_login"`
	UserName     string    `json:"user_name"`
	GameID       string    `json:"game_id"`
	GameName     string    `json:"game_name"`
	Type         string    `json:"type"`
	Title        string    `json:"title"`
	ViewerCount  int       `json:"viewer_count"`
	StartedAt    Timestamp `json:"started_at"`
	Language     string    `json:"language"`
	ThumbnailURL string    `json:"thumbnail_url"`
	TagIDs       []string  `json:"tag_ids"`
	IsMature     bool      `json:"is_mature"`

	Extra map[string]interface{} `json:"-"`
}

type Clip struct {
	ID              string    `json:"id"`
	URL             string    `json:"url"`
	EmbedURL        string    `json:"embed_url"`
	BroadcasterID   string    `json:"broadcaster_id"`
	BroadcasterName string    `json:"broadcaster_name"`
	CreatorID       string    `json:"creator_id"`
	CreatorName     string    `json:"creator_name"`
	VideoID         string    `json:"video_id"`
	GameID          string    `json:"game_id"`
	Language        string    `json:"language"`
	Title           string    `json:"title"`
	ViewCount       int       `json:"view_count"`
	CreatedAt       Timestamp `json:"created_at"`
	ThumbnailURL    string    `json:"thumbnail_url"`
	Duration        float64   `json:"duration"`

	Extra map[string]interface{} `json:"-"`
}

type Game struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BoxArtURL string `json:"box_art_url"`

	Extra map[string]interface{} `json:"-"`
}

type Video struct {
	ID           string    `json:"id"`
	StreamID     string    `json:"stream_id"`
	UserID       string    `json:"user_id"`
	UserLogin    string    `json:"user_login"`
	UserName     string    `json:"user_name"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	CreatedAt    Timestamp `json:"created_at"`
	PublishedAt  Timestamp `json:"published_at"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Viewable     string    `json:"viewable"`
	ViewCount    int       `json:"view_count"`
	Language     string    `json:"language"`
	Type         string    `json:"type"`
	Duration     string    `json:"duration"`

	Extra map[string]interface{} `json:"-"`
}

// Follow is one follow relationship between two users.
type Follow struct {
	FromID     string    `json:"from_id"`
	FromLogin  string    `json:"from_login"`
	FromName   string    `json:"from_name"`
	ToID       string    `json:"to_id"`
	ToLogin    string    `json:"to_login"`
	ToName     string    `json:"to_name"`
	FollowedAt Timestamp `json:"followed_at"`

	Extra map[string]interface{} `json:"-"`
}

type Subscription struct {
	BroadcasterID    string `json:"broadcaster_id"`
	BroadcasterLogin string `json:"broadcaster_login"`
	BroadcasterName  string `json:"broadcaster_name"`
	GifterID         string `json:"gifter_id"`
	GifterLogin      string `json:"gifter_login"`
	GifterName       string `json:"gifter_name"`
	IsGift           bool   `json:"is_gift"`
	PlanName         string `json:"plan_name"`
	Tier             string `json:"tier"`
	UserID           string `json:"user_id"`
	UserLogin        string `json:"user_login"`
	UserName         string `json:"user_name"`

	Extra map[string]interface{} `json:"-"`
}

type Channel struct {
	BroadcasterID       string `json:"broadcaster_id"`
	BroadcasterLogin    string `json:"broadcaster_login"`
	BroadcasterName     string `json:"broadcaster_name"`
	BroadcasterLanguage string `json:"broadcaster_language"`
	GameID              string `json:"game_id"`
	GameName            string `json:"game_name"`
	Title               string `json:"title"`
	Delay               int    `json:"delay"`

	Extra map[string]interface{} `json:"-"`
}

type StreamKey struct {
	StreamKey string `json:"stream_key"`

	Extra map[string]interface{} `json:"-"`
}

type StreamMarker struct {
	ID              string    `json:"id"`
	CreatedAt       Timestamp `json:"created_at"`
	Description     string    `json:"description"`
	PositionSeconds int       `json:"position_seconds"`
	URL             string    `json:"URL"`

	Extra map[string]interface{} `json:"-"`
}

type StreamTag struct {
	TagID                    string            `json:"tag_id"`
	IsAuto                   bool              `json:"is_auto"`
	LocalizationNames        map[string]string `json:"localization_names"`
	LocalizationDescriptions map[string]string `json:"localization_descriptions"`

	Extra map[string]interface{} `json:"-"`
}

type CheermoteTier struct {
	MinBits        int    `json:"min_bits"`
	ID             string `json:"id"`
	Color          string `json:"color"`
	CanCheer       bool   `json:"can_cheer"`
	ShowInBitsCard bool   `json:"show_in_bits_card"`
}

type Cheermote struct {
	Prefix       string          `json:"prefix"`
	Tiers        []CheermoteTier `json:"tiers"`
	Type         string          `json:"type"`
	Order        int             `json:"order"`
	LastUpdated  Timestamp       `json:"last_updated"`
	IsCharitable bool            `json:"is_charitable"`

	Extra map[string]interface{} `json:"-"`
}

// BitsLeaderboardEntry is one ranked row of the Bits leaderboard.
type BitsLeaderboardEntry struct {
	UserID    string `json:"user_id"`
	UserLogin string `json:"user_login"`
	UserName  string `json:"user_name"`
	Rank      int    `json:"rank"`
	Score     int    `json:"score"`

	Extra map[string]interface{} `json:"-"`
}

type BannedUser struct {
	UserID    string    `json:"user_id"`
	UserLogin string    `json:"user_login"`
	UserName  string    `json:"user_name"`
	ExpiresAt Timestamp `json:"expires_at"`

	Extra map[string]interface{} `json:"-"`
}

// ModerationEvent is a ban, un-ban, moderator-add or moderator-remove event.
type ModerationEvent struct {
	ID             string                 `json:"id"`
	EventType      string                 `json:"event_type"`
	EventTimestamp Timestamp              `json:"event_timestamp"`
	Version        string                 `json:"version"`
	EventData      map[string]interface{} `json:"event_data"`

	Extra map[string]interface{} `json:"-"`
}

type Moderator struct {
	UserID    string `json:"user_id"`
	UserLogin string `json:"user_login"`
	UserName  string `json:"user_name"`

	Extra map[string]interface{} `json:"-"`
}

type HypeTrainEvent struct {
	ID             string                 `json:"id"`
	EventType      string                 `json:"event_type"`
	EventTimestamp Timestamp              `json:"event_timestamp"`
	Version        string                 `json:"version"`
	EventData      map[string]interface{} `json:"event_data"`

	Extra map[string]interface{} `json:"-"`
}

type Extension struct {
	ID          string   `json:"id"`
	Version     string   `json:"version"`
	Name        string   `json:"name"`
	CanActivate bool     `json:"can_activate"`
	Type        []string `json:"type"`

	Extra map[string]interface{} `json:"-"`
}

type Commercial struct {
	Length     int    `json:"length"`
	Message    string `json:"message"`
	RetryAfter int    `json:"retry_after"`

	Extra map[string]interface{} `json:"-"`
}

type CodeStatus struct {
	Code   string `json:"code"`
	Status string `json:"status"`

	Extra map[string]interface{} `json:"-"`
}
