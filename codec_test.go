package helixbridge

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Timestamp_AcceptedLayouts(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"without fractional seconds", `"2020-01-02T03:04:05Z"`},
		{"with fractional seconds", `"2020-01-02T03:04:05.123Z"`},
	}

	want := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &ts))
			assert.Equal(t, want, ts.Truncate(time.Second))
		})
	}
}

func Test_Timestamp_Malformed(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"January 2, 2020"`), &ts))
}

func Test_Timestamp_Empty(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`""`), &ts))
	assert.True(t, ts.IsZero())
}

func Test_DecodeRecord_KnownFields(t *testing.T) {
	raw := json.RawMessage(`{
		"id": "44322889",
		"login": "dallas",
		"display_name": "dallas",
		"view_count": 191836,
		"created_at": "2013-06-03T19:12:02Z"
	}`)

	user, err := DecodeRecord[User](raw)
	require.NoError(t, err)

	assert.Equal(t, "44322889", user.ID)
	assert.Equal(t, "dallas", user.Login)
	assert.Equal(t, 191836, user.ViewCount)
	assert.Equal(t, 2013, user.CreatedAt.Year())
	assert.Nil(t, user.Extra)
}

func Test_DecodeRecord_UnrecognizedFieldsPassThrough(t *testing.T) {
	raw := json.RawMessage(`{"id":"1","login":"foo","custom_field":"x","nested":{"a":1}}`)

	user, err := DecodeRecord[User](raw)
	require.NoError(t, err)

	assert.Equal(t, "foo", user.Login)
	require.NotNil(t, user.Extra)
	assert.Equal(t, "x", user.Extra["custom_field"])
	assert.Equal(t, map[string]interface{}{"a": float64(1)}, user.Extra["nested"])
	assert.NotContains(t, user.Extra, "login", "declared fields never land in Extra")
}

func Test_DecodeRecord_Malformed(t *testing.T) {
	_, err := DecodeRecord[User](json.RawMessage(`{"id":`))
	assert.Error(t, err)
}

func Test_PageEnvelope_PaginatedSignal(t *testing.T) {
	var withPagination, without PageEnvelope
	require.NoError(t, json.Unmarshal([]byte(`{"data":[],"pagination":{}}`), &withPagination))
	require.NoError(t, json.Unmarshal([]byte(`{"data":[]}`), &without))

	assert.True(t, withPagination.Paginated(), "pagination block present, even with no cursor")
	assert.False(t, without.Paginated())
}
