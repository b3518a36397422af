package helixbridge

import (
	"context"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginList(n int) []string {
	logins := make([]string, n)
	for i := range logins {
		logins[i] = fmt.Sprintf("user%d", i)
	}
	return logins
}

func Test_GetUsers_ListMaximum(t *testing.T) {
	rs := newRecordingServer(t, scriptedResponse{status: 200, body: `{"data":[]}`})
	c := newTestClient(t, rs)

	_, err := c.GetUsers(context.Background(), nil, loginList(100))
	require.NoError(t, err)
	assert.Equal(t, 1, rs.count())

	_, err = c.GetUsers(context.Background(), nil, loginList(101))
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, 1, rs.count(), "validation failures never reach the network")
}

func Test_GetUsers_RequiresIdentifier(t *testing.T) {
	rs := newRecordingServer(t)
	c := newTestClient(t, rs)

	_, err := c.GetUsers(context.Background(), nil, nil)
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, 0, rs.count())
}

func Test_GetUsers_ReturnsTypedRecords(t *testing.T) {
	rs := newRecordingServer(t, scriptedResponse{
		status: 200,
		body:   `{"data":[{"id":"1","login":"foo"}]}`,
	})
	c := newTestClient(t, rs)

	users, err := c.GetUsers(context.Background(), nil, []string{"foo"})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "foo", users[0].Login)
}

func Test_GetUsersFollows_MatchingIDsRejected(t *testing.T) {
	rs := newRecordingServer(t)
	c := newTestClient(t, rs)

	_, err := c.GetUsersFollows(context.Background(), FollowsOptions{FromID: "1", ToID: "1"})
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, 0, rs.count())
}

func Test_GetStreamMarkers_MutuallyExclusiveSelectors(t *testing.T) {
	rs := newRecordingServer(t)
	c := newTestClient(t, rs)

	_, err := c.GetStreamMarkers(context.Background(), MarkersOptions{UserID: "1", VideoID: "2"})
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, 0, rs.count())
}

func Test_GetVideos_EnumConstraints(t *testing.T) {
	rs := newRecordingServer(t)
	c := newTestClient(t, rs)

	_, err := c.GetVideos(context.Background(), VideosOptions{UserID: "1", Period: "decade"})
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Error(), "period")
	assert.Equal(t, 0, rs.count())
}

func Test_GetAllStreamTags_AmpersandJoinQuirk(t *testing.T) {
	rs := newRecordingServer(t, scriptedResponse{
		status: 200,
		body:   `{"data":[],"pagination":{}}`,
	})
	c := newTestClient(t, rs)

	_, err := c.GetAllStreamTags(context.Background(), TagsOptions{TagIDs: []string{"tag1", "tag2"}})
	require.NoError(t, err)

	query := rs.request(0).URL.Query()
	assert.Equal(t, "tag1&tag2", query.Get("tag_id"))
}

func Test_GetStreams_RepeatsListFilters(t *testing.T) {
	rs := newRecordingServer(t, scriptedResponse{
		status: 200,
		body:   `{"data":[],"pagination":{}}`,
	})
	c := newTestClient(t, rs)

	_, err := c.GetStreams(context.Background(), StreamsOptions{
		UserLogins: []string{"foo", "bar"},
		PageSize:   5,
	})
	require.NoError(t, err)

	query := rs.request(0).URL.Query()
	assert.Equal(t, []string{"foo", "bar"}, query["user_login"])
	assert.Equal(t, "5", query.Get("first"))
}

func Test_GetClips_PageSizeQuirk(t *testing.T) {
	rs := newRecordingServer(t, scriptedResponse{
		status: 200,
		body:   `{"data":[],"pagination":{}}`,
	})
	c := newTestClient(t, rs)

	_, err := c.GetClips(context.Background(), ClipsOptions{BroadcasterID: "1", PageSize: 20})
	require.NoError(t, err)

	// This endpoint returns one record fewer than asked, so the client asks
	// for one extra.
	assert.Equal(t, "21", rs.request(0).URL.Query().Get("first"))
}

func Test_GetClips_RequiresSelector(t *testing.T) {
	rs := newRecordingServer(t)
	c := newTestClient(t, rs)

	_, err := c.GetClips(context.Background(), ClipsOptions{})
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, 0, rs.count())
}

func Test_StartCommercial_LengthEnum(t *testing.T) {
	rs := newRecordingServer(t)
	c := newTestClient(t, rs)

	_, err := c.StartCommercial(context.Background(), 45)
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, 0, rs.count())
}

func Test_GetCodeStatus_CodeLimits(t *testing.T) {
	rs := newRecordingServer(t)
	c := newTestClient(t, rs)

	_, err := c.GetCodeStatus(context.Background(), nil, "1")
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)

	_, err = c.GetCodeStatus(context.Background(), loginList(21), "1")
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, 0, rs.count())
}

func Test_GetBitsLeaderboard_PeriodEnum(t *testing.T) {
	rs := newRecordingServer(t)
	c := newTestClient(t, rs)

	_, err := c.GetBitsLeaderboard(context.Background(), BitsLeaderboardOptions{Period: "decade"})
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, 0, rs.count())
}

func Test_RuleSet_Validate(t *testing.T) {
	rules := ruleSet{
		MaxLen:    map[string]int{"id": 2},
		OneOf:     []string{"id", "login"},
		Exclusive: [][]string{{"after", "before"}},
		Enum:      map[string][]string{"period": {"day", "all"}},
	}

	tests := []struct {
		name    string
		params  url.Values
		wantErr bool
	}{
		{"within limits", url.Values{"id": {"1", "2"}}, false},
		{"list over maximum", url.Values{"id": {"1", "2", "3"}}, true},
		{"missing required selector", url.Values{"period": {"day"}}, true},
		{"mutually exclusive pair", url.Values{"id": {"1"}, "after": {"a"}, "before": {"b"}}, true},
		{"bad enum value", url.Values{"id": {"1"}, "period": {"decade"}}, true},
		{"enum absent is fine", url.Values{"login": {"foo"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := rules.validate(tt.params)
			if tt.wantErr {
				var valErr *ValidationError
				require.ErrorAs(t, err, &valErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func Test_GetUser_ByLogin(t *testing.T) {
	rs := newRecordingServer(t, scriptedResponse{
		status: 200,
		body:   `{"data":[{"id":"1","login":"foo","display_name":"Foo"}]}`,
	})
	c := newTestClient(t, rs)

	user, err := c.GetUser(context.Background(), "", "foo")
	require.NoError(t, err)
	assert.Equal(t, "Foo", user.DisplayName)
}
