package helixbridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_New_CredentialRequirements(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr bool
	}{
		{"no credentials at all", nil, true},
		{"client id without secret", []Option{WithCredentials("id", "")}, true},
		{"secret without client id", []Option{WithCredentials("", "secret")}, true},
		{"client id and secret", []Option{WithCredentials("id", "secret")}, false},
		{"oauth token only", []Option{WithUserToken("token")}, false},
		{"client id and oauth token", []Option{WithCredentials("id", ""), WithUserToken("token")}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.opts...)
			if tt.wantErr {
				var confErr *ConfigurationError
				require.ErrorAs(t, err, &confErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, c)
		})
	}
}

func Test_New_Defaults(t *testing.T) {
	c, err := New(WithUserToken("token"))
	require.NoError(t, err)

	assert.Equal(t, defaultBaseURL, c.baseURL)
	assert.Equal(t, defaultPageSize, c.pageSize)
	assert.Equal(t, defaultMaxRetries, c.maxRetries)
}

func Test_FromEnv(t *testing.T) {
	t.Setenv("HELIX_CLIENT_ID", "env-id")
	t.Setenv("HELIX_CLIENT_SECRET", "env-secret")
	t.Setenv("HELIX_OAUTH_TOKEN", "")

	c, err := FromEnv()
	require.NoError(t, err)

	creds := c.Credentials()
	assert.Equal(t, "env-id", creds.ClientID)
	assert.Equal(t, "env-secret", creds.ClientSecret)
}

func Test_FromEnv_MissingCredentials(t *testing.T) {
	t.Setenv("HELIX_CLIENT_ID", "")
	t.Setenv("HELIX_CLIENT_SECRET", "")
	t.Setenv("HELIX_OAUTH_TOKEN", "")

	_, err := FromEnv()
	var confErr *ConfigurationError
	require.ErrorAs(t, err, &confErr)
}

func Test_Credentials_ReturnsCopy(t *testing.T) {
	c, err := New(WithUserToken("token"))
	require.NoError(t, err)

	creds := c.Credentials()
	creds.AccessToken = "mutated"

	assert.Equal(t, "token", c.Credentials().AccessToken)
}
