package payload

import (
	"testing"
	"time"

	"github.com/propertypro/ppai/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestUserProfile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want domain.UserProfile
	}{
		{
			name: "full name",
			body: `{"id":7,"first_name":"Sara","last_name":"Ali","email":"sara@agency.ae","role":"manager"}`,
			want: domain.UserProfile{ID: "7", Name: "Sara Ali", Email: "sara@agency.ae", Role: "manager"},
		},
		{
			name: "first name only and user_id",
			body: `{"user_id":"u-1","first_name":"Sara","email":"sara@agency.ae"}`,
			want: domain.UserProfile{ID: "u-1", Name: "Sara", Email: "sara@agency.ae", Role: "agent"},
		},
		{
			name: "email local part",
			body: `{"id":3,"email":"agent1@dubai-estate.com","role":5}`,
			want: domain.UserProfile{ID: "3", Name: "agent1", Email: "agent1@dubai-estate.com", Role: "agent"},
		},
		{
			name: "empty",
			body: `{}`,
			want: domain.UserProfile{ID: "0", Name: "Agent", Role: "agent"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, UserProfile(gjson.Parse(tt.body)))
		})
	}
}

func TestParseTokenResponse(t *testing.T) {
	t.Parallel()

	response, err := ParseTokenResponse([]byte(`{
		"access_token": "acc",
		"refresh_token": "ref",
		"token_type": "bearer",
		"expires_in": 3600,
		"user": {"id": 1, "first_name": "Sara"}
	}`))
	require.NoError(t, err)
	assert.Equal(t, "acc", response.AccessToken)
	assert.Equal(t, "ref", response.RefreshToken)
	assert.Equal(t, "bearer", response.TokenType)
	assert.Equal(t, time.Hour, response.ExpiresIn)
	assert.Equal(t, "Sara", response.User.Name)

	refreshed, err := ParseTokenResponse([]byte(`{"access_token":"acc2","expires_in":0}`))
	require.NoError(t, err)
	assert.Zero(t, refreshed.ExpiresIn)
	assert.Empty(t, refreshed.RefreshToken)

	_, err = ParseTokenResponse([]byte(`{"token_type":"bearer"}`))
	require.ErrorIs(t, err, ErrMissingAccessToken)
}
