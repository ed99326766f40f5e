package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/chatline-go/apperror"
	"github.com/user/chatline-go/config"
)

func newTestCodec(ttl time.Duration) *TokenCodec {
	return NewTokenCodec(config.AuthConfig{
		JWTSecret:     "test-secret",
		TokenDuration: ttl,
	})
}

func TestTokenRoundTrip(t *testing.T) {
	codec := newTestCodec(time.Hour)
	userID := uuid.New()

	token, err := codec.Issue(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestTokenExpired(t *testing.T) {
	codec := newTestCodec(-time.Minute)

	token, err := codec.Issue(uuid.New())
	require.NoError(t, err)

	_, err = codec.Verify(token)
	require.Error(t, err)
	assert.True(t, apperror.IsAuthError(err))

	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Equal(t, "token has expired", appErr.Message)
}

func TestTokenTampered(t *testing.T) {
	codec := newTestCodec(time.Hour)

	token, err := codec.Issue(uuid.New())
	require.NoError(t, err)

	// Flip a character in the signature segment.
	tampered := token[:len(token)-2] + "xx"
	_, err = codec.Verify(tampered)
	require.Error(t, err)
	assert.True(t, apperror.IsAuthError(err))
}

func TestTokenWrongSecret(t *testing.T) {
	codec := newTestCodec(time.Hour)
	other := NewTokenCodec(config.AuthConfig{JWTSecret: "other-secret", TokenDuration: time.Hour})

	token, err := codec.Issue(uuid.New())
	require.NoError(t, err)

	_, err = other.Verify(token)
	require.Error(t, err)
	assert.True(t, apperror.IsAuthError(err))
}

func TestTokenMalformed(t *testing.T) {
	codec := newTestCodec(time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := codec.Verify(token)
		require.Error(t, err, "token %q should not verify", token)
		assert.True(t, apperror.IsAuthError(err))
	}
}
