package userservice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := newToken("test-secret", 42, TokenTTL)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	id, err := parseToken("test-secret", token)
	assert.NoError(t, err)
	assert.Equal(t, 42, id)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := newToken("test-secret", 42, TokenTTL)
	assert.NoError(t, err)

	_, err = parseToken("other-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenExpired(t *testing.T) {
	token, err := newToken("test-secret", 42, -time.Minute)
	assert.NoError(t, err)

	_, err = parseToken("test-secret", token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := parseToken("test-secret", "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
