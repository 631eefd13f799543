// File: internal/auth/token_test.go
package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateSessionToken("session-123", secret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sessionID, err := ValidateSessionToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "session-123", sessionID)
}

func TestSessionTokenRejectsEmptyID(t *testing.T) {
	_, err := GenerateSessionToken("", []byte("test-secret"))
	assert.Error(t, err)
}

func TestSessionTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateSessionToken("session-123", []byte("secret-one"))
	require.NoError(t, err)

	_, err = ValidateSessionToken(token, []byte("secret-two"))
	assert.Error(t, err)
}

func TestSessionTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateSessionToken("not-a-token", []byte("test-secret"))
	assert.Error(t, err)
}
