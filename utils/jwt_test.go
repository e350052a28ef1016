package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(42, "grandma_kim", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "grandma_kim", claims.Username)
	assert.NotEmpty(t, claims.ID, "tokens must carry a jti for revocation")
}

func TestParseToken_RejectsTampered(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(1, "user", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token + "x")
	assert.Error(t, err)
}

func TestParseToken_RejectsExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(1, "user", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestTokenJTIsAreUnique(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	a, err := GenerateToken(1, "user", time.Hour)
	require.NoError(t, err)
	b, err := GenerateToken(1, "user", time.Hour)
	require.NoError(t, err)

	ca, err := ParseToken(a)
	require.NoError(t, err)
	cb, err := ParseToken(b)
	require.NoError(t, err)
	assert.NotEqual(t, ca.ID, cb.ID)
}
