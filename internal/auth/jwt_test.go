package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager("test-secret-key-for-unit-tests-only", 15*time.Minute, 24*time.Hour)
}

func TestManager_GenerateAndVerifyAccessToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateAccessToken(42, "ada@example.com", "Ada")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(token, TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "Ada", claims.Name)
	assert.Equal(t, TokenTypeAccess, claims.Type)
	assert.Equal(t, "parapraxis-api", claims.Issuer)
}

func TestManager_GenerateAndVerifyRefreshToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateRefreshToken(7, "bob@example.com", "Bob")
	require.NoError(t, err)

	claims, err := m.Verify(token, TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, TokenTypeRefresh, claims.Type)
}

func TestManager_Verify_WrongType(t *testing.T) {
	m := newTestManager()

	access, err := m.GenerateAccessToken(1, "a@b.com", "A")
	require.NoError(t, err)

	_, err = m.Verify(access, TokenTypeRefresh)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestManager_Verify_Expired(t *testing.T) {
	m := NewManager("test-secret-key-for-unit-tests-only", -time.Minute, 24*time.Hour)

	token, err := m.GenerateAccessToken(1, "a@b.com", "A")
	require.NoError(t, err)

	_, err = m.Verify(token, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestManager_Verify_WrongSecret(t *testing.T) {
	m := newTestManager()
	other := NewManager("a-completely-different-secret-value", 15*time.Minute, 24*time.Hour)

	token, err := m.GenerateAccessToken(1, "a@b.com", "A")
	require.NoError(t, err)

	_, err = other.Verify(token, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestManager_Verify_WrongIssuer(t *testing.T) {
	m := newTestManager()

	claims := &Claims{
		UserID: 1,
		Type:   TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			Issuer:    "someone-else",
			Audience:  jwt.ClaimStrings{"parapraxis-app"},
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret-key-for-unit-tests-only"))
	require.NoError(t, err)

	_, err = m.Verify(signed, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestManager_Verify_Garbage(t *testing.T) {
	m := newTestManager()

	_, err := m.Verify("not-a-token", TokenTypeAccess)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestManager_Decode_ExpiredStillDecodes(t *testing.T) {
	m := NewManager("test-secret-key-for-unit-tests-only", -time.Minute, -time.Minute)

	token, err := m.GenerateRefreshToken(9, "c@d.com", "C")
	require.NoError(t, err)

	claims, err := m.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, int64(9), claims.UserID)
	assert.True(t, claims.ExpiresAt.Before(time.Now()))
}
