package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// TokenTypeAccess marks short-lived tokens sent in the Authorization header.
	TokenTypeAccess = "access"
	// TokenTypeRefresh marks long-lived tokens delivered via the HTTP-only cookie.
	TokenTypeRefresh = "refresh"

	issuer   = "parapraxis-api"
	audience = "parapraxis-app"
)

var (
	// ErrTokenExpired is returned when a token is well-formed and correctly
	// signed but past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is returned for every other verification failure.
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims represents the JWT claims carried by both token kinds.
type Claims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	jwt.RegisteredClaims
}

// Manager signs and verifies HS256 tokens.
type Manager struct {
	secret        []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

// NewManager creates a token manager with the given secret and expiry durations.
func NewManager(secret string, accessExpiry, refreshExpiry time.Duration) *Manager {
	return &Manager{
		secret:        []byte(secret),
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

// AccessExpiry reports the configured access token lifetime.
func (m *Manager) AccessExpiry() time.Duration { return m.accessExpiry }

// RefreshExpiry reports the configured refresh token lifetime.
func (m *Manager) RefreshExpiry() time.Duration { return m.refreshExpiry }

// GenerateAccessToken creates a signed access token for the given user.
func (m *Manager) GenerateAccessToken(userID int64, email, name string) (string, error) {
	return m.generate(userID, email, name, TokenTypeAccess, m.accessExpiry)
}

// GenerateRefreshToken creates a signed refresh token for the given user.
func (m *Manager) GenerateRefreshToken(userID int64, email, name string) (string, error) {
	return m.generate(userID, email, name, TokenTypeRefresh, m.refreshExpiry)
}

func (m *Manager) generate(userID int64, email, name, tokenType string, expiry time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Name:   name,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{audience},
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", tokenType, err)
	}

	return signed, nil
}

// Verify parses and validates a token, checking signature, expiry, issuer,
// audience, and the expected token type. Expiry is the only failure reported
// distinctly; everything else collapses into ErrTokenInvalid.
func (m *Manager) Verify(tokenString, expectedType string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithAudience(audience))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.Type != expectedType {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// Decode extracts claims without verifying the signature. It is used to
// mirror the expiry of a freshly minted token into its stored record; never
// use it to authenticate.
func (m *Manager) Decode(tokenString string) (*Claims, error) {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(tokenString, &Claims{})
	if err != nil {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
