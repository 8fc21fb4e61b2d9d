// Package token issues and verifies the signed tokens carried by the session cookie.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Manager defines the interface for session token generation and verification.
type Manager interface {
	// GenerateSessionToken creates a signed token referencing the given session.
	GenerateSessionToken(sessionID string, userID uint) (string, error)
	// ParseSessionToken verifies a token and returns the session ID it carries.
	ParseSessionToken(token string) (string, error)
}

// manager implements the Manager interface with HS256-signed JWTs.
type manager struct {
	secret     []byte
	expiration time.Duration
}

// NewManager creates a new token manager with the provided secret and expiration duration.
func NewManager(secret string, expiration time.Duration) Manager {
	return &manager{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// GenerateSessionToken creates a signed token with standard claims plus the session ID.
func (m *manager) GenerateSessionToken(sessionID string, userID uint) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID,
		"sub": userID,
		"exp": time.Now().Add(m.expiration).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// ParseSessionToken verifies the signature and expiry, then extracts the sid claim.
func (m *manager) ParseSessionToken(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only HMAC allowed)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid session token claims")
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", fmt.Errorf("session token missing sid claim")
	}
	return sid, nil
}
