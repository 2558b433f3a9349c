// Package security issues and verifies the gateway's own admin session
// tokens. The record store's opaque token stays server-side; the browser
// only ever holds one of these JWTs.
package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type SessionClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

type TokenManager struct {
	signingKey []byte
	ttl        time.Duration
}

func NewTokenManager(signingKey string, ttl time.Duration) *TokenManager {
	return &TokenManager{signingKey: []byte(signingKey), ttl: ttl}
}

func (m *TokenManager) TTL() time.Duration { return m.ttl }

// Issue mints an HS256 session token. The returned jti keys the server-side
// session record.
func (m *TokenManager) Issue(username string) (token string, jti string, err error) {
	now := time.Now()
	jti = uuid.NewString()
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Username: username,
	}
	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.signingKey)
	if err != nil {
		return "", "", err
	}
	return token, jti, nil
}

// Parse verifies signature and expiry and returns the claims.
func (m *TokenManager) Parse(tokenStr string) (SessionClaims, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return m.signingKey, nil
	})
	if err != nil {
		return SessionClaims{}, err
	}
	claims, ok := tok.Claims.(*SessionClaims)
	if !ok || !tok.Valid {
		return SessionClaims{}, fmt.Errorf("invalid token")
	}
	if claims.Username == "" {
		claims.Username = claims.Subject
	}
	if claims.ID == "" {
		return SessionClaims{}, fmt.Errorf("token missing jti")
	}
	return *claims, nil
}
