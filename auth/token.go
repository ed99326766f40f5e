package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/user/chatline-go/apperror"
	"github.com/user/chatline-go/config"
)

const tokenIssuer = "chatline"

// TokenCodec issues and verifies signed, expiring session tokens. Tokens
// are stateless: verification needs only the server secret and the clock,
// nothing is stored server-side.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec creates a TokenCodec from the auth configuration.
func NewTokenCodec(cfg config.AuthConfig) *TokenCodec {
	return &TokenCodec{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenDuration,
	}
}

// Issue creates an HS256-signed token for the given user id with issued-at
// and expiry claims derived from the configured duration.
func (c *TokenCodec) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		Issuer:    tokenIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// TTL returns the configured token lifetime. Handlers use it to align the
// session cookie's max age with the token expiry.
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

// Verify parses and validates a token string and returns the user id it
// was issued for. A malformed, tampered, or expired token yields an
// AuthError; the reason is kept in the message for logs and clients but
// the status is always 401.
func (c *TokenCodec) Verify(tokenString string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, apperror.NewAuthError("token has expired", err)
		}
		return uuid.Nil, apperror.NewAuthError("invalid token", err)
	}
	if !token.Valid {
		return uuid.Nil, apperror.NewAuthError("invalid token", nil)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, apperror.NewAuthError("invalid token: bad subject claim", err)
	}
	return userID, nil
}
