// Package token issues and verifies signed, time-bound identity assertions.
package token

import (
	"errors"
	"strconv"
	"time"

	"devconnect/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrInvalidToken is returned when the signature or structure of a token
	// does not verify.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned when a well-formed token is past its
	// validity window.
	ErrExpiredToken = errors.New("token has expired")
)

const (
	issuer   = "devconnect-api"
	audience = "devconnect-client"
)

// Service creates and verifies JWT credentials. It is stateless; validity is
// enforced by signature and expiry alone, never a server-side session table.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService returns a token Service configured from cfg.
func NewService(cfg *config.Config) *Service {
	return &Service{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
	}
}

// Issue creates a signed credential bound to the given user ID.
func (s *Service) Issue(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatUint(uint64(userID), 10),
		Audience:  jwt.ClaimStrings{audience},
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ID:        uuid.New().String(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.secret)
}

// Verify checks a credential and returns the user ID it is bound to. It
// fails with ErrExpiredToken when past the validity window and
// ErrInvalidToken for every other verification failure; it never panics on
// well-formed-but-denied input.
func (s *Service) Verify(tokenString string) (uint, error) {
	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(issuer),
		jwt.WithAudience(audience),
	)

	_, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrExpiredToken
		}
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 32)
	if err != nil || userID == 0 {
		return 0, ErrInvalidToken
	}
	return uint(userID), nil
}
