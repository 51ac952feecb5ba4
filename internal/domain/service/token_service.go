package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrInvalidToken covers every verification failure: bad structure, bad signature,
	// unexpected algorithm or expiry.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired is reported together with ErrInvalidToken when the token is past its expiry.
	ErrTokenExpired = errors.New("token expired")
)

// Claims is the verified payload of a session token.
type Claims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and verifies stateless session tokens.
type TokenService interface {
	// Issue creates a signed token whose subject is the user id.
	Issue(userID uuid.UUID) (string, error)

	// Verify checks signature, algorithm and expiry and returns the claims.
	Verify(token string) (*Claims, error)

	// TTL returns how long issued tokens stay valid.
	TTL() time.Duration
}
