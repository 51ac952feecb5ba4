// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"pos/config"
	"pos/internal/domain/service"
	"pos/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
	now    func() time.Time
}

// JWTOption customises a token service.
type JWTOption func(*jwtService)

// WithClock replaces time.Now for issuance and verification.
func WithClock(now func() time.Time) JWTOption {
	return func(s *jwtService) {
		s.now = now
	}
}

// NewJWTService is the constructor used by Fx. It reads the secret, algorithm
// and expiry from the auth configuration.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.Auth == nil {
		return nil, errors.New("auth configuration must be provided")
	}

	return NewJWTServiceWithOptions(cfg.Auth.SecretKey, cfg.Auth.Algorithm, cfg.Auth.AccessTokenTTL())
}

// NewJWTServiceWithOptions builds a token service signing with secret using the named
// HMAC algorithm (HS256, HS384 or HS512).
func NewJWTServiceWithOptions(secret, algorithm string, ttl time.Duration, opts ...JWTOption) (service.TokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, errors.Errorf("unsupported token algorithm %q", algorithm)
	}

	s := &jwtService{
		secret: []byte(secret),
		method: method,
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Issue creates a signed token for userID that expires after the configured TTL.
func (s *jwtService) Issue(userID uuid.UUID) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify parses tokenString and checks its signature and expiry.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.WithStack(errors.Join(service.ErrInvalidToken, service.ErrTokenExpired))
		}

		return nil, errors.Wrapf(service.ErrInvalidToken, "failed to verify token: %v", err)
	}
	if !token.Valid {
		return nil, errors.WithStack(service.ErrInvalidToken)
	}

	result := &service.Claims{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}

	return result, nil
}

// TTL returns the configured lifetime of access tokens.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
