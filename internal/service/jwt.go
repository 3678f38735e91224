package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and verifies the two token classes. Access and
// refresh tokens are signed with distinct secrets so that one class can
// never be replayed as the other.
type TokenService interface {
	IssueAccessToken(username string) (string, error)
	IssueRefreshToken(username string) (string, error)
	// VerifyAccessToken returns the subject username of a valid access
	// token, or one of ErrTokenMalformed, ErrTokenSignature,
	// ErrTokenExpired.
	VerifyAccessToken(tokenString string) (string, error)
	// VerifyRefreshToken is the same contract against the refresh secret.
	// Only the token-refresh endpoint consumes it.
	VerifyRefreshToken(tokenString string) (string, error)
	// AccessTokenTTL verifies an access token and returns its remaining
	// lifetime.
	AccessTokenTTL(tokenString string) (time.Duration, error)
}

type tokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
	now           func() time.Time
}

// NewTokenService creates a TokenService. Both secrets must be set and must
// differ; anything else is a deployment error.
func NewTokenService(accessSecret, refreshSecret string, accessExpiry, refreshExpiry time.Duration) (TokenService, error) {
	if accessSecret == "" || refreshSecret == "" {
		return nil, fmt.Errorf("signing secrets must not be empty")
	}
	if accessSecret == refreshSecret {
		return nil, fmt.Errorf("access and refresh secrets must differ")
	}
	return &tokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
		now:           time.Now,
	}, nil
}

func (s *tokenService) IssueAccessToken(username string) (string, error) {
	return s.issue(username, s.accessSecret, s.accessExpiry)
}

func (s *tokenService) IssueRefreshToken(username string) (string, error) {
	return s.issue(username, s.refreshSecret, s.refreshExpiry)
}

func (s *tokenService) issue(username string, secret []byte, expiry time.Duration) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *tokenService) VerifyAccessToken(tokenString string) (string, error) {
	claims, err := s.verify(tokenString, s.accessSecret)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

func (s *tokenService) VerifyRefreshToken(tokenString string) (string, error) {
	claims, err := s.verify(tokenString, s.refreshSecret)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

func (s *tokenService) AccessTokenTTL(tokenString string) (time.Duration, error) {
	claims, err := s.verify(tokenString, s.accessSecret)
	if err != nil {
		return 0, err
	}
	return claims.ExpiresAt.Sub(s.now()), nil
}

func (s *tokenService) verify(tokenString string, secret []byte) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return secret, nil
		},
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignature
		default:
			return nil, ErrTokenMalformed
		}
	}
	if !token.Valid {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}
