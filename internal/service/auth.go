package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/azpsen/tailfin-api/internal/models"
	"github.com/azpsen/tailfin-api/internal/repository"
)

// denyListPrefix namespaces deny-listed access tokens in redis.
const denyListPrefix = "denylist:"

// TokenPair bundles the short-lived access token with the longer-lived
// refresh token returned at login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AuthService is the request-time auth gateway: it logs users in and out,
// refreshes token pairs, and resolves bearer tokens to user identities.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*TokenPair, error)
	Logout(ctx context.Context, tokenString string) error
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Authenticate(ctx context.Context, tokenString string) (*models.User, error)
}

type authService struct {
	users  repository.UserRepository
	tokens TokenService
	redis  *redis.Client
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users repository.UserRepository, tokens TokenService, redisClient *redis.Client) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
		redis:  redisClient,
	}
}

// Login verifies the credentials and issues a token pair. Unknown users and
// wrong passwords both yield ErrInvalidCredentials so the response cannot be
// used to enumerate usernames.
func (s *authService) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !VerifyPassword(password, user.PasswordHash) {
		logrus.WithField("username", username).Warn("Failed login attempt")
		return nil, ErrInvalidCredentials
	}

	return s.issuePair(user.Username)
}

// Logout deny-lists the presented access token for the remainder of its
// lifetime. The redis entry expires exactly when the token would have.
func (s *authService) Logout(ctx context.Context, tokenString string) error {
	ttl, err := s.tokens.AccessTokenTTL(tokenString)
	if err != nil {
		return err
	}

	if err := s.redis.Set(ctx, denyListPrefix+tokenString, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to deny-list token: %w", err)
	}
	return nil
}

// Refresh mints a fresh token pair from a valid refresh token. Access
// tokens are rejected here for the same reason refresh tokens are rejected
// everywhere else: the two classes are signed with different secrets.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	username, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	// A refresh token can outlive its account; re-check the store.
	if _, err := s.users.FindByUsername(ctx, username); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	return s.issuePair(username)
}

// Authenticate resolves a bearer access token to the user it names. It
// fails if the token is malformed, tampered with, expired, deny-listed, or
// references a user that no longer exists.
func (s *authService) Authenticate(ctx context.Context, tokenString string) (*models.User, error) {
	username, err := s.tokens.VerifyAccessToken(tokenString)
	if err != nil {
		return nil, err
	}

	denied, err := s.redis.Exists(ctx, denyListPrefix+tokenString).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to check deny-list: %w", err)
	}
	if denied > 0 {
		return nil, ErrTokenRevoked
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return user, nil
}

func (s *authService) issuePair(username string) (*TokenPair, error) {
	accessToken, err := s.tokens.IssueAccessToken(username)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.IssueRefreshToken(username)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Authorize implements the data-isolation invariant: administrators may act
// on any resource, everyone else only on resources they own.
func Authorize(user *models.User, owner primitive.ObjectID) bool {
	if user == nil {
		return false
	}
	return user.IsAdmin() || user.ID == owner
}
