// Package middleware provides HTTP middleware for the logbook API.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/azpsen/tailfin-api/internal/models"
	"github.com/azpsen/tailfin-api/internal/service"
)

const (
	userContextKey  = "currentUser"
	tokenContextKey = "currentToken"
)

// RequireAuth guards a route group: it extracts the bearer token, resolves
// it to a user through the auth gateway, and rejects the request if the
// resolved user sits below the required auth level. Handlers behind it read
// the identity with CurrentUser and never touch token parsing themselves.
func RequireAuth(auth service.AuthService, minLevel models.AuthLevel) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c)
		if token == "" {
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			status, msg := authFailure(err)
			c.Header("WWW-Authenticate", "Bearer")
			c.AbortWithStatusJSON(status, gin.H{"error": msg})
			return
		}

		if user.Level < minLevel {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access unauthorized"})
			return
		}

		c.Set(userContextKey, user)
		c.Set(tokenContextKey, token)
		c.Next()
	}
}

// CurrentUser returns the identity resolved by RequireAuth, or nil when the
// route is not guarded.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// CurrentToken returns the raw bearer token accepted by RequireAuth.
func CurrentToken(c *gin.Context) string {
	return c.GetString(tokenContextKey)
}

func extractBearer(c *gin.Context) string {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}

// authFailure maps gateway errors to responses. Everything token-shaped is
// a plain 401; the reason a user lookup failed is never leaked.
func authFailure(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrTokenExpired):
		return http.StatusUnauthorized, "token expired"
	case errors.Is(err, service.ErrTokenRevoked),
		errors.Is(err, service.ErrTokenMalformed),
		errors.Is(err, service.ErrTokenSignature),
		errors.Is(err, service.ErrNotFound):
		return http.StatusUnauthorized, "could not validate credentials"
	default:
		return http.StatusInternalServerError, "authentication failed"
	}
}
