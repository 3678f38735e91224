// Package handlers contains HTTP request handlers for the logbook API.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/azpsen/tailfin-api/internal/service"
)

// respondError writes a JSON error body with the given status.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// logAndRespondError logs the underlying error and writes a sanitized
// message to the client.
func logAndRespondError(c *gin.Context, status int, err error, message string) {
	logrus.WithFields(logrus.Fields{
		"path":   c.FullPath(),
		"status": status,
	}).WithError(err).Error(message)
	respondError(c, status, message)
}

// respondServiceError maps service-layer sentinel errors onto HTTP
// responses. Unrecognized errors are treated as internal.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrForbidden):
		respondError(c, http.StatusForbidden, "access unauthorized")
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, service.ErrInvalidCredentials.Error())
	case errors.Is(err, service.ErrTokenExpired),
		errors.Is(err, service.ErrTokenMalformed),
		errors.Is(err, service.ErrTokenSignature),
		errors.Is(err, service.ErrTokenRevoked):
		respondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrInvalidUsername),
		errors.Is(err, service.ErrInvalidPassword):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		logAndRespondError(c, http.StatusInternalServerError, err, "internal error")
	}
}
