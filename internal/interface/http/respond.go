package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/wil-portal/internal/application"
	"github.com/oksasatya/wil-portal/pkg/helpers"
	"github.com/oksasatya/wil-portal/pkg/response"
	"github.com/oksasatya/wil-portal/pkg/validation"
)

// respondError maps service errors to HTTP status codes. Internal details are
// logged, never returned.
func respondError(c *gin.Context, logger *logrus.Logger, err error) {
	var verr *application.ValidationError
	switch {
	case errors.As(err, &verr):
		var fields gin.H
		if len(verr.Fields) > 0 {
			fields = gin.H{"missingFields": verr.Fields}
		}
		response.Error(c, http.StatusBadRequest, verr.Message, fields)
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "Invalid credentials", nil)
	case errors.Is(err, application.ErrUnauthorized):
		response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
	case errors.Is(err, application.ErrNotFound):
		response.Error(c, http.StatusNotFound, "Not found", nil)
	default:
		helpers.LogError(logger, "request failed", err, logrus.Fields{
			"request_id": c.GetString("request_id"),
			"path":       c.Request.URL.Path,
		})
		response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
	}
}

// bindJSON decodes the request body into dst. An empty body leaves dst at
// its zero value so that field validation can report what is missing.
// It reports false after writing a 400 for malformed payloads.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	if validation.IsMalformed(err) {
		response.Error(c, http.StatusBadRequest, "Invalid request body", gin.H{"details": validation.ToDetails(err)})
		return false
	}
	return true
}
