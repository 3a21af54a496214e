package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "finnews/internal/errors"
	"finnews/internal/logger"
	"finnews/internal/middleware"
	"finnews/internal/models"
)

const dateLayout = "2006-01-02"

// getCurrentUser returns the authenticated user loaded by the auth middleware.
// Returns ErrUnauthorized if not present.
func getCurrentUser(c *gin.Context) (*models.User, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// requireAdmin returns the current user if they are an admin, ErrForbidden otherwise.
func requireAdmin(c *gin.Context) (*models.User, error) {
	user, err := getCurrentUser(c)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin {
		return nil, apperrors.ErrForbidden
	}
	return user, nil
}

// parsePathID parses a uint path parameter.
// Returns ErrInvalidInput if the parameter is not a valid positive integer.
func parsePathID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return uint(id), nil
}

// parseFlexibleTime parses an RFC3339 timestamp or a bare YYYY-MM-DD date (UTC).
// With endOfDay set, a bare date is moved to the last instant of that day so
// that it acts as an inclusive upper bound.
func parseFlexibleTime(value string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}

// optionalTimeQuery parses an optional date query parameter.
func optionalTimeQuery(c *gin.Context, name string, endOfDay bool) (*time.Time, error) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, nil
	}
	t, err := parseFlexibleTime(raw, endOfDay)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+name+": use YYYY-MM-DD or RFC3339")
	}
	return &t, nil
}

// optionalStringQuery returns a pointer to a query parameter, or nil if absent or empty.
func optionalStringQuery(c *gin.Context, name string) *string {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil
	}
	return &raw
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}
