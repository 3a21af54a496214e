// Package errors provides custom error types for the news API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Incorrect username or password", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Not enough permissions", StatusCode: http.StatusForbidden}
	ErrAccountLocked      = &AppError{Code: "ACCOUNT_LOCKED", Message: "Account is temporarily locked", StatusCode: http.StatusLocked}
	ErrInvalidToken       = &AppError{Code: "UNAUTHORIZED", Message: "Could not validate credentials", StatusCode: http.StatusUnauthorized}
)

// Pipeline errors.
var (
	ErrPipelineNotConfigured = &AppError{Code: "PIPELINE_NOT_CONFIGURED", Message: "Pipeline endpoints are not configured", StatusCode: http.StatusServiceUnavailable}
	ErrInvalidAPIKey         = &AppError{Code: "INVALID_API_KEY", Message: "Invalid or missing API key", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors. Uniqueness conflicts are reported as 400 like other rejected input.
var (
	ErrUserNotFound      = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail    = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusBadRequest}
	ErrDuplicateUsername = &AppError{Code: "DUPLICATE_USERNAME", Message: "A user with this username already exists", StatusCode: http.StatusBadRequest}
)

// Asset errors.
var (
	ErrAssetNotFound   = &AppError{Code: "ASSET_NOT_FOUND", Message: "Asset not found", StatusCode: http.StatusNotFound}
	ErrDuplicateSymbol = &AppError{Code: "DUPLICATE_SYMBOL", Message: "An asset with this symbol already exists", StatusCode: http.StatusBadRequest}
	ErrUnknownSymbol   = &AppError{Code: "UNKNOWN_SYMBOL", Message: "Unknown asset symbol", StatusCode: http.StatusBadRequest}
)

// News and analysis errors.
var (
	ErrNewsNotFound       = &AppError{Code: "NEWS_NOT_FOUND", Message: "News item not found", StatusCode: http.StatusNotFound}
	ErrAnalysisNotFound   = &AppError{Code: "ANALYSIS_NOT_FOUND", Message: "Analysis not found", StatusCode: http.StatusNotFound}
	ErrAnnotationNotFound = &AppError{Code: "ANNOTATION_NOT_FOUND", Message: "Annotation not found", StatusCode: http.StatusNotFound}
)

// Demo fixture errors.
var (
	ErrMarketDataNotFound = &AppError{Code: "MARKET_DATA_NOT_FOUND", Message: "Market data not found for this date", StatusCode: http.StatusNotFound}
	ErrEventNotFound      = &AppError{Code: "EVENT_NOT_FOUND", Message: "News event not found", StatusCode: http.StatusNotFound}
)
