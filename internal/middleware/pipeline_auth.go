package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	apperrors "finnews/internal/errors"
)

// PipelineAuthMiddleware guards machine endpoints used by the analysis
// pipeline. Requests must carry an X-API-Key header equal to apiKey; when no
// key is configured the endpoints answer 503.
func PipelineAuthMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			abortWithError(c, apperrors.ErrPipelineNotConfigured)
			return
		}
		key := c.GetHeader("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			abortWithError(c, apperrors.ErrInvalidAPIKey)
			return
		}
		c.Next()
	}
}
