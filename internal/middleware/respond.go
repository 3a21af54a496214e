package middleware

import (
	"github.com/gin-gonic/gin"

	apperrors "finnews/internal/errors"
)

// abortWithError stops the chain and writes appErr in the standard error shape.
func abortWithError(c *gin.Context, appErr *apperrors.AppError) {
	c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}
