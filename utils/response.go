package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"booking-backend/apperrors"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONAppError maps a tagged application error to its HTTP status.
// Anything that is not an AppError is treated as an internal failure
// and logged; its message is not leaked to the client.
func JSONAppError(c *gin.Context, err error) {
	if appErr := apperrors.From(err); appErr != nil {
		c.JSON(appErr.HTTPStatus, gin.H{
			"success": false,
			"error": gin.H{
				"kind":    appErr.Kind,
				"message": appErr.Message,
			},
		})
		return
	}

	GetLogger().Error("unhandled error",
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
	)
	JSONError(c, http.StatusInternalServerError, "internal server error")
}
