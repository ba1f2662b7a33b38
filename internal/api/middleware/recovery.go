package middleware

import (
	"net/http"

	"product-catalog-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a JSON 500 and logs it with the request id
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.WithContext(c.Request.Context()).
			WithField("panic", recovered).
			Error("panic recovered")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":      "internal server error",
			"request_id": c.GetString(string(logger.RequestIDKey)),
		})
	})
}
