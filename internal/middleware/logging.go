package middleware

import (
	"time"

	"buildmart-be/internal/logger"
	"buildmart-be/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logging logs every HTTP request in structured JSON
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		userID, _ := utils.GetUserIDFromContext(c.Request.Context())

		logger.FromCtx(c.Request.Context()).Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.ClientIP()),
			zap.Uint("user_id", userID),
		)
	}
}
