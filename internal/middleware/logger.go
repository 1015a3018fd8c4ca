package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"swim-shop-api/internal/utils"
)

func RequestLogger(infoLog, errorLog *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		entry := logrus.Fields{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"ip":         utils.GetRealClientIP(c),
			"latency":    latency.String(),
			"user-agent": c.Request.UserAgent(),
			"trace_id":   TraceID(c),
		}

		if len(c.Errors) > 0 || c.Writer.Status() >= 500 {
			errorLog.WithFields(entry).Error(c.Errors.String())
		} else {
			infoLog.WithFields(entry).Info("request completed")
		}
	}
}
