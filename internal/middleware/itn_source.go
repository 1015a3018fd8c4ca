package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"swim-shop-api/internal/constant"
	"swim-shop-api/internal/service"
	"swim-shop-api/internal/utils"
)

// ITNSourceGuard rejects notifications from addresses outside the gateway's ranges.
func ITNSourceGuard(guard *service.SourceGuard, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !guard.Allowed(ip) {
			log.Warnf("[ITN] trace_id=%s rejected source ip=%s", TraceID(c), ip)
			c.AbortWithStatusJSON(http.StatusForbidden, utils.ErrorWithTrace(constant.CodeIPNotWhitelisted, TraceID(c)))
			return
		}
		c.Next()
	}
}
