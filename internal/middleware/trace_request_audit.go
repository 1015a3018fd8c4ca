package middleware

import (
	"bytes"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"swim-shop-api/internal/dto"
)

const (
	auditCtxKey   = "audit_ctx"
	TraceIDHeader = "X-Trace-ID"
	maxAuditBody  = 16 << 10
)

// TraceAuditMiddleware assigns a trace id and keeps a copy of the request body
// for handlers that persist audit rows.
func TraceAuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceIDHeader)
		if traceID == "" {
			traceID = uuid.New().String()
		}

		var bodyBytes []byte
		if c.Request.Body != nil {
			bodyBytes, _ = io.ReadAll(io.LimitReader(c.Request.Body, maxAuditBody+1))
			rest := c.Request.Body
			c.Request.Body = struct {
				io.Reader
				io.Closer
			}{io.MultiReader(bytes.NewReader(bodyBytes), rest), rest}
		}
		if len(bodyBytes) > maxAuditBody {
			bodyBytes = bodyBytes[:maxAuditBody]
		}

		c.Set(auditCtxKey, &dto.AuditContextPayload{
			TraceID:     traceID,
			RequestBody: string(bodyBytes),
			IP:          c.ClientIP(),
			UserAgent:   c.GetHeader("User-Agent"),
			StartTime:   time.Now(),
		})
		c.Writer.Header().Set(TraceIDHeader, traceID)

		c.Next()
	}
}

// Audit returns the payload set by TraceAuditMiddleware, or an empty one.
func Audit(c *gin.Context) *dto.AuditContextPayload {
	if v, ok := c.Get(auditCtxKey); ok {
		if p, ok := v.(*dto.AuditContextPayload); ok {
			return p
		}
	}
	return &dto.AuditContextPayload{IP: c.ClientIP(), StartTime: time.Now()}
}

func TraceID(c *gin.Context) string {
	return Audit(c).TraceID
}
