package dto

import "time"

// AuditContextPayload travels through gin.Context for one request.
type AuditContextPayload struct {
	TraceID     string
	StartTime   time.Time
	RequestBody string
	IP          string
	UserAgent   string
}
