package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swim-shop-api/internal/logger"
	"swim-shop-api/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestTraceAudit_KeepsBodyForHandler(t *testing.T) {
	r := gin.New()
	r.Use(TraceAuditMiddleware())
	var seen, audited, trace string
	r.POST("/x", func(c *gin.Context) {
		b, _ := io.ReadAll(c.Request.Body)
		seen = string(b)
		audited = Audit(c).RequestBody
		trace = TraceID(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader("a=1&b=2"))
	r.ServeHTTP(w, req)

	assert.Equal(t, "a=1&b=2", seen)
	assert.Equal(t, "a=1&b=2", audited)
	assert.NotEmpty(t, trace)
	assert.Equal(t, trace, w.Header().Get(TraceIDHeader))
}

func TestTraceAudit_ReusesIncomingTraceID(t *testing.T) {
	r := gin.New()
	r.Use(TraceAuditMiddleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(TraceIDHeader, "abc-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(TraceIDHeader))
}

func TestRecover(t *testing.T) {
	r := gin.New()
	r.Use(TraceAuditMiddleware(), Recover(logger.Discard()))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"code":1003`)
}

func TestITNSourceGuard(t *testing.T) {
	r := gin.New()
	r.Use(ITNSourceGuard(service.NewSourceGuard([]string{"197.97.145.144/28"}), logger.Discard()))
	r.POST("/itn", func(c *gin.Context) { c.Status(http.StatusOK) })

	for ip, want := range map[string]int{
		"197.97.145.150:5555": http.StatusOK,
		"10.1.1.1:5555":       http.StatusForbidden,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/itn", nil)
		req.RemoteAddr = ip
		r.ServeHTTP(w, req)
		require.Equal(t, want, w.Code, ip)
	}
}

func TestRequestLogger_PassesThrough(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(logger.Discard(), logger.Discard()))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
