package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"customer-support-agent/pkg/log"
)

func newRouter(m Middleware, seen *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(m.TraceID(), m.CORS(), m.AccessLog())
	r.GET("/ping", func(c *gin.Context) {
		*seen = log.TraceID(c.Request.Context())
		c.Status(http.StatusOK)
	})
	return r
}

func TestTraceID(t *testing.T) {
	var seen string
	r := newRouter(New(log.NewNop(), nil), &seen)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-42", seen)
	assert.Equal(t, "req-42", w.Header().Get(HeaderRequestID))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(HeaderRequestID))
}

func TestCORS(t *testing.T) {
	var seen string
	r := newRouter(New(log.NewNop(), []string{"https://shop.example"}), &seen)

	tests := []struct {
		name       string
		method     string
		origin     string
		wantStatus int
		wantAllow  string
	}{
		{name: "allowed", method: http.MethodGet, origin: "https://shop.example", wantStatus: http.StatusOK, wantAllow: "https://shop.example"},
		{name: "other origin", method: http.MethodGet, origin: "https://evil.example", wantStatus: http.StatusOK},
		{name: "preflight", method: http.MethodOptions, origin: "https://shop.example", wantStatus: http.StatusNoContent, wantAllow: "https://shop.example"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, "/ping", nil)
			req.Header.Set("Origin", tt.origin)
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantAllow, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
