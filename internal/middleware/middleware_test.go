package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"hospital-api-server/internal/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID_GeneratesNew(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	var seen string
	r.GET("/", func(c *gin.Context) { seen = GetRequestID(c) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
}

func TestRequestID_PreservesExisting(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := serve(r, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestLogger_LogsRequest(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestID(), Logger(zerolog.New(&buf)))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))
	out := buf.String()
	assert.Contains(t, out, `"path":"/x"`)
	assert.Contains(t, out, `"status":204`)
	assert.Contains(t, out, `"request_id"`)
}

func TestRecovery_CatchesPanic(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(Recovery(zerolog.New(&buf)))
	r.GET("/", func(c *gin.Context) { panic("boom") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Something went wrong"}`, w.Body.String())
	assert.Contains(t, buf.String(), "panic recovered")
}

func TestRequireJSON(t *testing.T) {
	r := gin.New()
	r.POST("/", RequireJSON(), func(c *gin.Context) { c.Status(http.StatusOK) })

	tests := []struct {
		contentType string
		want        int
	}{
		{"application/json", http.StatusOK},
		{"application/json; charset=utf-8", http.StatusOK},
		{"text/plain", http.StatusUnsupportedMediaType},
		{"", http.StatusUnsupportedMediaType},
	}
	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			assert.Equal(t, tt.want, serve(r, req).Code)
		})
	}
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewHTTPMetrics(reg)
	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/doctors/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(r, httptest.NewRequest(http.MethodGet, "/doctors/abc", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/doctors/def", nil))

	n, err := testutil.GatherAndCount(reg, "hospital_http_requests_total")
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}
