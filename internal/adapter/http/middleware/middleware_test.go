package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/tenant", func(c *gin.Context) {
		c.String(http.StatusOK, TenantID(c))
	})
	r.GET("/missing", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})
	return r
}

func TestTenant(t *testing.T) {
	r := newRouter(Tenant("default"))

	t.Run("header wins", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/tenant", nil)
		req.Header.Set(TenantHeader, " acme ")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "acme", w.Body.String())
	})

	t.Run("falls back to default", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tenant", nil))

		assert.Equal(t, "default", w.Body.String())
	})
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	r := newRouter(Tenant("default"), Logger(zerolog.New(&buf)))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing?x=1", nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "GET", line["method"])
	assert.Equal(t, "/missing?x=1", line["path"])
	assert.Equal(t, float64(http.StatusNotFound), line["status"])
	assert.Equal(t, "default", line["tenant_id"])
	assert.Equal(t, "request", line["message"])
}
