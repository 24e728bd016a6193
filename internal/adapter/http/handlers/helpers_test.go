package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"

	"stoploss_quoting/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const testTenant = "tenant-1"

func newTestRouter() *gin.Engine {
	r := gin.New()
	r.Use(middleware.Tenant(testTenant))
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
