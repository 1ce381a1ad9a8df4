package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestConfigScript(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com")
	t.Setenv("STORAGE_BUCKET", "collabster-media")
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/config.js", NewConfigHandler().Script)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/config.js", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/javascript; charset=utf-8", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.Contains(t, body, "export const appConfig =")
	assert.Contains(t, body, "https://api.example.com")
	assert.Contains(t, body, "collabster-media")
}
