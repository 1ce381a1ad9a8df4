package handlers

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// RuntimeConfig is the public connection config served to the pages as an
// injectable script. Secrets never go in here.
type RuntimeConfig struct {
	APIBaseURL    string `json:"apiBaseUrl"`
	StorageBucket string `json:"storageBucket"`
	AppID         string `json:"appId"`
	Environment   string `json:"environment"`
}

type ConfigHandler struct{}

func NewConfigHandler() *ConfigHandler { return &ConfigHandler{} }

// Script serves /config.js: a JS module assigning the runtime config,
// sourced from process environment variables.
func (h *ConfigHandler) Script(c *gin.Context) {
	cfg := RuntimeConfig{
		APIBaseURL:    os.Getenv("API_BASE_URL"),
		StorageBucket: os.Getenv("STORAGE_BUCKET"),
		AppID:         os.Getenv("APP_ID"),
		Environment:   os.Getenv("APP_ENV"),
	}

	body, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("Content-Type", "application/javascript; charset=utf-8")
	c.String(http.StatusOK, "export const appConfig = %s;\n", body)
}
