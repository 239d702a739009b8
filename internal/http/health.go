package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	storeOK            = "ok"
	storeNotConfigured = "not configured"
)

// HealthResponse is served by GET /health. Store holds "ok", "not configured"
// or the ping error.
type HealthResponse struct {
	Healthy bool   `json:"healthy"`
	Store   string `json:"store"`
	Version string `json:"version,omitempty"`
	Time    string `json:"time"`
}

// HealthController reports whether the book store answers a ping.
type HealthController struct {
	store   Pinger
	version string
}

func NewHealthController(store Pinger, version string) *HealthController {
	return &HealthController{store: store, version: version}
}

func (h *HealthController) Status(c *gin.Context) {
	resp := HealthResponse{
		Healthy: true,
		Store:   storeNotConfigured,
		Version: h.version,
		Time:    time.Now().UTC().Format(time.RFC3339),
	}

	if h.store != nil {
		resp.Store = storeOK
		if err := h.store.Ping(c.Request.Context()); err != nil {
			resp.Healthy = false
			resp.Store = err.Error()
		}
	}

	code := http.StatusOK
	if !resp.Healthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, resp)
}
