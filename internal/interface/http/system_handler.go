package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/wil-portal/pkg/response"
)

type SystemHandler struct {
	Version string
	started time.Time
}

func NewSystemHandler(version string) *SystemHandler {
	return &SystemHandler{Version: version, started: time.Now()}
}

// Health GET /api/health
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(h.started).Seconds(),
		"message":   "WIL.AUI.MA API is running successfully",
		"version":   h.Version,
	})
}

// NoRoute answers every unmatched path.
func (h *SystemHandler) NoRoute(c *gin.Context) {
	response.Error(c, http.StatusNotFound, "Route "+c.Request.URL.RequestURI()+" not found", nil)
}
