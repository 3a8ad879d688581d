package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/wil-portal/internal/application"
	"github.com/oksasatya/wil-portal/pkg/response"
)

type ProgramHandler struct {
	Programs *application.ProgramService
	Stats    *application.StatsService
	Logger   *logrus.Logger
}

func NewProgramHandler(programs *application.ProgramService, stats *application.StatsService, logger *logrus.Logger) *ProgramHandler {
	return &ProgramHandler{Programs: programs, Stats: stats, Logger: logger}
}

// List GET /api/programs
func (h *ProgramHandler) List(c *gin.Context) {
	programs, err := h.Programs.List(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "Programs retrieved successfully", gin.H{"programs": programs, "count": len(programs)})
}

// Get GET /api/programs/:slug
func (h *ProgramHandler) Get(c *gin.Context) {
	p, err := h.Programs.Get(c.Request.Context(), c.Param("slug"))
	if errors.Is(err, application.ErrNotFound) {
		response.Error(c, http.StatusNotFound, "Program not found", nil)
		return
	}
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "Program retrieved successfully", gin.H{"program": p})
}

// StatsSnapshot GET /api/stats
func (h *ProgramHandler) StatsSnapshot(c *gin.Context) {
	response.Success(c, http.StatusOK, "Statistics retrieved successfully", gin.H{"stats": h.Stats.Snapshot(c.Request.Context())})
}
