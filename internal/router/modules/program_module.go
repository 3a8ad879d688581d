package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/wil-portal/internal/interface/http"
)

// ProgramModule serves the read-only catalog and statistics.
type ProgramModule struct {
	Handler *handlers.ProgramHandler
}

func NewProgramModule(h *handlers.ProgramHandler) *ProgramModule {
	return &ProgramModule{Handler: h}
}

func (m *ProgramModule) Register(rg *gin.RouterGroup) {
	rg.GET("/programs", m.Handler.List)
	rg.GET("/programs/:slug", m.Handler.Get)
	rg.GET("/stats", m.Handler.StatsSnapshot)
}
