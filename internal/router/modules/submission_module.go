package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/wil-portal/internal/interface/http"
)

type SubmissionModule struct {
	Handler *handlers.SubmissionHandler
}

func NewSubmissionModule(h *handlers.SubmissionHandler) *SubmissionModule {
	return &SubmissionModule{Handler: h}
}

func (m *SubmissionModule) Register(rg *gin.RouterGroup) {
	rg.POST("/applications", m.Handler.Apply)
	rg.POST("/contact", m.Handler.Contact)
}
