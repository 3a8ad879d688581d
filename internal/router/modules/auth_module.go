package modules

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/wil-portal/internal/application"
	handlers "github.com/oksasatya/wil-portal/internal/interface/http"
	"github.com/oksasatya/wil-portal/internal/interface/middleware"
)

// AuthModule wires login and the token-protected session endpoints.
// Public: POST /auth/login
// Protected: GET /auth/me, POST /auth/logout
type AuthModule struct {
	Handler *handlers.AuthHandler
	Service *application.AuthService
	Logger  *logrus.Logger
}

func NewAuthModule(h *handlers.AuthHandler, svc *application.AuthService, logger *logrus.Logger) *AuthModule {
	return &AuthModule{Handler: h, Service: svc, Logger: logger}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/auth/login", m.Handler.Login)

	isRejection := func(err error) bool { return errors.Is(err, application.ErrUnauthorized) }
	auth := rg.Group("/auth")
	auth.Use(middleware.Auth(m.Service, isRejection, m.Logger))
	{
		auth.GET("/me", m.Handler.Me)
		auth.POST("/logout", m.Handler.Logout)
	}
}
