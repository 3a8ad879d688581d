package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/wil-portal/internal/application"
	"github.com/oksasatya/wil-portal/internal/interface/middleware"
	"github.com/oksasatya/wil-portal/pkg/response"
)

type AuthHandler struct {
	Service *application.AuthService
	Logger  *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Service: svc, Logger: logger}
}

// Login POST /api/auth/login {email, password}
func (h *AuthHandler) Login(c *gin.Context) {
	var in application.LoginInput
	if !bindJSON(c, &in) {
		return
	}
	in.ClientIP = middleware.ClientIP(c)

	res, err := h.Service.Login(c.Request.Context(), in)
	if err != nil {
		loginOutcomes.Add("failure", 1)
		respondError(c, h.Logger, err)
		return
	}
	loginOutcomes.Add("success", 1)
	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"token":     res.Token,
		"user":      res.User,
		"expiresAt": res.ExpiresAt,
	})
}

// Me GET /api/auth/me (auth required)
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		respondError(c, h.Logger, application.ErrUnauthorized)
		return
	}
	u, err := h.Service.CurrentUser(c.Request.Context(), claims)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "Authenticated", gin.H{"user": u})
}

// Logout POST /api/auth/logout (auth required)
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := middleware.Claims(c)
	if !ok {
		respondError(c, h.Logger, application.ErrUnauthorized)
		return
	}
	if err := h.Service.Logout(c.Request.Context(), claims); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "Logged out", nil)
}
