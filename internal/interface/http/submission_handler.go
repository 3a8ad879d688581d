package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/wil-portal/internal/application"
	"github.com/oksasatya/wil-portal/internal/domain/entity"
	"github.com/oksasatya/wil-portal/pkg/response"
)

type SubmissionHandler struct {
	Service *application.SubmissionService
	Logger  *logrus.Logger
}

func NewSubmissionHandler(svc *application.SubmissionService, logger *logrus.Logger) *SubmissionHandler {
	return &SubmissionHandler{Service: svc, Logger: logger}
}

// Apply POST /api/applications
func (h *SubmissionHandler) Apply(c *gin.Context) {
	var app entity.Application
	if !bindJSON(c, &app) {
		return
	}
	receipt, err := h.Service.SubmitApplication(c.Request.Context(), app)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	submissions.Add("application", 1)
	response.Success(c, http.StatusCreated, "Application submitted successfully", gin.H{
		"applicationId": receipt.ApplicationID,
		"submittedAt":   receipt.SubmittedAt,
	})
}

// Contact POST /api/contact
func (h *SubmissionHandler) Contact(c *gin.Context) {
	var msg entity.ContactMessage
	if !bindJSON(c, &msg) {
		return
	}
	receipt, err := h.Service.SubmitContact(c.Request.Context(), msg)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	submissions.Add("contact", 1)
	response.Success(c, http.StatusCreated, "Contact form submitted successfully", gin.H{"id": receipt.ID})
}
