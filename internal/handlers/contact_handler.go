package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/HennaArtStudio/henna-booking-api/internal/config"
	"github.com/HennaArtStudio/henna-booking-api/internal/httperr"
	"github.com/HennaArtStudio/henna-booking-api/internal/logger"
	"github.com/HennaArtStudio/henna-booking-api/internal/mailer"
)

// ======================================================
// HANDLER (contact form)
// ======================================================

type ContactHandler struct {
	mailer *mailer.Mailer
	inbox  string
}

func NewContactHandler(m *mailer.Mailer, cfg *config.Config) *ContactHandler {
	return &ContactHandler{mailer: m, inbox: cfg.ContactInbox}
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

func (h *ContactHandler) Send(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name, email and message are required.")
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		httperr.BadRequest(c, "empty_message", "The message cannot be empty.")
		return
	}

	subject := fmt.Sprintf("New contact form message from %s", req.Name)
	body := fmt.Sprintf("From: %s <%s>\n\n%s", req.Name, req.Email, req.Message)

	if err := h.mailer.Send(h.inbox, subject, body); err != nil {
		logger.Log.Error("failed to deliver contact message", zap.Error(err))
		httperr.Internal(c, "failed_to_send_message", "Could not deliver the message.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"sent": true})
}
