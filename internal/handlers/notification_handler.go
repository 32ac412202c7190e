package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_api/internal/responses"
	"portfolio_api/internal/services"
)

type NotificationHandler struct {
	notificationService *services.NotificationService
}

func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

type testEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required"`
}

// TestEmail handles POST /api/test-email by sending one contact auto-reply.
func (h *NotificationHandler) TestEmail(c *gin.Context) {
	var req testEmailRequest
	if !bindJSON(c, &req, "Email and name are required for testing") {
		return
	}

	result := h.notificationService.NotifyClient(c.Request.Context(), services.FormContact, services.FormData{
		Name:    req.Name,
		Email:   req.Email,
		Subject: "Test Email",
		Message: "This is a test email to verify SMTP integration.",
	})
	if !result.Success {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to send test email",
			"details": result.Error,
		})
		return
	}

	responses.Success(c, http.StatusOK, gin.H{
		"success":   true,
		"message":   "Test email sent successfully",
		"messageId": result.MessageID,
	})
}
