package routes

import (
	"github.com/gin-gonic/gin"

	"portfolio_api/internal/handlers"
)

type SubmissionRoutes struct {
	handler      *handlers.SubmissionHandler
	notification *handlers.NotificationHandler
	protect      []gin.HandlerFunc
}

func NewSubmissionRoutes(handler *handlers.SubmissionHandler, notification *handlers.NotificationHandler, protect []gin.HandlerFunc) *SubmissionRoutes {
	return &SubmissionRoutes{handler: handler, notification: notification, protect: protect}
}

func (r *SubmissionRoutes) RegisterRoutes(router *gin.RouterGroup) {
	// Public forms
	router.POST("/contact", r.handler.SubmitContact)
	router.POST("/project-booking", r.handler.SubmitBooking)

	// Admin views
	router.GET("/contact-submissions", chain(r.protect, r.handler.ListContacts)...)
	router.GET("/contacts", chain(r.protect, r.handler.ListContacts)...)
	router.GET("/project-bookings", chain(r.protect, r.handler.ListBookings)...)
	router.POST("/test-email", chain(r.protect, r.notification.TestEmail)...)
}
