package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_api/internal/models"
	"portfolio_api/internal/responses"
	"portfolio_api/internal/services"
)

type SubmissionHandler struct {
	submissionService *services.SubmissionService
}

func NewSubmissionHandler(submissionService *services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

// SubmitContact handles POST /api/contact. Email delivery failures do not
// affect the response once the submission is stored.
func (h *SubmissionHandler) SubmitContact(c *gin.Context) {
	var req models.ContactInput
	if !bindJSON(c, &req, "Required fields missing (name, email, message)") {
		return
	}

	submission, err := h.submissionService.SubmitContact(c.Request.Context(), req)
	if err != nil {
		responses.Error(c, err, "Failed to submit contact form")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{
		"success":      true,
		"message":      "Contact form submitted successfully",
		"submissionId": submission.ID,
	})
}

// SubmitBooking handles POST /api/project-booking
func (h *SubmissionHandler) SubmitBooking(c *gin.Context) {
	var req models.ProjectBookingInput
	if !bindJSON(c, &req, "Required fields missing (name, email, projectTitle, projectDescription)") {
		return
	}

	booking, err := h.submissionService.SubmitBooking(c.Request.Context(), req)
	if err != nil {
		responses.Error(c, err, "Failed to submit project booking")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{
		"success":   true,
		"message":   "Project booking submitted successfully",
		"bookingId": booking.ID,
	})
}

// ListContacts handles GET /api/contact-submissions and GET /api/contacts
func (h *SubmissionHandler) ListContacts(c *gin.Context) {
	submissions, err := h.submissionService.ListContacts(c.Request.Context())
	if err != nil {
		responses.Error(c, err, "Failed to fetch contact submissions")
		return
	}
	responses.Success(c, http.StatusOK, submissions)
}

// ListBookings handles GET /api/project-bookings
func (h *SubmissionHandler) ListBookings(c *gin.Context) {
	bookings, err := h.submissionService.ListBookings(c.Request.Context())
	if err != nil {
		responses.Error(c, err, "Failed to fetch project bookings")
		return
	}
	responses.Success(c, http.StatusOK, bookings)
}
