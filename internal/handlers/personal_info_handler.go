package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_api/internal/models"
	"portfolio_api/internal/responses"
	"portfolio_api/internal/services"
)

type PersonalInfoHandler struct {
	personalInfoService *services.PersonalInfoService
}

func NewPersonalInfoHandler(personalInfoService *services.PersonalInfoService) *PersonalInfoHandler {
	return &PersonalInfoHandler{personalInfoService: personalInfoService}
}

// GetPersonalInfo handles GET /api/personal. The body is null until the
// profile is first saved.
func (h *PersonalInfoHandler) GetPersonalInfo(c *gin.Context) {
	info, err := h.personalInfoService.Get(c.Request.Context())
	if err != nil {
		responses.Error(c, err, "Failed to fetch personal info")
		return
	}
	responses.Success(c, http.StatusOK, info)
}

// CreatePersonalInfo handles POST /api/personal.
func (h *PersonalInfoHandler) CreatePersonalInfo(c *gin.Context) {
	h.save(c, http.StatusCreated)
}

// UpdatePersonalInfo handles PUT /api/personal. Both verbs upsert the single
// profile row.
func (h *PersonalInfoHandler) UpdatePersonalInfo(c *gin.Context) {
	h.save(c, http.StatusOK)
}

// TestDatabase handles GET /api/test-db by reading the profile row.
func (h *PersonalInfoHandler) TestDatabase(c *gin.Context) {
	info, err := h.personalInfoService.Get(c.Request.Context())
	if err != nil {
		responses.Error(c, err, "Database connection failed")
		return
	}
	responses.Success(c, http.StatusOK, gin.H{
		"success": true,
		"message": "Database connection successful",
		"data":    info,
	})
}

func (h *PersonalInfoHandler) save(c *gin.Context, status int) {
	var req models.PersonalInfoInput
	if !bindJSON(c, &req, "") {
		return
	}

	info, err := h.personalInfoService.Save(c.Request.Context(), req)
	if err != nil {
		responses.Error(c, err, "Failed to update personal info")
		return
	}
	responses.Success(c, status, info)
}
