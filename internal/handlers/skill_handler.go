package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_api/internal/models"
	"portfolio_api/internal/responses"
	"portfolio_api/internal/services"
)

type SkillHandler struct {
	skillService *services.SkillService
}

func NewSkillHandler(skillService *services.SkillService) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

func (h *SkillHandler) ListSkills(c *gin.Context) {
	skills, err := h.skillService.List(c.Request.Context())
	if err != nil {
		responses.Error(c, err, "Failed to fetch skills")
		return
	}
	responses.Success(c, http.StatusOK, skills)
}

func (h *SkillHandler) CreateSkill(c *gin.Context) {
	var req models.SkillInput
	if !bindJSON(c, &req, "") {
		return
	}

	skill, err := h.skillService.Create(c.Request.Context(), req)
	if err != nil {
		responses.Error(c, err, "Failed to create skill")
		return
	}
	responses.Success(c, http.StatusCreated, skill)
}

func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.SkillInput
	if !bindJSON(c, &req, "") {
		return
	}

	skill, err := h.skillService.Update(c.Request.Context(), id, req)
	if err != nil {
		responses.Error(c, err, "Failed to update skill")
		return
	}
	responses.Success(c, http.StatusOK, skill)
}

func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.skillService.Delete(c.Request.Context(), id); err != nil {
		responses.Error(c, err, "Failed to delete skill")
		return
	}
	responses.Success(c, http.StatusOK, responses.DeleteResponse{Success: true})
}
