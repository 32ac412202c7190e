package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_api/internal/models"
	"portfolio_api/internal/responses"
	"portfolio_api/internal/services"
)

// ProjectHandler serves /api/projects and /api/webprojects. label is used in
// error messages ("project" or "web project").
type ProjectHandler struct {
	projectService *services.ProjectService
	label          string
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, label: "project"}
}

func NewWebProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, label: "web project"}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.List(c.Request.Context())
	if err != nil {
		responses.Error(c, err, "Failed to fetch "+h.label+"s")
		return
	}
	responses.Success(c, http.StatusOK, projects)
}

// CreateProject handles POST /api/projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req models.ProjectInput
	if !bindJSON(c, &req, "") {
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), req)
	if err != nil {
		responses.Error(c, err, "Failed to create "+h.label)
		return
	}
	responses.Success(c, http.StatusCreated, project)
}

// UpdateProject handles PUT /api/projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.ProjectInput
	if !bindJSON(c, &req, "") {
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), id, req)
	if err != nil {
		responses.Error(c, err, "Failed to update "+h.label)
		return
	}
	responses.Success(c, http.StatusOK, project)
}

// DeleteProject handles DELETE /api/projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), id); err != nil {
		responses.Error(c, err, "Failed to delete "+h.label)
		return
	}
	responses.Success(c, http.StatusOK, responses.DeleteResponse{Success: true})
}
