package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_api/internal/models"
	"portfolio_api/internal/responses"
	"portfolio_api/internal/services"
)

type ToolHandler struct {
	toolService *services.ToolService
}

func NewToolHandler(toolService *services.ToolService) *ToolHandler {
	return &ToolHandler{toolService: toolService}
}

func (h *ToolHandler) ListTools(c *gin.Context) {
	tools, err := h.toolService.List(c.Request.Context())
	if err != nil {
		responses.Error(c, err, "Failed to fetch tools")
		return
	}
	responses.Success(c, http.StatusOK, tools)
}

func (h *ToolHandler) CreateTool(c *gin.Context) {
	var req models.ToolInput
	if !bindJSON(c, &req, "") {
		return
	}

	tool, err := h.toolService.Create(c.Request.Context(), req)
	if err != nil {
		responses.Error(c, err, "Failed to create tool")
		return
	}
	responses.Success(c, http.StatusCreated, tool)
}

func (h *ToolHandler) UpdateTool(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req models.ToolInput
	if !bindJSON(c, &req, "") {
		return
	}

	tool, err := h.toolService.Update(c.Request.Context(), id, req)
	if err != nil {
		responses.Error(c, err, "Failed to update tool")
		return
	}
	responses.Success(c, http.StatusOK, tool)
}

func (h *ToolHandler) DeleteTool(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.toolService.Delete(c.Request.Context(), id); err != nil {
		responses.Error(c, err, "Failed to delete tool")
		return
	}
	responses.Success(c, http.StatusOK, responses.DeleteResponse{Success: true})
}
