package routes

import (
	"github.com/gin-gonic/gin"

	"portfolio_api/internal/handlers"
)

// ProjectRoutes mounts one project collection; projects and web projects
// share the handler type.
type ProjectRoutes struct {
	path    string
	handler *handlers.ProjectHandler
	protect []gin.HandlerFunc
}

func NewProjectRoutes(path string, handler *handlers.ProjectHandler, protect []gin.HandlerFunc) *ProjectRoutes {
	return &ProjectRoutes{path: path, handler: handler, protect: protect}
}

func (r *ProjectRoutes) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group(r.path)
	{
		projects.GET("", r.handler.ListProjects)
		projects.POST("", chain(r.protect, r.handler.CreateProject)...)
		projects.PUT("/:id", chain(r.protect, r.handler.UpdateProject)...)
		projects.DELETE("/:id", chain(r.protect, r.handler.DeleteProject)...)
	}
}
