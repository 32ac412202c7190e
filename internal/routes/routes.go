package routes

import (
	"github.com/gin-gonic/gin"

	"portfolio_api/internal/handlers"
)

// Handlers groups every handler the API exposes.
type Handlers struct {
	Auth         *handlers.AuthHandler
	Projects     *handlers.ProjectHandler
	WebProjects  *handlers.ProjectHandler
	Skills       *handlers.SkillHandler
	Tools        *handlers.ToolHandler
	PersonalInfo *handlers.PersonalInfoHandler
	Upload       *handlers.UploadHandler
	Submissions  *handlers.SubmissionHandler
	Notification *handlers.NotificationHandler
	System       *handlers.SystemHandler
}

// RegisterRoutes mounts the API under /api. protect is the middleware chain
// applied to every mutating or private route.
func RegisterRoutes(router *gin.Engine, h Handlers, protect ...gin.HandlerFunc) {
	api := router.Group("/api")

	NewAuthRoutes(h.Auth, protect).RegisterRoutes(api)
	NewProjectRoutes("/projects", h.Projects, protect).RegisterRoutes(api)
	NewProjectRoutes("/webprojects", h.WebProjects, protect).RegisterRoutes(api)
	NewSkillRoutes(h.Skills, protect).RegisterRoutes(api)
	NewToolRoutes(h.Tools, protect).RegisterRoutes(api)
	NewPersonalInfoRoutes(h.PersonalInfo, protect).RegisterRoutes(api)
	NewSubmissionRoutes(h.Submissions, h.Notification, protect).RegisterRoutes(api)

	api.POST("/upload", chain(protect, h.Upload.UploadImage)...)
	api.GET("/health", h.System.Health)
	api.GET("/config", h.System.Config)
	api.GET("/test-db", h.PersonalInfo.TestDatabase)

	router.GET("/", h.System.Root)
}

func chain(protect []gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(protect)+1)
	out = append(out, protect...)
	return append(out, handler)
}
