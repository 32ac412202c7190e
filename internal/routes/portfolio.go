package routes

import (
	"github.com/gin-gonic/gin"

	"portfolio_api/internal/handlers"
)

type SkillRoutes struct {
	handler *handlers.SkillHandler
	protect []gin.HandlerFunc
}

func NewSkillRoutes(handler *handlers.SkillHandler, protect []gin.HandlerFunc) *SkillRoutes {
	return &SkillRoutes{handler: handler, protect: protect}
}

func (r *SkillRoutes) RegisterRoutes(router *gin.RouterGroup) {
	skills := router.Group("/skills")
	{
		skills.GET("", r.handler.ListSkills)
		skills.POST("", chain(r.protect, r.handler.CreateSkill)...)
		skills.PUT("/:id", chain(r.protect, r.handler.UpdateSkill)...)
		skills.DELETE("/:id", chain(r.protect, r.handler.DeleteSkill)...)
	}
}

type ToolRoutes struct {
	handler *handlers.ToolHandler
	protect []gin.HandlerFunc
}

func NewToolRoutes(handler *handlers.ToolHandler, protect []gin.HandlerFunc) *ToolRoutes {
	return &ToolRoutes{handler: handler, protect: protect}
}

func (r *ToolRoutes) RegisterRoutes(router *gin.RouterGroup) {
	tools := router.Group("/tools")
	{
		tools.GET("", r.handler.ListTools)
		tools.POST("", chain(r.protect, r.handler.CreateTool)...)
		tools.PUT("/:id", chain(r.protect, r.handler.UpdateTool)...)
		tools.DELETE("/:id", chain(r.protect, r.handler.DeleteTool)...)
	}
}

type PersonalInfoRoutes struct {
	handler *handlers.PersonalInfoHandler
	protect []gin.HandlerFunc
}

func NewPersonalInfoRoutes(handler *handlers.PersonalInfoHandler, protect []gin.HandlerFunc) *PersonalInfoRoutes {
	return &PersonalInfoRoutes{handler: handler, protect: protect}
}

func (r *PersonalInfoRoutes) RegisterRoutes(router *gin.RouterGroup) {
	personal := router.Group("/personal")
	{
		personal.GET("", r.handler.GetPersonalInfo)
		personal.POST("", chain(r.protect, r.handler.CreatePersonalInfo)...)
		personal.PUT("", chain(r.protect, r.handler.UpdatePersonalInfo)...)
	}
}
