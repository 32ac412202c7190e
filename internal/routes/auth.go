package routes

import (
	"github.com/gin-gonic/gin"

	"portfolio_api/internal/handlers"
)

type AuthRoutes struct {
	handler *handlers.AuthHandler
	protect []gin.HandlerFunc
}

func NewAuthRoutes(handler *handlers.AuthHandler, protect []gin.HandlerFunc) *AuthRoutes {
	return &AuthRoutes{handler: handler, protect: protect}
}

func (r *AuthRoutes) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		// Public routes
		auth.POST("/login", r.handler.Login)

		// Protected routes
		auth.POST("/logout", chain(r.protect, r.handler.Logout)...)
	}
}
