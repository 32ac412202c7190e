package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_api/internal/responses"
	"portfolio_api/internal/utils"
)

// RequireAdmin checks that the token was issued to the current admin
// username, so tokens minted before ADMIN_USERNAME changed stop working.
// It must run after Authenticate.
func RequireAdmin(username string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, responses.ErrorResponse{Error: "Access token required"})
			return
		}

		if !utils.ConstantTimeEqual(claims.Username, username) {
			c.AbortWithStatusJSON(http.StatusForbidden, responses.ErrorResponse{Error: "Invalid or expired token"})
			return
		}

		c.Next()
	}
}
