package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_api/internal/middlewares"
	"portfolio_api/internal/responses"
	"portfolio_api/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginUser struct {
	Username string `json:"username"`
}

type loginResponse struct {
	Success bool      `json:"success"`
	Token   string    `json:"token"`
	User    loginUser `json:"user"`
}

// Login handles POST /api/auth/login. Missing fields fail the credential
// check like wrong ones do.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req, "") {
		return
	}

	token, claims, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		responses.Error(c, err, "Server error")
		return
	}

	responses.Success(c, http.StatusOK, loginResponse{
		Success: true,
		Token:   token,
		User:    loginUser{Username: claims.Username},
	})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, _ := middlewares.ClaimsFrom(c)
	if err := h.authService.Logout(c.Request.Context(), claims); err != nil {
		responses.Error(c, err, "Failed to logout")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out successfully",
		"revoked": h.authService.RevocationEnabled(),
	})
}
