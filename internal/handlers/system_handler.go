package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio_api/internal/config"
)

const APIVersion = "1.0.0"

// HealthChecker reports database reachability.
type HealthChecker interface {
	Check(ctx context.Context) (string, error)
}

type SystemHandler struct {
	health     HealthChecker
	cfg        *config.Config
	revocation bool
}

func NewSystemHandler(health HealthChecker, cfg *config.Config, revocation bool) *SystemHandler {
	return &SystemHandler{health: health, cfg: cfg, revocation: revocation}
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// Root handles GET /
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   h.cfg.Mail.BrandName + " Backend API",
		"version":   APIVersion,
		"status":    "running",
		"timestamp": timestamp(),
	})
}

// Health handles GET /api/health
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	status, err := h.health.Check(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":    "Error",
			"error":     err.Error(),
			"timestamp": timestamp(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "OK",
		"database": gin.H{
			"status":    status,
			"timestamp": timestamp(),
		},
		"timestamp": timestamp(),
	})
}

// Config handles GET /api/config. Only non-sensitive values are reported.
func (h *SystemHandler) Config(c *gin.Context) {
	apiBaseURL := h.cfg.APIBaseURL
	if apiBaseURL == "" {
		apiBaseURL = fmt.Sprintf("http://localhost:%d", h.cfg.Port)
	}

	c.JSON(http.StatusOK, gin.H{
		"server": gin.H{
			"port":        h.cfg.Port,
			"environment": h.cfg.AppEnv,
			"corsOrigin":  strings.Join(h.cfg.CORSOrigins, ","),
			"frontendUrl": h.cfg.FrontendURL,
			"apiBaseUrl":  apiBaseURL,
		},
		"storage": gin.H{
			"bucket":     h.cfg.Storage.Bucket,
			"configured": h.cfg.Storage.Enabled(),
		},
		"auth": gin.H{
			"jwtConfigured":     h.cfg.Auth.JWTSecret != "",
			"adminUsername":     h.cfg.Auth.AdminUsername,
			"revocationEnabled": h.revocation,
		},
		"database": gin.H{
			"configured": h.cfg.Database.URL != "" || h.cfg.Database.Host != "",
		},
		"email": gin.H{
			"configured": h.cfg.Mail.Enabled(),
		},
		"timestamp": timestamp(),
	})
}
