package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_api/internal/apperrors"
	applog "portfolio_api/internal/log"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// DeleteResponse is returned by every successful delete.
type DeleteResponse struct {
	Success bool `json:"success"`
}

// Success writes data as the response body, unwrapped.
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func Fail(c *gin.Context, statusCode int, err error, message string) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = details(err)
	}
	c.AbortWithStatusJSON(statusCode, resp)
}

// Error maps err to its status code. Server errors report fallback as the
// message; client errors report the error's own message.
func Error(c *gin.Context, err error, fallback string) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		applog.WithComponent("http").Error(fallback,
			"error", err,
			"method", c.Request.Method,
			"path", c.FullPath(),
		)
		Fail(c, status, err, fallback)
		return
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: apperrors.Message(err, fallback)})
}

func details(err error) string {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) && appErr.Cause != nil {
		return appErr.Cause.Error()
	}
	return err.Error()
}
