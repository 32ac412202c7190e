package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio_api/internal/responses"
	"portfolio_api/internal/services"
)

// UploadFormField is the multipart field carrying the image.
const UploadFormField = "image"

// multipart framing allowance on top of the file size limit
const multipartOverhead = 1 << 20

type UploadHandler struct {
	mediaService *services.MediaService
}

func NewUploadHandler(mediaService *services.MediaService) *UploadHandler {
	return &UploadHandler{mediaService: mediaService}
}

// UploadImage handles POST /api/upload
func (h *UploadHandler) UploadImage(c *gin.Context) {
	limit := h.mediaService.MaxBytes()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit+multipartOverhead)

	fileHeader, err := c.FormFile(UploadFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			responses.Fail(c, http.StatusBadRequest, nil, "File too large")
			return
		}
		responses.Fail(c, http.StatusBadRequest, nil, "No file uploaded")
		return
	}
	if fileHeader.Size > limit {
		responses.Fail(c, http.StatusBadRequest, nil, "File too large")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "No file uploaded")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		responses.Fail(c, http.StatusBadRequest, err, "Failed to read upload")
		return
	}

	imageURL, err := h.mediaService.UploadImage(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		responses.Error(c, err, "Failed to upload image")
		return
	}

	responses.Success(c, http.StatusOK, gin.H{
		"success":  true,
		"imageUrl": imageURL,
	})
}
