package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"bleau-backend/internal/models"
	"bleau-backend/internal/storage"
)

type UploadHandler struct {
	storageClient *storage.Client
}

func NewUploadHandler(storageClient *storage.Client) *UploadHandler {
	return &UploadHandler{storageClient: storageClient}
}

// Upload accepts one multipart image, validates it against the size
// ceiling and MIME allow-list, stores it, and returns the public URL the
// portrait workflows consume as a media reference.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "no file provided"})
		return
	}

	if file.Size > storage.MaxUploadBytes {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: fmt.Sprintf("file too large, maximum size is %dMB", storage.MaxUploadBytes/(1024*1024)),
		})
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !storage.AllowedMIMETypes[contentType] {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "invalid file type, allowed: .jpg, .jpeg, .png, .webp, .gif",
		})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to read file",
			Message: err.Error(),
		})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to read file",
			Message: err.Error(),
		})
		return
	}

	url, err := h.storageClient.UploadFile(file.Filename, contentType, data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "upload failed",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.UploadResponse{URL: url})
}
