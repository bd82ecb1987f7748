package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/webgigs/work-tracker-api/internal/errors"
	"github.com/webgigs/work-tracker-api/internal/middleware"
	"github.com/webgigs/work-tracker-api/internal/models"
	"github.com/webgigs/work-tracker-api/internal/services"
)

// maxUploadSize caps a single attachment at 20 MiB.
const maxUploadSize = 20 << 20

// FileHandler coordinates file attachment HTTP handlers. The same handler
// serves both parent kinds; routes fix the kind.
type FileHandler struct {
	attachmentService *services.AttachmentService
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(attachmentService *services.AttachmentService) *FileHandler {
	return &FileHandler{
		attachmentService: attachmentService,
	}
}

// Upload stores a multipart file against the parent in the route.
func (h *FileHandler) Upload(kind models.AttachmentParent) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := middleware.GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "Not authenticated")
			return
		}
		parentID, ok := pathID(c, "id")
		if !ok {
			return
		}

		header, err := c.FormFile("file")
		if err != nil {
			apierrors.BadRequest(c, "Missing file")
			return
		}
		if header.Size > maxUploadSize {
			apierrors.BadRequest(c, fmt.Sprintf("File exceeds %d bytes", maxUploadSize))
			return
		}

		file, err := header.Open()
		if err != nil {
			apierrors.InternalError(c, "Failed to read file")
			return
		}
		defer file.Close()

		attachment, err := h.attachmentService.Upload(userID, kind, parentID, services.UploadInput{
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Content:     file,
		})
		if err != nil {
			respondServiceError(c, err)
			return
		}

		c.JSON(http.StatusCreated, attachment)
	}
}

// List returns the attachments of the parent in the route.
func (h *FileHandler) List(kind models.AttachmentParent) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := middleware.GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "Not authenticated")
			return
		}
		parentID, ok := pathID(c, "id")
		if !ok {
			return
		}

		attachments, err := h.attachmentService.ListAttachments(userID, kind, parentID)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"attachments": attachments})
	}
}

// Download streams an attachment's content.
func (h *FileHandler) Download(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	attachment, content, err := h.attachmentService.Download(userID, id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	defer content.Close()

	contentType := attachment.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", attachment.FileName))
	c.DataFromReader(http.StatusOK, attachment.Size, contentType, content, nil)
}

// Delete removes an attachment and its stored bytes.
func (h *FileHandler) Delete(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.attachmentService.DeleteAttachment(userID, id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Attachment deleted successfully",
	})
}
