package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"photo-gallery-backend/internal/models"
	"photo-gallery-backend/internal/photos"
)

// PhotosHandler answers the /api/photos collection. A nil repository means
// the backing stores were never configured; every request then fails with
// the same error the configuration check produces.
type PhotosHandler struct {
	repo photos.Repository
}

func NewPhotosHandler(repo photos.Repository) *PhotosHandler {
	return &PhotosHandler{repo: repo}
}

func (h *PhotosHandler) configured(c *gin.Context) bool {
	if h.repo == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Missing Supabase configuration"})
		return false
	}
	return true
}

// List returns all photos, newest first.
func (h *PhotosHandler) List(c *gin.Context) {
	if !h.configured(c) {
		return
	}

	list, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}
	if list == nil {
		list = []models.Photo{}
	}

	c.JSON(http.StatusOK, list)
}

// Create uploads a new photo from a data URI payload.
func (h *PhotosHandler) Create(c *gin.Context) {
	if !h.configured(c) {
		return
	}

	var req models.CreatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Name == "" || req.Data == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Missing name or image data"})
		return
	}

	uploadedAt := time.Now()
	if req.UploadedAt != "" {
		t, err := time.Parse(time.RFC3339, req.UploadedAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid uploadedAt timestamp"})
			return
		}
		uploadedAt = t
	}

	photo, err := h.repo.Create(c.Request.Context(), req.Name, req.Data, uploadedAt)
	if err != nil {
		if errors.Is(err, photos.ErrInvalidImageData) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid image data format"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, photo)
}

// Delete removes a photo by the id query parameter.
func (h *PhotosHandler) Delete(c *gin.Context) {
	if !h.configured(c) {
		return
	}

	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Missing photo ID"})
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.DeleteResponse{Success: true})
}

// MethodNotAllowed answers any unsupported verb on a known route.
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, models.ErrorResponse{Error: "Method not allowed"})
}
