package http

import (
	"errors"
	"net/http"

	"dawah-portal/internal/entity"
	"dawah-portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

type VideoHandler struct {
	videoUseCase usecase.VideoUseCase
}

func NewVideoHandler(videoUseCase usecase.VideoUseCase) *VideoHandler {
	return &VideoHandler{videoUseCase: videoUseCase}
}

type VideoRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	VideoURL     string   `json:"videoUrl" binding:"required"`
	ThumbnailURL string   `json:"thumbnailUrl"`
	CategoryID   string   `json:"categoryId"`
	Author       string   `json:"author"`
	Duration     int      `json:"duration" binding:"required,gt=0"`
	Tags         []string `json:"tags"`
}

func (r *VideoRequest) toEntity() *entity.Video {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return &entity.Video{
		Title:        r.Title,
		Description:  r.Description,
		VideoURL:     r.VideoURL,
		ThumbnailURL: r.ThumbnailURL,
		CategoryID:   r.CategoryID,
		Author:       r.Author,
		Duration:     r.Duration,
		Tags:         tags,
	}
}

// List godoc
// @Summary      List all videos
// @Tags         videos
// @Produce      json
// @Success      200  {array}  entity.Video
// @Router       /videos [get]
func (h *VideoHandler) List(c *gin.Context) {
	videos, err := h.videoUseCase.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch videos"})
		return
	}
	c.JSON(http.StatusOK, videos)
}

// Get godoc
// @Summary      Get a video
// @Description  Returns one video and counts the view
// @Tags         videos
// @Produce      json
// @Param        id path string true "Video ID"
// @Success      200  {object}  entity.Video
// @Failure      404  {object}  map[string]string
// @Router       /videos/{id} [get]
func (h *VideoHandler) Get(c *gin.Context) {
	video, err := h.videoUseCase.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch video"})
		return
	}
	c.JSON(http.StatusOK, video)
}

// ListByCategory godoc
// @Summary      List videos in a category
// @Tags         videos
// @Produce      json
// @Param        category path string true "Category name"
// @Success      200  {array}  entity.Video
// @Router       /videos/category/{category} [get]
func (h *VideoHandler) ListByCategory(c *gin.Context) {
	videos, err := h.videoUseCase.ListByCategory(c.Param("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch videos"})
		return
	}
	c.JSON(http.StatusOK, videos)
}

// Create godoc
// @Summary      Create a video
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        request body VideoRequest true "Video payload"
// @Success      201  {object}  entity.Video
// @Failure      400  {object}  map[string]string
// @Router       /videos [post]
func (h *VideoHandler) Create(c *gin.Context) {
	var req VideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	video, err := h.videoUseCase.Create(req.toEntity())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create video"})
		return
	}
	c.JSON(http.StatusCreated, video)
}

// Update godoc
// @Summary      Update a video
// @Description  Full overwrite of the mutable fields; views and published date are preserved
// @Tags         videos
// @Accept       json
// @Produce      json
// @Param        id path string true "Video ID"
// @Param        request body VideoRequest true "Video payload"
// @Success      200  {object}  entity.Video
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /videos/{id} [put]
func (h *VideoHandler) Update(c *gin.Context) {
	var req VideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	video, err := h.videoUseCase.Update(c.Param("id"), req.toEntity())
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update video"})
		return
	}
	c.JSON(http.StatusOK, video)
}

// Delete godoc
// @Summary      Delete a video
// @Tags         videos
// @Param        id path string true "Video ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /videos/{id} [delete]
func (h *VideoHandler) Delete(c *gin.Context) {
	if err := h.videoUseCase.Delete(c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Video not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete video"})
		return
	}
	c.Status(http.StatusNoContent)
}
