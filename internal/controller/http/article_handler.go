package http

import (
	"errors"
	"net/http"

	"dawah-portal/internal/entity"
	"dawah-portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleUseCase usecase.ArticleUseCase
}

func NewArticleHandler(articleUseCase usecase.ArticleUseCase) *ArticleHandler {
	return &ArticleHandler{articleUseCase: articleUseCase}
}

type ArticleRequest struct {
	Title      string   `json:"title" binding:"required"`
	Content    string   `json:"content" binding:"required"`
	Author     string   `json:"author"`
	CategoryID string   `json:"categoryId"`
	ImageURL   string   `json:"imageUrl"`
	Tags       []string `json:"tags"`
}

func (r *ArticleRequest) toEntity() *entity.Article {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return &entity.Article{
		Title:      r.Title,
		Content:    r.Content,
		Author:     r.Author,
		CategoryID: r.CategoryID,
		ImageURL:   r.ImageURL,
		Tags:       tags,
	}
}

// List godoc
// @Summary      List all articles
// @Description  Returns every article, newest first
// @Tags         articles
// @Produce      json
// @Success      200  {array}  entity.Article
// @Router       /articles [get]
func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.articleUseCase.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch articles"})
		return
	}
	c.JSON(http.StatusOK, articles)
}

// Get godoc
// @Summary      Get an article
// @Description  Returns one article and counts the view
// @Tags         articles
// @Produce      json
// @Param        id path string true "Article ID"
// @Success      200  {object}  entity.Article
// @Failure      404  {object}  map[string]string
// @Router       /articles/{id} [get]
func (h *ArticleHandler) Get(c *gin.Context) {
	article, err := h.articleUseCase.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch article"})
		return
	}
	c.JSON(http.StatusOK, article)
}

// ListByCategory godoc
// @Summary      List articles in a category
// @Tags         articles
// @Produce      json
// @Param        category path string true "Category name"
// @Success      200  {array}  entity.Article
// @Router       /articles/category/{category} [get]
func (h *ArticleHandler) ListByCategory(c *gin.Context) {
	articles, err := h.articleUseCase.ListByCategory(c.Param("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch articles"})
		return
	}
	c.JSON(http.StatusOK, articles)
}

// Create godoc
// @Summary      Create an article
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        request body ArticleRequest true "Article payload"
// @Success      201  {object}  entity.Article
// @Failure      400  {object}  map[string]string
// @Router       /articles [post]
func (h *ArticleHandler) Create(c *gin.Context) {
	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articleUseCase.Create(req.toEntity())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create article"})
		return
	}
	c.JSON(http.StatusCreated, article)
}

// Update godoc
// @Summary      Update an article
// @Description  Full overwrite of the mutable fields; views and published date are preserved
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        id path string true "Article ID"
// @Param        request body ArticleRequest true "Article payload"
// @Success      200  {object}  entity.Article
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /articles/{id} [put]
func (h *ArticleHandler) Update(c *gin.Context) {
	var req ArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.articleUseCase.Update(c.Param("id"), req.toEntity())
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update article"})
		return
	}
	c.JSON(http.StatusOK, article)
}

// Delete godoc
// @Summary      Delete an article
// @Tags         articles
// @Param        id path string true "Article ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /articles/{id} [delete]
func (h *ArticleHandler) Delete(c *gin.Context) {
	if err := h.articleUseCase.Delete(c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete article"})
		return
	}
	c.Status(http.StatusNoContent)
}
