package http

import (
	"errors"
	"net/http"

	"dawah-portal/internal/entity"
	"dawah-portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	qnaUseCase usecase.QnAUseCase
}

func NewQuestionHandler(qnaUseCase usecase.QnAUseCase) *QuestionHandler {
	return &QuestionHandler{qnaUseCase: qnaUseCase}
}

type QuestionRequest struct {
	Title      string   `json:"title" binding:"required"`
	Content    string   `json:"content" binding:"required"`
	Author     string   `json:"author"`
	CategoryID string   `json:"categoryId"`
	Tags       []string `json:"tags"`
}

func (r *QuestionRequest) toEntity() *entity.Question {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return &entity.Question{
		Title:      r.Title,
		Content:    r.Content,
		Author:     r.Author,
		CategoryID: r.CategoryID,
		Tags:       tags,
	}
}

type AnswerRequest struct {
	Content string `json:"content" binding:"required"`
	Author  string `json:"author"`
}

// List godoc
// @Summary      List all questions
// @Tags         questions
// @Produce      json
// @Success      200  {array}  entity.Question
// @Router       /questions [get]
func (h *QuestionHandler) List(c *gin.Context) {
	questions, err := h.qnaUseCase.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch questions"})
		return
	}
	c.JSON(http.StatusOK, questions)
}

// Get godoc
// @Summary      Get a question with its answers
// @Description  Returns one question and counts the view
// @Tags         questions
// @Produce      json
// @Param        id path string true "Question ID"
// @Success      200  {object}  entity.Question
// @Failure      404  {object}  map[string]string
// @Router       /questions/{id} [get]
func (h *QuestionHandler) Get(c *gin.Context) {
	question, err := h.qnaUseCase.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch question"})
		return
	}
	c.JSON(http.StatusOK, question)
}

// ListByCategory godoc
// @Summary      List questions in a category
// @Tags         questions
// @Produce      json
// @Param        category path string true "Category name"
// @Success      200  {array}  entity.Question
// @Router       /questions/category/{category} [get]
func (h *QuestionHandler) ListByCategory(c *gin.Context) {
	questions, err := h.qnaUseCase.ListByCategory(c.Param("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch questions"})
		return
	}
	c.JSON(http.StatusOK, questions)
}

// Create godoc
// @Summary      Ask a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body QuestionRequest true "Question payload"
// @Success      201  {object}  entity.Question
// @Failure      400  {object}  map[string]string
// @Router       /questions [post]
func (h *QuestionHandler) Create(c *gin.Context) {
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question, err := h.qnaUseCase.Create(req.toEntity())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create question"})
		return
	}
	c.JSON(http.StatusCreated, question)
}

// Update godoc
// @Summary      Update a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        id path string true "Question ID"
// @Param        request body QuestionRequest true "Question payload"
// @Success      200  {object}  entity.Question
// @Failure      404  {object}  map[string]string
// @Router       /questions/{id} [put]
func (h *QuestionHandler) Update(c *gin.Context) {
	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question, err := h.qnaUseCase.Update(c.Param("id"), req.toEntity())
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update question"})
		return
	}
	c.JSON(http.StatusOK, question)
}

// AddAnswer godoc
// @Summary      Answer a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        id path string true "Question ID"
// @Param        request body AnswerRequest true "Answer payload"
// @Success      201  {object}  entity.Answer
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /questions/{id}/answers [post]
func (h *QuestionHandler) AddAnswer(c *gin.Context) {
	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answer, err := h.qnaUseCase.AddAnswer(c.Param("id"), &entity.Answer{
		Content: req.Content,
		Author:  req.Author,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create answer"})
		return
	}
	c.JSON(http.StatusCreated, answer)
}

// AcceptAnswer godoc
// @Summary      Mark an answer as accepted
// @Description  Clears any previously accepted answer of the question first
// @Tags         questions
// @Produce      json
// @Param        id path string true "Question ID"
// @Param        answerId path string true "Answer ID"
// @Success      200  {object}  entity.Answer
// @Failure      404  {object}  map[string]string
// @Router       /questions/{id}/answers/{answerId}/accept [put]
func (h *QuestionHandler) AcceptAnswer(c *gin.Context) {
	answer, err := h.qnaUseCase.AcceptAnswer(c.Param("id"), c.Param("answerId"))
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Answer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to accept answer"})
		return
	}
	c.JSON(http.StatusOK, answer)
}

// Delete godoc
// @Summary      Delete a question and its answers
// @Tags         questions
// @Param        id path string true "Question ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /questions/{id} [delete]
func (h *QuestionHandler) Delete(c *gin.Context) {
	if err := h.qnaUseCase.Delete(c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete question"})
		return
	}
	c.Status(http.StatusNoContent)
}
