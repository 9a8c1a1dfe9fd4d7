package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dawah-portal/internal/entity"
	"dawah-portal/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockArticleUseCase is a mock implementation of ArticleUseCase
type MockArticleUseCase struct {
	mock.Mock
}

func (m *MockArticleUseCase) List() ([]*entity.Article, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Article), args.Error(1)
}

func (m *MockArticleUseCase) Get(id string) (*entity.Article, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Article), args.Error(1)
}

func (m *MockArticleUseCase) ListByCategory(categoryName string) ([]*entity.Article, error) {
	args := m.Called(categoryName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Article), args.Error(1)
}

func (m *MockArticleUseCase) Create(article *entity.Article) (*entity.Article, error) {
	args := m.Called(article)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Article), args.Error(1)
}

func (m *MockArticleUseCase) Update(id string, article *entity.Article) (*entity.Article, error) {
	args := m.Called(id, article)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Article), args.Error(1)
}

func (m *MockArticleUseCase) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

var _ usecase.ArticleUseCase = (*MockArticleUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestGetArticle_Success(t *testing.T) {
	mockUseCase := new(MockArticleUseCase)
	handler := NewArticleHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/articles/:id", handler.Get)

	mockArticle := &entity.Article{
		ID:            "article-123",
		Title:         "The Pillars of Islam",
		Content:       "An introduction.",
		Author:        "Ahmad",
		PublishedDate: time.Now(),
		Views:         6,
		Tags:          []string{"basics"},
	}
	mockUseCase.On("Get", "article-123").Return(mockArticle, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/articles/article-123", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "The Pillars of Islam", response["title"])
	assert.Equal(t, float64(6), response["views"])

	mockUseCase.AssertExpectations(t)
}

func TestGetArticle_NotFound(t *testing.T) {
	mockUseCase := new(MockArticleUseCase)
	handler := NewArticleHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/articles/:id", handler.Get)

	mockUseCase.On("Get", "missing").Return(nil, usecase.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/articles/missing", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestListArticles_Success(t *testing.T) {
	mockUseCase := new(MockArticleUseCase)
	handler := NewArticleHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/articles", handler.List)

	mockArticles := []*entity.Article{
		{ID: "article-1", Title: "First"},
		{ID: "article-2", Title: "Second"},
	}
	mockUseCase.On("List").Return(mockArticles, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/articles", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response, 2)

	mockUseCase.AssertExpectations(t)
}

func TestCreateArticle_Success(t *testing.T) {
	mockUseCase := new(MockArticleUseCase)
	handler := NewArticleHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/articles", handler.Create)

	created := &entity.Article{
		ID:      "article-123",
		Title:   "New Article",
		Content: "Body",
		Tags:    []string{},
	}
	mockUseCase.On("Create", mock.AnythingOfType("*entity.Article")).Return(created, nil)

	body := `{"title":"New Article","content":"Body"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/articles", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "article-123", response["id"])

	mockUseCase.AssertExpectations(t)
}

func TestCreateArticle_MissingTitle(t *testing.T) {
	mockUseCase := new(MockArticleUseCase)
	handler := NewArticleHandler(mockUseCase)

	router := setupTestRouter()
	router.POST("/articles", handler.Create)

	body := `{"content":"Body without a title"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/articles", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockUseCase.AssertNotCalled(t, "Create")
}

func TestUpdateArticle_NotFound(t *testing.T) {
	mockUseCase := new(MockArticleUseCase)
	handler := NewArticleHandler(mockUseCase)

	router := setupTestRouter()
	router.PUT("/articles/:id", handler.Update)

	mockUseCase.On("Update", "missing", mock.AnythingOfType("*entity.Article")).
		Return(nil, usecase.ErrNotFound)

	body := `{"title":"Edited","content":"Body"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/articles/missing", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestDeleteArticle_Success(t *testing.T) {
	mockUseCase := new(MockArticleUseCase)
	handler := NewArticleHandler(mockUseCase)

	router := setupTestRouter()
	router.DELETE("/articles/:id", handler.Delete)

	mockUseCase.On("Delete", "article-123").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/articles/article-123", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	mockUseCase.AssertExpectations(t)
}

func TestDeleteArticle_NotFound(t *testing.T) {
	mockUseCase := new(MockArticleUseCase)
	handler := NewArticleHandler(mockUseCase)

	router := setupTestRouter()
	router.DELETE("/articles/:id", handler.Delete)

	mockUseCase.On("Delete", "missing").Return(usecase.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/articles/missing", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestListArticlesByCategory_Error(t *testing.T) {
	mockUseCase := new(MockArticleUseCase)
	handler := NewArticleHandler(mockUseCase)

	router := setupTestRouter()
	router.GET("/articles/category/:category", handler.ListByCategory)

	mockUseCase.On("ListByCategory", "aqeedah").Return(nil, errors.New("db down"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/articles/category/aqeedah", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	mockUseCase.AssertExpectations(t)
}
