package persistent

import (
	"errors"
	"testing"
	"time"

	"dawah-portal/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedArticle(t *testing.T, repo ArticleRepository, article *entity.Article) *entity.Article {
	t.Helper()
	require.NoError(t, repo.Create(article))
	return article
}

func TestArticleRepository_TagsRoundTrip(t *testing.T) {
	repo := NewArticleRepository(setupTestDB(t))

	article := seedArticle(t, repo, &entity.Article{
		Title:         "The Pillars of Islam",
		Content:       "An introduction.",
		Author:        "Ahmad",
		PublishedDate: time.Now().UTC(),
		Tags:          []string{"basics", "pillars", "faith"},
	})

	stored, err := repo.GetByID(article.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"basics", "pillars", "faith"}, stored.Tags)
}

func TestArticleRepository_EmptyTags(t *testing.T) {
	repo := NewArticleRepository(setupTestDB(t))

	article := seedArticle(t, repo, &entity.Article{
		Title:         "Untagged",
		Content:       "No tags here.",
		Author:        "Ahmad",
		PublishedDate: time.Now().UTC(),
	})

	stored, err := repo.GetByID(article.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.Tags)
	assert.Empty(t, stored.Tags)
}

func TestArticleRepository_IncrementViews(t *testing.T) {
	repo := NewArticleRepository(setupTestDB(t))

	article := seedArticle(t, repo, &entity.Article{
		Title:         "Viewed often",
		Content:       "popular",
		Author:        "Ahmad",
		PublishedDate: time.Now().UTC(),
	})

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.IncrementViews(article.ID))
	}

	stored, err := repo.GetByID(article.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Views)
}

func TestArticleRepository_ListByCategory_CaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	articles := NewArticleRepository(db)
	categories := NewCategoryRepository(db)

	category := &entity.Category{Name: "Aqeedah", Type: entity.CategoryTypeArticle}
	require.NoError(t, categories.Create(category))

	seedArticle(t, articles, &entity.Article{
		Title:         "On Tawheed",
		Content:       "...",
		Author:        "Ahmad",
		CategoryID:    category.ID,
		PublishedDate: time.Now().UTC(),
	})
	seedArticle(t, articles, &entity.Article{
		Title:         "Uncategorized",
		Content:       "...",
		Author:        "Ahmad",
		PublishedDate: time.Now().UTC(),
	})

	matched, err := articles.ListByCategory("aqeedah")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "On Tawheed", matched[0].Title)
	require.NotNil(t, matched[0].Category)
	assert.Equal(t, "Aqeedah", matched[0].Category.Name)

	matched, err = articles.ListByCategory("unknown")
	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestArticleRepository_List_NewestFirst(t *testing.T) {
	repo := NewArticleRepository(setupTestDB(t))

	older := time.Date(2023, 1, 10, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	seedArticle(t, repo, &entity.Article{Title: "Older", Content: "...", Author: "A", PublishedDate: older})
	seedArticle(t, repo, &entity.Article{Title: "Newer", Content: "...", Author: "A", PublishedDate: newer})

	listed, err := repo.List()
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "Newer", listed[0].Title)
	assert.Equal(t, "Older", listed[1].Title)
}

func TestArticleRepository_Update_NotFound(t *testing.T) {
	repo := NewArticleRepository(setupTestDB(t))

	err := repo.Update(&entity.Article{ID: "missing-id", Title: "nope"})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestArticleRepository_Update_PreservesPublishedDateAndViews(t *testing.T) {
	repo := NewArticleRepository(setupTestDB(t))

	published := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	article := seedArticle(t, repo, &entity.Article{
		Title:         "Before edit",
		Content:       "...",
		Author:        "Ahmad",
		PublishedDate: published,
	})
	require.NoError(t, repo.IncrementViews(article.ID))
	require.NoError(t, repo.IncrementViews(article.ID))

	article.Title = "After edit"
	article.ImageURL = "https://example.com/new.jpg"
	require.NoError(t, repo.Update(article))

	stored, err := repo.GetByID(article.ID)
	require.NoError(t, err)
	assert.Equal(t, "After edit", stored.Title)
	assert.Equal(t, "https://example.com/new.jpg", stored.ImageURL)
	assert.Equal(t, 2, stored.Views)
	assert.Equal(t, published.Unix(), stored.PublishedDate.Unix())
}
