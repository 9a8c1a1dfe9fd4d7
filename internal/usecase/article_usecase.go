package usecase

import (
	"errors"
	"fmt"
	"time"

	"dawah-portal/internal/entity"
	"dawah-portal/internal/repo/persistent"
	"dawah-portal/pkg/logger"

	"gorm.io/gorm"
)

type ArticleUseCase interface {
	List() ([]*entity.Article, error)
	Get(id string) (*entity.Article, error)
	ListByCategory(categoryName string) ([]*entity.Article, error)
	Create(article *entity.Article) (*entity.Article, error)
	Update(id string, article *entity.Article) (*entity.Article, error)
	Delete(id string) error
}

type articleUseCase struct {
	articleRepo persistent.ArticleRepository
	logger      *logger.Logger
}

func NewArticleUseCase(articleRepo persistent.ArticleRepository, logger *logger.Logger) ArticleUseCase {
	return &articleUseCase{
		articleRepo: articleRepo,
		logger:      logger,
	}
}

func (uc *articleUseCase) List() ([]*entity.Article, error) {
	return uc.articleRepo.List()
}

// Get returns the article and counts the read: the stored view counter is
// incremented on every fetch, repeated fetches included.
func (uc *articleUseCase) Get(id string) (*entity.Article, error) {
	article, err := uc.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := uc.articleRepo.IncrementViews(id); err != nil {
		uc.logger.Error("Failed to increment views for article %s: %v", id, err)
		return nil, fmt.Errorf("failed to record view: %w", err)
	}
	article.Views++

	return article, nil
}

func (uc *articleUseCase) ListByCategory(categoryName string) ([]*entity.Article, error) {
	return uc.articleRepo.ListByCategory(categoryName)
}

func (uc *articleUseCase) Create(article *entity.Article) (*entity.Article, error) {
	article.ID = ""
	article.PublishedDate = time.Now()
	article.Views = 0

	if err := uc.articleRepo.Create(article); err != nil {
		uc.logger.Error("Failed to create article: %v", err)
		return nil, fmt.Errorf("failed to create article: %w", err)
	}
	return article, nil
}

func (uc *articleUseCase) Update(id string, article *entity.Article) (*entity.Article, error) {
	article.ID = id
	if err := uc.articleRepo.Update(article); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return uc.articleRepo.GetByID(id)
}

func (uc *articleUseCase) Delete(id string) error {
	if err := uc.articleRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
