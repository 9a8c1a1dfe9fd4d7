package persistent

import (
	"dawah-portal/internal/entity"
	"dawah-portal/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ArticleRepository interface {
	Create(article *entity.Article) error
	GetByID(id string) (*entity.Article, error)
	List() ([]*entity.Article, error)
	ListByCategory(categoryName string) ([]*entity.Article, error)
	Update(article *entity.Article) error
	Delete(id string) error
	IncrementViews(id string) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *entity.Article) error {
	articleModel := ToArticleModel(article)
	if articleModel.ID == "" {
		articleModel.ID = uuid.New().String()
	}
	if err := r.db.Create(articleModel).Error; err != nil {
		return err
	}
	*article = *ToArticleEntity(articleModel)
	return nil
}

func (r *articleRepository) GetByID(id string) (*entity.Article, error) {
	var articleModel model.ArticleModel
	if err := r.db.Preload("Category").Where("id = ?", id).First(&articleModel).Error; err != nil {
		return nil, err
	}
	return ToArticleEntity(&articleModel), nil
}

func (r *articleRepository) List() ([]*entity.Article, error) {
	var articleModels []model.ArticleModel
	if err := r.db.Preload("Category").Order("published_date DESC").Find(&articleModels).Error; err != nil {
		return nil, err
	}

	articles := make([]*entity.Article, len(articleModels))
	for i := range articleModels {
		articles[i] = ToArticleEntity(&articleModels[i])
	}
	return articles, nil
}

func (r *articleRepository) ListByCategory(categoryName string) ([]*entity.Article, error) {
	var articleModels []model.ArticleModel
	err := r.db.Preload("Category").
		Joins("JOIN categories ON categories.id = articles.category_id").
		Where("LOWER(categories.name) = LOWER(?)", categoryName).
		Order("published_date DESC").
		Find(&articleModels).Error
	if err != nil {
		return nil, err
	}

	articles := make([]*entity.Article, len(articleModels))
	for i := range articleModels {
		articles[i] = ToArticleEntity(&articleModels[i])
	}
	return articles, nil
}

// Update overwrites the mutable fields only; published_date and views keep
// their stored values.
func (r *articleRepository) Update(article *entity.Article) error {
	result := r.db.Model(&model.ArticleModel{}).Where("id = ?", article.ID).
		Updates(map[string]interface{}{
			"title":       article.Title,
			"content":     article.Content,
			"author":      article.Author,
			"category_id": categoryIDModel(article.CategoryID),
			"image_url":   article.ImageURL,
			"tags":        joinTags(article.Tags),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *articleRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&model.ArticleModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *articleRepository) IncrementViews(id string) error {
	return r.db.Model(&model.ArticleModel{}).Where("id = ?", id).
		UpdateColumn("views", clause.Expr{SQL: "views + ?", Vars: []interface{}{1}}).Error
}
