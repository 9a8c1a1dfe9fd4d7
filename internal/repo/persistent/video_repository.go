package persistent

import (
	"dawah-portal/internal/entity"
	"dawah-portal/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VideoRepository interface {
	Create(video *entity.Video) error
	GetByID(id string) (*entity.Video, error)
	List() ([]*entity.Video, error)
	ListByCategory(categoryName string) ([]*entity.Video, error)
	Update(video *entity.Video) error
	Delete(id string) error
	IncrementViews(id string) error
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(video *entity.Video) error {
	videoModel := ToVideoModel(video)
	if videoModel.ID == "" {
		videoModel.ID = uuid.New().String()
	}
	if err := r.db.Create(videoModel).Error; err != nil {
		return err
	}
	*video = *ToVideoEntity(videoModel)
	return nil
}

func (r *videoRepository) GetByID(id string) (*entity.Video, error) {
	var videoModel model.VideoModel
	if err := r.db.Preload("Category").Where("id = ?", id).First(&videoModel).Error; err != nil {
		return nil, err
	}
	return ToVideoEntity(&videoModel), nil
}

func (r *videoRepository) List() ([]*entity.Video, error) {
	var videoModels []model.VideoModel
	if err := r.db.Preload("Category").Order("published_date DESC").Find(&videoModels).Error; err != nil {
		return nil, err
	}

	videos := make([]*entity.Video, len(videoModels))
	for i := range videoModels {
		videos[i] = ToVideoEntity(&videoModels[i])
	}
	return videos, nil
}

func (r *videoRepository) ListByCategory(categoryName string) ([]*entity.Video, error) {
	var videoModels []model.VideoModel
	err := r.db.Preload("Category").
		Joins("JOIN categories ON categories.id = videos.category_id").
		Where("LOWER(categories.name) = LOWER(?)", categoryName).
		Order("published_date DESC").
		Find(&videoModels).Error
	if err != nil {
		return nil, err
	}

	videos := make([]*entity.Video, len(videoModels))
	for i := range videoModels {
		videos[i] = ToVideoEntity(&videoModels[i])
	}
	return videos, nil
}

// Update overwrites the mutable fields only; published_date and views keep
// their stored values.
func (r *videoRepository) Update(video *entity.Video) error {
	result := r.db.Model(&model.VideoModel{}).Where("id = ?", video.ID).
		Updates(map[string]interface{}{
			"title":         video.Title,
			"description":   video.Description,
			"video_url":     video.VideoURL,
			"thumbnail_url": video.ThumbnailURL,
			"category_id":   categoryIDModel(video.CategoryID),
			"author":        video.Author,
			"duration":      video.Duration,
			"tags":          joinTags(video.Tags),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *videoRepository) Delete(id string) error {
	result := r.db.Where("id = ?", id).Delete(&model.VideoModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *videoRepository) IncrementViews(id string) error {
	return r.db.Model(&model.VideoModel{}).Where("id = ?", id).
		UpdateColumn("views", clause.Expr{SQL: "views + ?", Vars: []interface{}{1}}).Error
}
