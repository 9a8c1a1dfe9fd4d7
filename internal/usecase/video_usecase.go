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

type VideoUseCase interface {
	List() ([]*entity.Video, error)
	Get(id string) (*entity.Video, error)
	ListByCategory(categoryName string) ([]*entity.Video, error)
	Create(video *entity.Video) (*entity.Video, error)
	Update(id string, video *entity.Video) (*entity.Video, error)
	Delete(id string) error
}

type videoUseCase struct {
	videoRepo persistent.VideoRepository
	logger    *logger.Logger
}

func NewVideoUseCase(videoRepo persistent.VideoRepository, logger *logger.Logger) VideoUseCase {
	return &videoUseCase{
		videoRepo: videoRepo,
		logger:    logger,
	}
}

func (uc *videoUseCase) List() ([]*entity.Video, error) {
	return uc.videoRepo.List()
}

// Get returns the video and counts the view, same contract as articles.
func (uc *videoUseCase) Get(id string) (*entity.Video, error) {
	video, err := uc.videoRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := uc.videoRepo.IncrementViews(id); err != nil {
		uc.logger.Error("Failed to increment views for video %s: %v", id, err)
		return nil, fmt.Errorf("failed to record view: %w", err)
	}
	video.Views++

	return video, nil
}

func (uc *videoUseCase) ListByCategory(categoryName string) ([]*entity.Video, error) {
	return uc.videoRepo.ListByCategory(categoryName)
}

func (uc *videoUseCase) Create(video *entity.Video) (*entity.Video, error) {
	video.ID = ""
	video.PublishedDate = time.Now()
	video.Views = 0

	if err := uc.videoRepo.Create(video); err != nil {
		uc.logger.Error("Failed to create video: %v", err)
		return nil, fmt.Errorf("failed to create video: %w", err)
	}
	return video, nil
}

func (uc *videoUseCase) Update(id string, video *entity.Video) (*entity.Video, error) {
	video.ID = id
	if err := uc.videoRepo.Update(video); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return uc.videoRepo.GetByID(id)
}

func (uc *videoUseCase) Delete(id string) error {
	if err := uc.videoRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
