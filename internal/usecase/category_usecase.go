package usecase

import (
	"errors"
	"fmt"

	"dawah-portal/internal/entity"
	"dawah-portal/internal/repo/persistent"
	"dawah-portal/pkg/logger"

	"gorm.io/gorm"
)

type CategoryUseCase interface {
	List(categoryType string) ([]*entity.Category, error)
	Get(id string) (*entity.Category, error)
	Create(category *entity.Category) (*entity.Category, error)
	Update(id string, category *entity.Category) error
	Delete(id string) error
}

type categoryUseCase struct {
	categoryRepo persistent.CategoryRepository
	logger       *logger.Logger
}

func NewCategoryUseCase(categoryRepo persistent.CategoryRepository, logger *logger.Logger) CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *categoryUseCase) List(categoryType string) ([]*entity.Category, error) {
	return uc.categoryRepo.List(categoryType)
}

func (uc *categoryUseCase) Get(id string) (*entity.Category, error) {
	category, err := uc.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return category, nil
}

func (uc *categoryUseCase) Create(category *entity.Category) (*entity.Category, error) {
	category.ID = ""
	if err := uc.categoryRepo.Create(category); err != nil {
		uc.logger.Error("Failed to create category: %v", err)
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return category, nil
}

func (uc *categoryUseCase) Update(id string, category *entity.Category) error {
	category.ID = id
	if err := uc.categoryRepo.Update(category); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (uc *categoryUseCase) Delete(id string) error {
	if err := uc.categoryRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
