package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryModel struct {
	ID          string `gorm:"type:uuid;primary_key" json:"id"`
	Name        string `gorm:"not null;index" json:"name"`
	Description string `json:"description"`
	Type        string `gorm:"type:varchar(20);not null" json:"type"`
}

func (CategoryModel) TableName() string {
	return "categories"
}

func (c *CategoryModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
