package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArticleModel struct {
	ID            string  `gorm:"type:uuid;primary_key" json:"id"`
	Title         string  `gorm:"not null" json:"title"`
	Content       string  `gorm:"type:text" json:"content"`
	Author        string  `json:"author"`
	CategoryID    *string `gorm:"type:uuid;index" json:"category_id"`
	Category      *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category"`
	ImageURL      string  `gorm:"type:varchar(500)" json:"image_url"`
	PublishedDate time.Time `gorm:"index" json:"published_date"`
	Views         int     `gorm:"default:0" json:"views"`
	// Tags is the comma-joined persistence form of the tag list
	Tags string `json:"tags"`
}

func (ArticleModel) TableName() string {
	return "articles"
}

func (a *ArticleModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
