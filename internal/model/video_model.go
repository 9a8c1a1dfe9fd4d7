package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VideoModel struct {
	ID            string  `gorm:"type:uuid;primary_key" json:"id"`
	Title         string  `gorm:"not null" json:"title"`
	Description   string  `gorm:"type:text" json:"description"`
	VideoURL      string  `gorm:"type:varchar(500);not null" json:"video_url"`
	ThumbnailURL  string  `gorm:"type:varchar(500)" json:"thumbnail_url"`
	CategoryID    *string `gorm:"type:uuid;index" json:"category_id"`
	Category      *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category"`
	Author        string  `json:"author"`
	PublishedDate time.Time `gorm:"index" json:"published_date"`
	Views         int     `gorm:"default:0" json:"views"`
	Duration      int     `gorm:"not null" json:"duration"`
	Tags          string  `json:"tags"`
}

func (VideoModel) TableName() string {
	return "videos"
}

func (v *VideoModel) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
