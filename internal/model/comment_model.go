package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentModel references its target by (EntityID, EntityType); no foreign
// key is enforced across the three content tables.
type CommentModel struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Author     string    `json:"author"`
	PostedDate time.Time `json:"posted_date"`
	EntityID   string    `gorm:"type:uuid;not null;index" json:"entity_id"`
	EntityType string    `gorm:"type:varchar(20);not null" json:"entity_type"`
}

func (CommentModel) TableName() string {
	return "comments"
}

func (c *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
