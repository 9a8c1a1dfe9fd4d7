package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionModel struct {
	ID         string  `gorm:"type:uuid;primary_key" json:"id"`
	Title      string  `gorm:"not null" json:"title"`
	Content    string  `gorm:"type:text" json:"content"`
	Author     string  `json:"author"`
	CategoryID *string `gorm:"type:uuid;index" json:"category_id"`
	Category   *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category"`
	AskedDate  time.Time `gorm:"index" json:"asked_date"`
	Views      int     `gorm:"default:0" json:"views"`
	Tags       string  `json:"tags"`
	Answers    []AnswerModel `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"answers"`
}

func (QuestionModel) TableName() string {
	return "questions"
}

func (q *QuestionModel) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.New().String()
	}
	return nil
}

type AnswerModel struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	QuestionID   string    `gorm:"type:uuid;not null;index" json:"question_id"`
	Content      string    `gorm:"type:text;not null" json:"content"`
	Author       string    `json:"author"`
	AnsweredDate time.Time `json:"answered_date"`
	Votes        int       `gorm:"default:0" json:"votes"`
	IsAccepted   bool      `gorm:"default:false" json:"is_accepted"`
}

func (AnswerModel) TableName() string {
	return "answers"
}

func (a *AnswerModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
