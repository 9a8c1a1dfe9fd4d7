package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID       string `gorm:"type:uuid;primary_key" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	// Password holds the lowercase hex sha256 digest of the password
	Password string `gorm:"not null" json:"-"`
	Name     string `json:"name"`
	Role     string `gorm:"type:varchar(20);default:'User'" json:"role"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
