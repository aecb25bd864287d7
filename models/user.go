package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email    string `gorm:"column:email;uniqueIndex;type:varchar(255)" json:"email"`
	Password string `gorm:"column:password;type:varchar(255)" json:"-"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
