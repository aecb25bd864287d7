package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Hotel struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name string `gorm:"column:name;type:varchar(255)" json:"name"`

	// JSON array of image URLs, e.g. ["https://.../front.jpg"].
	Images datatypes.JSON `gorm:"column:images" json:"images,omitempty"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Rooms []Room `gorm:"foreignKey:HotelID" json:"Rooms,omitempty"`
}
