package models

import (
	"time"

	"gorm.io/gorm"
)

// Room is a bookable unit with a fixed capacity. Capacity is the
// maximum number of simultaneous bookings; it is never mutated here.
type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"column:name;type:varchar(50)" json:"name"`
	Capacity int    `gorm:"column:capacity" json:"capacity"`
	HotelID  uint   `gorm:"column:hotel_id;index" json:"hotelId"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Hotel Hotel `gorm:"foreignKey:HotelID;references:ID" json:"-"`
}
