package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking associates one user with one room. The unique index on
// user_id enforces the one-active-booking-per-user rule at the store
// layer; capacity enforcement lives in the booking repository.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"column:user_id;uniqueIndex" json:"userId"`
	RoomID uint `gorm:"column:room_id;index" json:"roomId"`

	ReferenceCode string `gorm:"column:reference_code;size:64" json:"referenceCode,omitempty"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"Room,omitempty"`
}

// OutputBooking is the shape returned to a user viewing their own
// booking: the booking id plus the full room record.
type OutputBooking struct {
	ID   uint `json:"id"`
	Room Room `json:"Room"`
}
