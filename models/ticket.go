package models

import (
	"time"

	"gorm.io/gorm"
)

// Ticket statuses. Only PAID grants booking eligibility.
const (
	TicketStatusReserved = "RESERVED"
	TicketStatusPaid     = "PAID"
)

// TicketType governs what a purchased ticket allows: remote tickets
// never touch a hotel, and in-person tickets may or may not include one.
type TicketType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name          string  `gorm:"column:name;type:varchar(255)" json:"name"`
	Price         float64 `gorm:"column:price" json:"price"`
	IsRemote      bool    `gorm:"column:is_remote" json:"isRemote"`
	IncludesHotel bool    `gorm:"column:includes_hotel" json:"includesHotel"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Ticket struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TicketTypeID uint   `gorm:"column:ticket_type_id;index" json:"ticketTypeId"`
	EnrollmentID uint   `gorm:"column:enrollment_id;index" json:"enrollmentId"`
	Status       string `gorm:"column:status;size:32" json:"status"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	TicketType TicketType `gorm:"foreignKey:TicketTypeID;references:ID" json:"TicketType"`
	Enrollment Enrollment `gorm:"foreignKey:EnrollmentID;references:ID" json:"-"`
}
