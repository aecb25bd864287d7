package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment is the event-registration record for a user. It is a
// prerequisite for ticketing and therefore for any booking action;
// this service only ever reads it.
type Enrollment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string     `gorm:"column:name;type:varchar(255)" json:"name"`
	CPF      string     `gorm:"column:cpf;type:varchar(14)" json:"cpf"`
	Birthday *time.Time `gorm:"column:birthday" json:"birthday,omitempty"`
	Phone    string     `gorm:"column:phone;type:varchar(20)" json:"phone"`
	UserID   uint       `gorm:"column:user_id;uniqueIndex" json:"userId"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User    User      `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Address []Address `gorm:"foreignKey:EnrollmentID" json:"Address,omitempty"`
}

type Address struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CEP           string `gorm:"column:cep;type:varchar(9)" json:"cep"`
	Street        string `gorm:"column:street;type:varchar(255)" json:"street"`
	City          string `gorm:"column:city;type:varchar(255)" json:"city"`
	State         string `gorm:"column:state;type:varchar(255)" json:"state"`
	Number        string `gorm:"column:number;type:varchar(10)" json:"number"`
	Neighborhood  string `gorm:"column:neighborhood;type:varchar(255)" json:"neighborhood"`
	AddressDetail string `gorm:"column:address_detail;type:varchar(255)" json:"addressDetail,omitempty"`
	EnrollmentID  uint   `gorm:"column:enrollment_id;index" json:"enrollmentId"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
