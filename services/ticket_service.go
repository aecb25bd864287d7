package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"booking-backend/models"
)

// TicketLookup resolves an enrollment to its ticket and ticket type.
type TicketLookup interface {
	FindTicketByEnrollmentID(ctx context.Context, enrollmentID uint) (*models.Ticket, error)
}

type TicketService struct {
	DB *gorm.DB
}

func NewTicketService(db *gorm.DB) *TicketService {
	return &TicketService{DB: db}
}

func (s *TicketService) FindTicketByEnrollmentID(ctx context.Context, enrollmentID uint) (*models.Ticket, error) {
	var ticket models.Ticket
	err := s.DB.WithContext(ctx).
		Preload("TicketType").
		Where("enrollment_id = ?", enrollmentID).
		First(&ticket).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}
