package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"booking-backend/apperrors"
	"booking-backend/models"
)

// HotelService lists hotels and their rooms. Listing is gated by the
// same ticket eligibility as booking: remote or hotel-less tickets
// have nothing to browse.
type HotelService struct {
	DB          *gorm.DB
	Enrollments EnrollmentLookup
	Tickets     TicketLookup
}

func NewHotelService(db *gorm.DB, enrollments EnrollmentLookup, tickets TicketLookup) *HotelService {
	return &HotelService{DB: db, Enrollments: enrollments, Tickets: tickets}
}

func (s *HotelService) checkEligibility(ctx context.Context, userID uint) error {
	enrollment, err := s.Enrollments.FindWithAddressByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if enrollment == nil {
		return apperrors.Forbidden("no enrollment")
	}

	ticket, err := s.Tickets.FindTicketByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		return err
	}
	if ticket == nil {
		return apperrors.Forbidden("ticket not found")
	}
	if ticket.TicketType.IsRemote {
		return apperrors.Forbidden("ticket type is remote")
	}
	if !ticket.TicketType.IncludesHotel {
		return apperrors.Forbidden("ticket type does not include hotel")
	}
	if ticket.Status != models.TicketStatusPaid {
		return apperrors.Forbidden("ticket not paid")
	}
	return nil
}

func (s *HotelService) GetHotels(ctx context.Context, userID uint) ([]models.Hotel, error) {
	if err := s.checkEligibility(ctx, userID); err != nil {
		return nil, err
	}

	var hotels []models.Hotel
	if err := s.DB.WithContext(ctx).Find(&hotels).Error; err != nil {
		return nil, err
	}
	if len(hotels) == 0 {
		return nil, apperrors.NotFound("no hotels available")
	}
	return hotels, nil
}

func (s *HotelService) GetHotelWithRooms(ctx context.Context, userID, hotelID uint) (*models.Hotel, error) {
	if err := s.checkEligibility(ctx, userID); err != nil {
		return nil, err
	}

	var hotel models.Hotel
	err := s.DB.WithContext(ctx).
		Preload("Rooms").
		First(&hotel, hotelID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("hotel not found")
	}
	if err != nil {
		return nil, err
	}
	return &hotel, nil
}
