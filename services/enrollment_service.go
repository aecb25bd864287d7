package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"booking-backend/models"
)

// EnrollmentLookup resolves a user to their event enrollment.
type EnrollmentLookup interface {
	FindWithAddressByUserID(ctx context.Context, userID uint) (*models.Enrollment, error)
}

// EnrollmentService wraps *gorm.DB for enrollment reads. Enrollment
// management itself lives elsewhere; this service only resolves.
type EnrollmentService struct {
	DB *gorm.DB
}

func NewEnrollmentService(db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{DB: db}
}

func (s *EnrollmentService) FindWithAddressByUserID(ctx context.Context, userID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := s.DB.WithContext(ctx).
		Preload("Address").
		Where("user_id = ?", userID).
		First(&enrollment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}
