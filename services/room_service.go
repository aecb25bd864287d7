package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"booking-backend/models"
)

// RoomDirectory resolves rooms by id.
type RoomDirectory interface {
	FindRoomByID(ctx context.Context, roomID uint) (*models.Room, error)
}

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) FindRoomByID(ctx context.Context, roomID uint) (*models.Room, error) {
	var room models.Room
	err := s.DB.WithContext(ctx).First(&room, roomID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}
