package services

import (
	"context"
	"sync"

	"booking-backend/apperrors"
	"booking-backend/models"
)

// memoryStore is an in-memory BookingRepository with the same atomic
// contract as the SQL implementation: the capacity re-check and the
// write happen under one lock, so racing writers serialize.
type memoryStore struct {
	mu         sync.Mutex
	capacities map[uint]int
	bookings   map[uint]*models.Booking // by booking id
	byUser     map[uint]uint            // userID -> booking id
	nextID     uint
}

func newMemoryStore(capacities map[uint]int) *memoryStore {
	return &memoryStore{
		capacities: capacities,
		bookings:   make(map[uint]*models.Booking),
		byUser:     make(map[uint]uint),
		nextID:     1,
	}
}

func (s *memoryStore) countLocked(roomID uint) int64 {
	var count int64
	for _, b := range s.bookings {
		if b.RoomID == roomID {
			count++
		}
	}
	return count
}

func (s *memoryStore) roomFor(roomID uint) models.Room {
	return models.Room{ID: roomID, Capacity: s.capacities[roomID], HotelID: 1}
}

func (s *memoryStore) Create(ctx context.Context, roomID, userID uint) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byUser[userID]; exists {
		return nil, apperrors.Conflict("user already holds a booking")
	}
	if s.countLocked(roomID) >= int64(s.capacities[roomID]) {
		return nil, apperrors.Conflict("room filled up concurrently")
	}

	booking := &models.Booking{ID: s.nextID, RoomID: roomID, UserID: userID}
	s.nextID++
	s.bookings[booking.ID] = booking
	s.byUser[userID] = booking.ID
	return booking, nil
}

func (s *memoryStore) FindByRoomID(ctx context.Context, roomID uint) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookings {
		if b.RoomID == roomID {
			copied := *b
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *memoryStore) FindByUserID(ctx context.Context, userID uint) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byUser[userID]
	if !ok {
		return nil, nil
	}
	copied := *s.bookings[id]
	copied.Room = s.roomFor(copied.RoomID)
	return &copied, nil
}

func (s *memoryStore) UpdateRoom(ctx context.Context, bookingID, roomID, userID uint) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[bookingID]
	if !ok || booking.UserID != userID {
		return nil, apperrors.NotFound("booking not found for user")
	}

	var occupied int64
	for _, b := range s.bookings {
		if b.RoomID == roomID && b.UserID != userID {
			occupied++
		}
	}
	if occupied >= int64(s.capacities[roomID]) {
		return nil, apperrors.Conflict("room filled up concurrently")
	}

	booking.RoomID = roomID
	copied := *booking
	return &copied, nil
}

func (s *memoryStore) CountByRoomID(ctx context.Context, roomID uint) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countLocked(roomID), nil
}
