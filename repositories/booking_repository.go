package repositories

import (
	"context"
	"errors"
	"fmt"

	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"booking-backend/apperrors"
	"booking-backend/models"
)

// mysqlErrDuplicateEntry is the server code for a unique-key violation.
const mysqlErrDuplicateEntry = 1062

// BookingRepository is the store contract the admission engine writes
// through. Create and UpdateRoom are atomic with respect to the room
// capacity check: the implementation must guarantee that two concurrent
// writers cannot both pass the count check and overshoot capacity.
type BookingRepository interface {
	// Create inserts a booking for userID in roomID, re-validating the
	// room's occupancy against its capacity inside the same atomic
	// operation. Returns a Conflict error when the room filled up
	// between the caller's check and the write, or when the user
	// already holds a booking.
	Create(ctx context.Context, roomID, userID uint) (*models.Booking, error)

	// FindByRoomID returns any one booking occupying the room, or nil.
	// Legacy single-occupancy probe; capacity decisions use CountByRoomID.
	FindByRoomID(ctx context.Context, roomID uint) (*models.Booking, error)

	// FindByUserID returns the user's booking with its Room, or nil.
	FindByUserID(ctx context.Context, userID uint) (*models.Booking, error)

	// UpdateRoom reassigns the user's existing booking to roomID,
	// re-validating the destination's occupancy (excluding the user's
	// own booking) inside the same atomic operation.
	UpdateRoom(ctx context.Context, bookingID, roomID, userID uint) (*models.Booking, error)

	// CountByRoomID returns the number of bookings referencing roomID.
	CountByRoomID(ctx context.Context, roomID uint) (int64, error)
}

// GormBookingRepository wraps *gorm.DB. Writes run inside a
// transaction holding SELECT ... FOR UPDATE on the room row, so the
// count-then-write section serializes per room.
type GormBookingRepository struct {
	DB *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{DB: db}
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysqldrv.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry
}

func (r *GormBookingRepository) Create(ctx context.Context, roomID, userID uint) (*models.Booking, error) {
	booking := models.Booking{
		UserID:        userID,
		RoomID:        roomID,
		ReferenceCode: uuid.NewString(),
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("room not found")
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.Booking{}).
			Where("room_id = ?", roomID).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(room.Capacity) {
			return apperrors.Conflict("room filled up concurrently")
		}

		if err := tx.Create(&booking).Error; err != nil {
			if isDuplicateEntry(err) {
				return apperrors.Conflict("user already holds a booking")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *GormBookingRepository) FindByRoomID(ctx context.Context, roomID uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.DB.WithContext(ctx).
		Where("room_id = ?", roomID).
		First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *GormBookingRepository) FindByUserID(ctx context.Context, userID uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.DB.WithContext(ctx).
		Preload("Room").
		Where("user_id = ?", userID).
		First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *GormBookingRepository) UpdateRoom(ctx context.Context, bookingID, roomID, userID uint) (*models.Booking, error) {
	var booking models.Booking

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("room not found")
			}
			return err
		}

		// The mover's own booking does not occupy a slot in the
		// destination: when moving within the same room it must not
		// count against itself.
		var count int64
		if err := tx.Model(&models.Booking{}).
			Where("room_id = ? AND user_id <> ?", roomID, userID).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(room.Capacity) {
			return apperrors.Conflict("room filled up concurrently")
		}

		result := tx.Model(&models.Booking{}).
			Where("id = ? AND user_id = ?", bookingID, userID).
			Update("room_id", roomID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.NotFound(fmt.Sprintf("booking %d not found for user", bookingID))
		}

		return tx.Where("id = ?", bookingID).First(&booking).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *GormBookingRepository) CountByRoomID(ctx context.Context, roomID uint) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Count(&count).Error
	return count, err
}
