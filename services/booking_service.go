package services

import (
	"context"

	"go.uber.org/zap"

	"booking-backend/apperrors"
	"booking-backend/events"
	"booking-backend/models"
	"booking-backend/repositories"
	"booking-backend/utils"
)

// BookingID wraps the identifier returned by create/update.
type BookingID struct {
	BookingID uint `json:"bookingId"`
}

// BookingService is the admission engine: it gates booking creation
// and reassignment on ticket state and room capacity. It holds no
// state between calls; capacity enforcement past the pre-check is
// delegated to the repository's atomic writes.
type BookingService struct {
	Enrollments EnrollmentLookup
	Tickets     TicketLookup
	Rooms       RoomDirectory
	Bookings    repositories.BookingRepository
	Publisher   *events.Publisher
}

func NewBookingService(
	enrollments EnrollmentLookup,
	tickets TicketLookup,
	rooms RoomDirectory,
	bookings repositories.BookingRepository,
	publisher *events.Publisher,
) *BookingService {
	return &BookingService{
		Enrollments: enrollments,
		Tickets:     tickets,
		Rooms:       rooms,
		Bookings:    bookings,
		Publisher:   publisher,
	}
}

// checkTicketEligibility runs the ticket-state gate shared by create
// and update. Checks run in strict order; the first failure wins.
func (s *BookingService) checkTicketEligibility(ctx context.Context, userID uint) error {
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

// Create books roomID for userID. On success exactly one booking row
// is written; on any failed check nothing is.
func (s *BookingService) Create(ctx context.Context, roomID, userID uint) (*BookingID, error) {
	if err := s.checkTicketEligibility(ctx, userID); err != nil {
		return nil, err
	}

	room, err := s.Rooms.FindRoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperrors.NotFound("room not found")
	}

	count, err := s.Bookings.CountByRoomID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if count >= int64(room.Capacity) {
		return nil, apperrors.Forbidden("room full")
	}

	// The count above is advisory only; the repository re-validates it
	// under a room row lock and refuses the insert if a concurrent
	// writer got there first.
	booking, err := s.Bookings.Create(ctx, roomID, userID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.BookingCreated, booking)
	return &BookingID{BookingID: booking.ID}, nil
}

// Find returns the caller's booking with its room. Users may always
// view their own booking, so there is no eligibility gate here.
func (s *BookingService) Find(ctx context.Context, userID uint) (*models.OutputBooking, error) {
	booking, err := s.Bookings.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, apperrors.NotFound("booking not found")
	}
	return &models.OutputBooking{ID: booking.ID, Room: booking.Room}, nil
}

// Update moves the caller's existing booking to a new room. The
// booking keeps its id; only the room assignment changes.
func (s *BookingService) Update(ctx context.Context, bookingID, roomID, userID uint) (*BookingID, error) {
	if err := s.checkTicketEligibility(ctx, userID); err != nil {
		return nil, err
	}

	room, err := s.Rooms.FindRoomByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperrors.NotFound("room not found")
	}

	current, err := s.Bookings.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, apperrors.Forbidden("user has no booking")
	}
	if current.ID != bookingID {
		return nil, apperrors.Forbidden("booking does not belong to user")
	}

	// Legacy single-occupancy probe: a capacity-1 room held by someone
	// else can be rejected without counting.
	if room.Capacity == 1 {
		occupant, err := s.Bookings.FindByRoomID(ctx, roomID)
		if err != nil {
			return nil, err
		}
		if occupant != nil && occupant.UserID != userID {
			return nil, apperrors.Forbidden("room already reserved")
		}
	}

	// Occupancy of the destination, not counting the slot the mover is
	// vacating (relevant when moving within the same room).
	count, err := s.Bookings.CountByRoomID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if current.RoomID == roomID {
		count--
	}
	if count >= int64(room.Capacity) {
		return nil, apperrors.Forbidden("room full")
	}

	booking, err := s.Bookings.UpdateRoom(ctx, bookingID, roomID, userID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.BookingMoved, booking)
	return &BookingID{BookingID: booking.ID}, nil
}

// publish is fire-and-forget: an admission decision that already
// committed must not be failed by the broker.
func (s *BookingService) publish(ctx context.Context, key string, booking *models.Booking) {
	if err := s.Publisher.PublishBooking(ctx, key, booking.ID, booking.UserID, booking.RoomID); err != nil {
		utils.GetLogger().Warn("failed to publish booking event",
			zap.String("key", key),
			zap.Uint("bookingId", booking.ID),
			zap.Error(err),
		)
	}
}
