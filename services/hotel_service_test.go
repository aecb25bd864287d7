package services

import (
	"context"
	"testing"

	"booking-backend/apperrors"
	"booking-backend/models"
)

// The eligibility gate runs before any hotel query, so these paths
// need no database.

func TestGetHotelsForbiddenWithoutEnrollment(t *testing.T) {
	enrollments := &mockEnrollmentLookup{
		findFunc: func(ctx context.Context, userID uint) (*models.Enrollment, error) {
			return nil, nil
		},
	}
	svc := NewHotelService(nil, enrollments, &mockTicketLookup{})

	_, err := svc.GetHotels(context.Background(), 42)
	if !apperrors.IsKind(err, apperrors.KindForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestGetHotelsForbiddenRemoteTicket(t *testing.T) {
	tickets := &mockTicketLookup{
		findFunc: func(ctx context.Context, enrollmentID uint) (*models.Ticket, error) {
			ticket := paidHotelTicket()
			ticket.TicketType.IsRemote = true
			return ticket, nil
		},
	}
	svc := NewHotelService(nil, &mockEnrollmentLookup{}, tickets)

	_, err := svc.GetHotels(context.Background(), 42)
	if !apperrors.IsKind(err, apperrors.KindForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestGetHotelWithRoomsForbiddenUnpaidTicket(t *testing.T) {
	tickets := &mockTicketLookup{
		findFunc: func(ctx context.Context, enrollmentID uint) (*models.Ticket, error) {
			ticket := paidHotelTicket()
			ticket.Status = models.TicketStatusReserved
			return ticket, nil
		},
	}
	svc := NewHotelService(nil, &mockEnrollmentLookup{}, tickets)

	_, err := svc.GetHotelWithRooms(context.Background(), 42, 1)
	if !apperrors.IsKind(err, apperrors.KindForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}
