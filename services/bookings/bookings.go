// Package bookings wraps booking submission and the provider's
// accept/decline responses.
package bookings

import (
	"context"
	"fmt"

	"servizo/api"
	"servizo/models"
)

// Collections holds both sides of the user's bookings: requests they made as
// a customer and requests made against their own services.
type Collections struct {
	Customer []models.Booking
	Provider []models.Booking
}

// BookingService drives the booking flows.
type BookingService interface {
	Submit(ctx context.Context, token string, draft models.BookingDraft) (*models.Booking, error)
	Refresh(ctx context.Context, token string) (Collections, error)
	Respond(ctx context.Context, token, bookingID, status string) (*models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	API *api.Client
}

// Submit sends one booking request. A single attempt; the caller's redirect
// is what guards against duplicate submissions.
func (s *DefaultBookingService) Submit(ctx context.Context, token string, draft models.BookingDraft) (*models.Booking, error) {
	return s.API.CreateBooking(ctx, token, draft)
}

// Refresh re-fetches both collections together, matching the dashboard's
// refresh-after-any-mutation behavior.
func (s *DefaultBookingService) Refresh(ctx context.Context, token string) (Collections, error) {
	customer, err := s.API.ListBookings(ctx, token, models.RoleCustomer)
	if err != nil {
		return Collections{}, err
	}
	provider, err := s.API.ListBookings(ctx, token, models.RoleProvider)
	if err != nil {
		return Collections{}, err
	}
	return Collections{Customer: customer, Provider: provider}, nil
}

// Respond records the provider's decision. Only accept/decline are valid
// transitions from this client.
func (s *DefaultBookingService) Respond(ctx context.Context, token, bookingID, status string) (*models.Booking, error) {
	if status != models.BookingAccepted && status != models.BookingDeclined {
		return nil, fmt.Errorf("unsupported booking status %q", status)
	}
	return s.API.UpdateBookingStatus(ctx, token, bookingID, status)
}
