package booking

import (
	"context"

	"drivio/models"

	"go.uber.org/zap"
)

// GetBooking returns the renter's booking, serving the cached snapshot
// when fresh and otherwise refetching. Derived commercial fields are
// recomputed locally; eligibility flags are attached so the screen can
// decide which actions to show.
func (s *DefaultBookingService) GetBooking(ctx context.Context, renterID, id string) (*models.Booking, error) {
	if cached, err := s.Store.GetSnapshot(ctx, id); err == nil && cached != nil {
		if cached.RenterID != renterID {
			return nil, NewPermissionError("booking belongs to another renter")
		}
		return cached, nil
	}
	return s.refetch(ctx, renterID, id)
}

func (s *DefaultBookingService) refetch(ctx context.Context, renterID, id string) (*models.Booking, error) {
	b, err := s.fetchOwned(ctx, renterID, id)
	if err != nil {
		return nil, err
	}
	if err := s.Store.SaveSnapshot(ctx, b); err != nil {
		s.logger().Warn("failed to cache booking snapshot", zap.String("booking_id", id), zap.Error(err))
	}
	return b, nil
}

// fetchOwned fetches a fresh copy from the gateway, normalizes it and
// enforces ownership.
func (s *DefaultBookingService) fetchOwned(ctx context.Context, renterID, id string) (*models.Booking, error) {
	b, err := s.Gateway.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.RenterID != renterID {
		return nil, NewPermissionError("booking belongs to another renter")
	}
	Normalize(b)
	return b, nil
}

// ListBookings pages through the renter's bookings, recomputing derived
// fields on each entry.
func (s *DefaultBookingService) ListBookings(ctx context.Context, renterID string, page, pageSize int) ([]models.Booking, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	bookings, total, err := s.Gateway.ListBookings(ctx, renterID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	for i := range bookings {
		Normalize(&bookings[i])
	}
	return bookings, total, nil
}
