package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"drivio/gateway"
	"drivio/models"

	"go.uber.org/zap"
)

// EditBooking applies a renter-initiated change to a pending booking.
// The change reason is mandatory. When the requested vehicle is sold
// out for the new dates the edit is NOT applied; the offered
// alternatives are returned instead and need explicit confirmation via
// ConfirmAlternative.
func (s *DefaultBookingService) EditBooking(ctx context.Context, renterID, id string, req models.EditRequest) (*models.Booking, []models.VehicleOption, error) {
	b, updated, alts, err := s.submitEdit(ctx, renterID, id, req)
	if err != nil {
		return nil, nil, err
	}
	if alts != nil {
		s.logger().Info("edit deferred: alternatives offered",
			zap.String("booking_id", id),
			zap.Int("alternatives", len(alts)),
		)
		return b, alts, nil
	}
	return updated, nil, nil
}

// ConfirmAlternative retries an edit with a substitute vehicle the
// renter explicitly accepted, pricing it at the substitute's own daily
// rate. The retry is never automatic.
func (s *DefaultBookingService) ConfirmAlternative(ctx context.Context, renterID, id string, req models.EditRequest) (*models.Booking, error) {
	if req.VehicleID == "" {
		return nil, NewValidationError("substitute vehicle is required")
	}
	if req.PricePerDay <= 0 {
		return nil, NewValidationError("substitute vehicle rate is required")
	}
	_, updated, alts, err := s.submitEdit(ctx, renterID, id, req)
	if err != nil {
		return nil, err
	}
	if alts != nil {
		// The substitute sold out as well; surface it as a conflict so
		// the renter picks again from the fresh list.
		return nil, NewConflictError("substitute vehicle no longer available")
	}
	return updated, nil
}

// submitEdit holds the shared validation, eligibility gate, pricing
// recomputation and gateway round-trip for both edit entry points.
func (s *DefaultBookingService) submitEdit(ctx context.Context, renterID, id string, req models.EditRequest) (current *models.Booking, updated *models.Booking, alts []models.VehicleOption, err error) {
	if strings.TrimSpace(req.Reason) == "" {
		return nil, nil, nil, NewValidationError("a reason for the change is required")
	}

	b, err := s.fetchOwned(ctx, renterID, id)
	if err != nil {
		return nil, nil, nil, err
	}

	if !CanEdit(*b, s.clock()) {
		return nil, nil, nil, NewEligibilityError("booking can no longer be edited")
	}

	// Effective inputs: request fields override the booking's own.
	startDate := req.StartDate
	if startDate == "" {
		startDate = b.StartDate
	}
	endDate := req.EndDate
	if endDate == "" {
		endDate = b.EndDate
	}
	rate := req.PricePerDay
	if rate <= 0 {
		rate = b.PricePerDay
	}

	start, perr := time.Parse(DateLayout, startDate)
	if perr != nil {
		return nil, nil, nil, NewValidationError("invalid start date")
	}
	end, perr := time.Parse(DateLayout, endDate)
	if perr != nil {
		return nil, nil, nil, NewValidationError("invalid end date")
	}
	if !start.Before(end) {
		return nil, nil, nil, NewValidationError("start date must be before end date")
	}

	quote := ComputePricing(start, end, rate)

	release, err := s.Guard.Acquire(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	defer release()

	patch := gateway.UpdateBookingPatch{
		StartDate:     startDate,
		EndDate:       endDate,
		PickupTime:    req.PickupTime,
		ReturnTime:    req.ReturnTime,
		VehicleID:     req.VehicleID,
		Reason:        req.Reason,
		PricePerDay:   rate,
		TotalDays:     quote.TotalDays,
		TotalPrice:    quote.TotalPrice,
		DepositAmount: quote.DepositAmount,
	}

	out, err := s.Gateway.UpdateBooking(ctx, id, patch)
	if err != nil {
		var unavailable *gateway.AlternativeVehiclesError
		if errors.As(err, &unavailable) {
			return b, nil, unavailable.Alternatives, nil
		}
		return nil, nil, nil, err
	}

	Normalize(out)
	if err := s.Store.InvalidateSnapshot(ctx, id); err != nil {
		s.logger().Warn("failed to invalidate booking snapshot", zap.String("booking_id", id), zap.Error(err))
	}
	if err := s.Store.SaveSnapshot(ctx, out); err != nil {
		s.logger().Warn("failed to cache booking snapshot", zap.String("booking_id", id), zap.Error(err))
	}
	s.logger().Info("booking edited",
		zap.String("booking_id", id),
		zap.Int("edit_count", out.EditCount),
		zap.Int64("total_price", out.TotalPrice),
	)
	return b, out, nil, nil
}
