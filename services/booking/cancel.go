package booking

import (
	"context"
	"strings"

	"drivio/models"

	"go.uber.org/zap"
)

// CancelPreview builds the warning the renter must see before a
// cancellation is confirmed: a paid holding fee is forfeited, never
// refunded, while the deposit comes back.
func (s *DefaultBookingService) CancelPreview(ctx context.Context, renterID, id string) (*CancelPreview, error) {
	b, err := s.fetchOwned(ctx, renterID, id)
	if err != nil {
		return nil, err
	}
	if !CanCancel(*b) {
		return nil, NewEligibilityError("booking can no longer be cancelled")
	}

	preview := &CancelPreview{
		BookingID:     b.ID,
		DepositRefund: b.DepositAmount,
	}
	if b.HoldingFeePaid() {
		preview.HoldingFeePaid = true
		preview.ForfeitedAmount = b.HoldingFee.Amount
		preview.RequiresForfeitAck = true
	}
	return preview, nil
}

// CancelBooking cancels a pending or confirmed booking. The reason is
// mandatory and checked before any remote call; a paid holding fee
// additionally needs the renter's explicit forfeit acknowledgement so
// the warning step cannot be skipped.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, renterID, id string, req models.CancelRequest) (*models.Booking, error) {
	if strings.TrimSpace(req.Reason) == "" {
		return nil, NewValidationError("a cancellation reason is required")
	}

	b, err := s.fetchOwned(ctx, renterID, id)
	if err != nil {
		return nil, err
	}
	if !CanCancel(*b) {
		return nil, NewEligibilityError("booking can no longer be cancelled")
	}
	if b.HoldingFeePaid() && !req.AcknowledgeForfeit {
		return nil, NewValidationError("holding fee forfeiture must be acknowledged")
	}

	release, err := s.Guard.Acquire(ctx, id)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := s.Gateway.CancelBooking(ctx, id, req.Reason); err != nil {
		return nil, err
	}

	if err := s.Store.InvalidateSnapshot(ctx, id); err != nil {
		s.logger().Warn("failed to invalidate booking snapshot", zap.String("booking_id", id), zap.Error(err))
	}

	out, err := s.Gateway.GetBooking(ctx, id)
	if err != nil {
		// The cancellation already went through; fall back to the local
		// copy rather than failing the whole operation.
		s.logger().Warn("failed to refetch booking after cancel", zap.String("booking_id", id), zap.Error(err))
		out = b
		out.Status = models.BookingStatusCancelled
		out.CancellationReason = req.Reason
	}

	// A paid fee is forfeited on cancellation regardless of what the
	// payload says; it must never read as refundable.
	if out.HoldingFee != nil && out.HoldingFee.Status == models.HoldingFeePaid {
		out.HoldingFee.Status = models.HoldingFeeForfeited
	}
	out.CanCancel = false

	Normalize(out)
	if err := s.Store.SaveSnapshot(ctx, out); err != nil {
		s.logger().Warn("failed to cache booking snapshot", zap.String("booking_id", id), zap.Error(err))
	}
	s.logger().Info("booking cancelled",
		zap.String("booking_id", id),
		zap.String("renter_id", renterID),
		zap.Bool("holding_fee_forfeited", out.HoldingFee != nil && out.HoldingFee.Status == models.HoldingFeeForfeited),
	)
	return out, nil
}
