package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"drivio/gateway"
	"drivio/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Quote prices a draft without any side effect, so the create screen can
// show exactly the numbers it will submit.
func (s *DefaultBookingService) Quote(draft models.BookingDraft) (Quote, error) {
	return QuoteDraft(draft)
}

func validateDraft(d models.BookingDraft) error {
	if d.VehicleID == "" {
		return NewValidationError("vehicle is required")
	}
	if d.StationID == "" {
		return NewValidationError("station is required")
	}
	if d.PickupTime != "" {
		if _, err := time.Parse(ClockLayout, d.PickupTime); err != nil {
			return NewValidationError("invalid pickup time")
		}
	}
	if d.Channel == "" {
		return NewValidationError("booking channel is required")
	}
	return nil
}

// CreateBooking submits a new booking. For the online channel the
// rental service may demand the holding fee upfront; in that case no
// Booking exists yet and the returned PendingPayment carries the
// payment session the renter must settle before FinalizeBooking.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, renterID string, draft models.BookingDraft) (*models.Booking, *models.PendingPayment, error) {
	if err := validateDraft(draft); err != nil {
		return nil, nil, err
	}
	quote, err := QuoteDraft(draft)
	if err != nil {
		return nil, nil, err
	}

	req := createRequest(renterID, draft, quote, "")
	b, err := s.Gateway.CreateBooking(ctx, req)
	if err != nil {
		var payReq *gateway.PaymentRequiredError
		if errors.As(err, &payReq) {
			pending, perr := s.openPaymentSession(ctx, renterID, draft, quote, payReq)
			if perr != nil {
				return nil, nil, perr
			}
			return nil, pending, nil
		}
		// Verification-required and remote errors propagate verbatim;
		// the handler decides how to surface them.
		return nil, nil, err
	}

	Normalize(b)
	if err := s.Store.SaveSnapshot(ctx, b); err != nil {
		s.logger().Warn("failed to cache booking snapshot", zap.String("booking_id", b.ID), zap.Error(err))
	}
	s.logger().Info("booking created",
		zap.String("booking_id", b.ID),
		zap.String("renter_id", renterID),
		zap.Int("total_days", b.TotalDays),
		zap.Int64("total_price", b.TotalPrice),
	)
	return b, nil, nil
}

// openPaymentSession starts the holding-fee payment and mirrors the
// gateway's pending-payment pre-state locally with a TTL.
func (s *DefaultBookingService) openPaymentSession(ctx context.Context, renterID string, draft models.BookingDraft, quote Quote, sig *gateway.PaymentRequiredError) (*models.PendingPayment, error) {
	amount := sig.Amount
	if amount <= 0 {
		amount = HoldingFeeAmount
	}

	intentID, clientSecret, err := s.Payments.CreateIntent(ctx, amount, sig.PaymentRef)
	if err != nil {
		return nil, fmt.Errorf("failed to initiate holding fee payment: %w", err)
	}

	session := PaymentSession{
		SessionID:  uuid.New().String(),
		RenterID:   renterID,
		Draft:      draft,
		Quote:      quote,
		PaymentRef: sig.PaymentRef,
		IntentID:   intentID,
		Amount:     amount,
		CreatedAt:  s.clock(),
	}
	if err := s.Store.SavePaymentSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store payment session: %w", err)
	}

	s.logger().Info("holding fee payment required",
		zap.String("session_id", session.SessionID),
		zap.String("renter_id", renterID),
		zap.Int64("amount", amount),
	)
	return &models.PendingPayment{
		SessionID:    session.SessionID,
		PaymentRef:   sig.PaymentRef,
		ClientSecret: clientSecret,
		Amount:       amount,
	}, nil
}

// FinalizeBooking completes the online create after the holding fee was
// paid out-of-band: it verifies the payment and re-submits the draft
// with the payment reference, at which point the pending Booking
// materializes.
func (s *DefaultBookingService) FinalizeBooking(ctx context.Context, renterID, sessionID string) (*models.Booking, error) {
	session, err := s.Store.GetPaymentSession(ctx, sessionID)
	if err != nil {
		return nil, NewValidationError("payment session not found or expired")
	}
	if session.RenterID != renterID {
		return nil, NewPermissionError("payment session belongs to another renter")
	}

	if err := s.Payments.VerifyPaid(ctx, session.IntentID); err != nil {
		return nil, fmt.Errorf("holding fee not confirmed as paid: %w", err)
	}

	req := createRequest(renterID, session.Draft, session.Quote, session.PaymentRef)
	b, err := s.Gateway.CreateBooking(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.Store.DeletePaymentSession(ctx, sessionID); err != nil {
		s.logger().Warn("failed to delete payment session", zap.String("session_id", sessionID), zap.Error(err))
	}
	Normalize(b)
	if err := s.Store.SaveSnapshot(ctx, b); err != nil {
		s.logger().Warn("failed to cache booking snapshot", zap.String("booking_id", b.ID), zap.Error(err))
	}
	s.logger().Info("booking finalized after holding fee payment",
		zap.String("booking_id", b.ID),
		zap.String("session_id", sessionID),
	)
	return b, nil
}

func createRequest(renterID string, d models.BookingDraft, q Quote, paymentRef string) gateway.CreateBookingRequest {
	return gateway.CreateBookingRequest{
		RenterID:        renterID,
		VehicleID:       d.VehicleID,
		StationID:       d.StationID,
		StartDate:       d.StartDate,
		EndDate:         d.EndDate,
		PickupTime:      d.PickupTime,
		ReturnTime:      d.ReturnTime,
		Channel:         d.Channel,
		Notes:           d.Notes,
		SpecialRequests: d.SpecialRequests,
		PricePerDay:     d.PricePerDay,
		TotalDays:       q.TotalDays,
		TotalPrice:      q.TotalPrice,
		DepositAmount:   q.DepositAmount,
		PaymentRef:      paymentRef,
	}
}
