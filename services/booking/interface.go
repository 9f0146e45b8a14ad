package booking

import (
	"context"
	"time"

	"drivio/gateway"
	"drivio/models"

	"go.uber.org/zap"
)

// BookingService drives the booking lifecycle. Every transition checks
// eligibility and recomputes pricing locally before touching the
// gateway; the gateway itself owns no business rules.
type BookingService interface {
	Quote(draft models.BookingDraft) (Quote, error)
	CreateBooking(ctx context.Context, renterID string, draft models.BookingDraft) (*models.Booking, *models.PendingPayment, error)
	FinalizeBooking(ctx context.Context, renterID, sessionID string) (*models.Booking, error)
	GetBooking(ctx context.Context, renterID, id string) (*models.Booking, error)
	ListBookings(ctx context.Context, renterID string, page, pageSize int) ([]models.Booking, int, error)
	EditBooking(ctx context.Context, renterID, id string, req models.EditRequest) (*models.Booking, []models.VehicleOption, error)
	ConfirmAlternative(ctx context.Context, renterID, id string, req models.EditRequest) (*models.Booking, error)
	CancelPreview(ctx context.Context, renterID, id string) (*CancelPreview, error)
	CancelBooking(ctx context.Context, renterID, id string, req models.CancelRequest) (*models.Booking, error)
}

// CancelPreview is the warning screen shown before a cancellation is
// confirmed: what is forfeited and what comes back.
type CancelPreview struct {
	BookingID        string `json:"booking_id"`
	HoldingFeePaid   bool   `json:"holding_fee_paid"`
	ForfeitedAmount  int64  `json:"forfeited_amount"`
	DepositRefund    int64  `json:"deposit_refund"`
	RequiresForfeitAck bool `json:"requires_forfeit_ack"`
}

// PaymentSession is the client-side mirror of the gateway's "pending
// payment" pre-state: the draft plus the payment reference, held with a
// TTL until the holding fee is settled. No Booking exists yet.
type PaymentSession struct {
	SessionID  string              `json:"session_id"`
	RenterID   string              `json:"renter_id"`
	Draft      models.BookingDraft `json:"draft"`
	Quote      Quote               `json:"quote"`
	PaymentRef string              `json:"payment_ref"`
	IntentID   string              `json:"intent_id"`
	Amount     int64               `json:"amount"`
	CreatedAt  time.Time           `json:"created_at"`
}

// SessionStore persists payment sessions and last-fetched booking
// snapshots. Entries expire on their own; nothing here is durable.
type SessionStore interface {
	SavePaymentSession(ctx context.Context, s PaymentSession) error
	GetPaymentSession(ctx context.Context, sessionID string) (*PaymentSession, error)
	DeletePaymentSession(ctx context.Context, sessionID string) error

	SaveSnapshot(ctx context.Context, b *models.Booking) error
	GetSnapshot(ctx context.Context, id string) (*models.Booking, error)
	InvalidateSnapshot(ctx context.Context, id string) error
}

// MutationGuard serializes mutations per booking id: at most one
// in-flight edit or cancel per booking at a time.
type MutationGuard interface {
	Acquire(ctx context.Context, bookingID string) (release func(), err error)
}

// PaymentProcessor initiates and verifies holding-fee payments.
type PaymentProcessor interface {
	CreateIntent(ctx context.Context, amount int64, paymentRef string) (intentID, clientSecret string, err error)
	VerifyPaid(ctx context.Context, intentID string) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Gateway  gateway.BookingGateway
	Store    SessionStore
	Guard    MutationGuard
	Payments PaymentProcessor
	Logger   *zap.Logger

	// now is swappable in tests; zero value means time.Now.
	now func() time.Time
}

func (s *DefaultBookingService) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.L()
	}
	return s.Logger
}
