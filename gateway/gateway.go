// Package gateway is the boundary to the remote rental service. It owns
// no business rules: pricing and eligibility are decided by the booking
// service before any call lands here.
package gateway

import (
	"context"

	"drivio/models"
)

// CreateBookingRequest is the payload for materializing a new booking.
// The commercial fields are the locally computed ones; the rental
// service re-validates but the client always submits what it displayed.
type CreateBookingRequest struct {
	RenterID        string                `json:"renter_id"`
	VehicleID       string                `json:"vehicle_id"`
	StationID       string                `json:"station_id"`
	StartDate       string                `json:"start_date"`
	EndDate         string                `json:"end_date"`
	PickupTime      string                `json:"pickup_time"`
	ReturnTime      string                `json:"return_time"`
	Channel         models.BookingChannel `json:"channel"`
	Notes           string                `json:"notes,omitempty"`
	SpecialRequests string                `json:"special_requests,omitempty"`

	PricePerDay   int64 `json:"price_per_day"`
	TotalDays     int   `json:"total_days"`
	TotalPrice    int64 `json:"total_price"`
	DepositAmount int64 `json:"deposit_amount"`

	// PaymentRef is set when the holding fee was collected upfront; the
	// rental service only materializes an online booking once it is
	// present and verified.
	PaymentRef string `json:"payment_ref,omitempty"`
}

// UpdateBookingPatch carries an edit. Reason is mandatory.
type UpdateBookingPatch struct {
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	PickupTime string `json:"pickup_time,omitempty"`
	ReturnTime string `json:"return_time,omitempty"`
	VehicleID  string `json:"vehicle_id,omitempty"`
	Reason     string `json:"reason"`

	PricePerDay   int64 `json:"price_per_day"`
	TotalDays     int   `json:"total_days"`
	TotalPrice    int64 `json:"total_price"`
	DepositAmount int64 `json:"deposit_amount"`
}

// BookingGateway abstracts the remote booking service.
//
// CreateBooking may fail with *PaymentRequiredError (online channel,
// holding fee not yet collected) or *VerificationRequiredError (renter
// identity incomplete). UpdateBooking may fail with
// *AlternativeVehiclesError when the requested vehicle is sold out for
// the new dates. All other failures are *RemoteError or transport errors.
type BookingGateway interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	UpdateBooking(ctx context.Context, id string, patch UpdateBookingPatch) (*models.Booking, error)
	CancelBooking(ctx context.Context, id, reason string) error
	ListBookings(ctx context.Context, renterID string, page, pageSize int) ([]models.Booking, int, error)
}
