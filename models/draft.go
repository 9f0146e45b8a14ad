package models

// BookingDraft carries everything a screen collects before a create or
// edit is submitted. It is a plain value passed through the pipeline;
// the pricing and eligibility functions are pure transforms over it.
type BookingDraft struct {
	VehicleID       string         `json:"vehicle_id"`
	StationID       string         `json:"station_id"`
	StartDate       string         `json:"start_date"`
	EndDate         string         `json:"end_date"`
	PickupTime      string         `json:"pickup_time"`
	ReturnTime      string         `json:"return_time"`
	PricePerDay     int64          `json:"price_per_day"`
	Channel         BookingChannel `json:"channel"`
	Notes           string         `json:"notes,omitempty"`
	SpecialRequests string         `json:"special_requests,omitempty"`
}

// EditRequest is a renter-initiated change to a pending booking.
// Reason is mandatory; empty edits are rejected before any remote call.
type EditRequest struct {
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	PickupTime  string `json:"pickup_time,omitempty"`
	ReturnTime  string `json:"return_time,omitempty"`
	VehicleID   string `json:"vehicle_id,omitempty"`
	PricePerDay int64  `json:"price_per_day,omitempty"`
	Reason      string `json:"reason"`
}

// CancelRequest carries the mandatory reason plus the renter's explicit
// acknowledgement that a paid holding fee is forfeited.
type CancelRequest struct {
	Reason            string `json:"reason"`
	AcknowledgeForfeit bool  `json:"acknowledge_forfeit"`
}

// PendingPayment is returned when the rental service requires the
// holding fee upfront: no Booking exists yet, only a payment session.
type PendingPayment struct {
	SessionID    string `json:"session_id"`
	PaymentRef   string `json:"payment_ref"`
	ClientSecret string `json:"client_secret,omitempty"`
	Amount       int64  `json:"amount"`
}
