package models

import "time"

// BookingStatus is the lifecycle state of a booking as reported by the
// rental service. Transitions are one-directional; completed and
// cancelled are terminal.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// BookingChannel distinguishes self-service bookings from staff-created ones.
type BookingChannel string

const (
	ChannelOnline   BookingChannel = "online"
	ChannelInPerson BookingChannel = "in-person"
)

// HoldingFeeStatus tracks payment of the fixed reservation fee.
type HoldingFeeStatus string

const (
	HoldingFeeUnpaid    HoldingFeeStatus = "unpaid"
	HoldingFeePaid      HoldingFeeStatus = "paid"
	HoldingFeeForfeited HoldingFeeStatus = "forfeited"
)

// HoldingFee is the fixed, non-refundable fee attached to online bookings.
type HoldingFee struct {
	Amount     int64            `json:"amount"`
	Status     HoldingFeeStatus `json:"status"`
	PaymentRef string           `json:"payment_ref,omitempty"`
}

// Booking is the central entity, mirrored from the rental service.
// Dates are "2006-01-02" strings and times-of-day "15:04" strings as the
// remote API sends them; they are parsed only where a rule needs an
// instant, and a parse failure must never widen an eligibility window.
type Booking struct {
	ID   string `json:"id"`
	Code string `json:"code"`

	RenterID  string `json:"renter_id"`
	VehicleID string `json:"vehicle_id"`
	StationID string `json:"station_id"`

	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	PickupTime string `json:"pickup_time"`
	ReturnTime string `json:"return_time"`

	PricePerDay   int64       `json:"price_per_day"`
	TotalDays     int         `json:"total_days"`
	TotalPrice    int64       `json:"total_price"`
	DepositAmount int64       `json:"deposit_amount"`
	HoldingFee    *HoldingFee `json:"holding_fee,omitempty"`
	LateFee       int64       `json:"late_fee,omitempty"`
	DamageFee     int64       `json:"damage_fee,omitempty"`
	OtherFees     int64       `json:"other_fees,omitempty"`
	FinalAmount   int64       `json:"final_amount,omitempty"`

	Status             BookingStatus  `json:"status"`
	Channel            BookingChannel `json:"channel"`
	EditCount          int            `json:"edit_count"`
	CancellationReason string         `json:"cancellation_reason,omitempty"`

	SpecialRequests  string `json:"special_requests,omitempty"`
	Notes            string `json:"notes,omitempty"`
	ContractID       string `json:"contract_id,omitempty"`
	RentalID         string `json:"rental_id,omitempty"`
	PickupCredential string `json:"pickup_credential,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	// CanCancel is reported per-booking by the rental service; it depends
	// on downstream payment and refund state this client does not own.
	CanCancel bool `json:"can_cancel"`
}

// IsTerminal reports whether the booking can never change again.
func (b *Booking) IsTerminal() bool {
	return b.Status == BookingStatusCompleted || b.Status == BookingStatusCancelled
}

// HoldingFeePaid reports whether the holding fee is recorded as paid.
func (b *Booking) HoldingFeePaid() bool {
	return b.HoldingFee != nil && b.HoldingFee.Status == HoldingFeePaid
}
