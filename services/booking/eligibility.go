package booking

import (
	"time"

	"drivio/models"
)

const (
	// EditWindow is the cutoff before pickup after which self-service
	// edits are disallowed. Inclusive: exactly 24h out is still allowed.
	EditWindow = 24 * time.Hour

	// MaxEditCount caps renter-initiated edits per booking.
	MaxEditCount = 1
)

// PickupInstant combines the start date with the pickup time of day.
// An empty clock means start of day.
func PickupInstant(date, clock string) (time.Time, error) {
	if clock == "" {
		return time.Parse(DateLayout, date)
	}
	return time.Parse(DateLayout+" "+ClockLayout, date+" "+clock)
}

// CanEdit reports whether the renter may still edit the booking. All
// conditions must hold; there is no partial-edit mode. A start date or
// pickup time that does not parse fails closed: a malformed date must
// never silently open an edit window.
func CanEdit(b models.Booking, now time.Time) bool {
	if b.Channel != models.ChannelOnline {
		return false
	}
	if !b.HoldingFeePaid() {
		return false
	}
	if b.Status != models.BookingStatusPending {
		return false
	}
	if b.EditCount >= MaxEditCount {
		return false
	}
	pickup, err := PickupInstant(b.StartDate, b.PickupTime)
	if err != nil {
		return false
	}
	return !pickup.Before(now.Add(EditWindow))
}

// CanCancel reports whether cancellation may be offered. The underlying
// eligibility is owned by the rental service (it depends on payment and
// refund state this client cannot see) and arrives as a per-booking
// flag; locally we only rule out terminal and picked-up states.
func CanCancel(b models.Booking) bool {
	if b.Status != models.BookingStatusPending && b.Status != models.BookingStatusConfirmed {
		return false
	}
	return b.CanCancel
}
