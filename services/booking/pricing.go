package booking

import (
	"math"
	"time"

	"drivio/models"
)

const (
	// DateLayout is how the rental service formats calendar dates.
	DateLayout = "2006-01-02"
	// ClockLayout is how it formats pickup/return times of day.
	ClockLayout = "15:04"

	// HoldingFeeAmount is the fixed reservation fee for online bookings,
	// in whole currency units. Non-refundable.
	HoldingFeeAmount int64 = 50000

	// DepositThresholdDays is the rental length from which a deposit is
	// collected. Below it no deposit applies.
	DepositThresholdDays = 3
)

// Quote is the locally computed commercial side of a booking. Screens
// display these numbers and submit exactly the same ones.
type Quote struct {
	TotalDays     int   `json:"total_days"`
	TotalPrice    int64 `json:"total_price"`
	DepositAmount int64 `json:"deposit_amount"`
}

// ComputePricing converts a date range and a daily rate into the billed
// day count, total price and deposit. Pure and deterministic.
//
// Precondition: start < end (a violating range must be rejected by the
// caller first). The day count is the calendar-day ceiling of the
// difference, floored at 1 so a same-day range still bills one day. The
// deposit is exactly half the total from DepositThresholdDays on,
// otherwise zero. Amounts are integer currency units.
func ComputePricing(start, end time.Time, pricePerDay int64) Quote {
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		days = 1
	}
	total := int64(days) * pricePerDay
	var deposit int64
	if days >= DepositThresholdDays {
		deposit = total / 2
	}
	return Quote{
		TotalDays:     days,
		TotalPrice:    total,
		DepositAmount: deposit,
	}
}

// QuoteDraft validates a draft's date range and prices it.
func QuoteDraft(d models.BookingDraft) (Quote, error) {
	start, err := time.Parse(DateLayout, d.StartDate)
	if err != nil {
		return Quote{}, NewValidationError("invalid start date")
	}
	end, err := time.Parse(DateLayout, d.EndDate)
	if err != nil {
		return Quote{}, NewValidationError("invalid end date")
	}
	if !start.Before(end) {
		return Quote{}, NewValidationError("start date must be before end date")
	}
	if d.PricePerDay < 0 {
		return Quote{}, NewValidationError("price per day must not be negative")
	}
	return ComputePricing(start, end, d.PricePerDay), nil
}

// Normalize recomputes a booking's derived commercial fields from the
// invariant formulas whenever the inputs are present, trusting the
// remote payload only as a fallback for historical records whose dates
// no longer parse. The remote deposit is never used to infer a ratio.
func Normalize(b *models.Booking) {
	start, errS := time.Parse(DateLayout, b.StartDate)
	end, errE := time.Parse(DateLayout, b.EndDate)
	if errS != nil || errE != nil || !start.Before(end) || b.PricePerDay <= 0 {
		return
	}
	q := ComputePricing(start, end, b.PricePerDay)
	b.TotalDays = q.TotalDays
	b.TotalPrice = q.TotalPrice
	b.DepositAmount = q.DepositAmount
}
