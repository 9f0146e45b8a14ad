package booking

import (
	"testing"
	"time"

	"drivio/models"

	"github.com/stretchr/testify/assert"
)

// editableBooking is eligible on every gate with pickup 48h from now.
func editableBooking() models.Booking {
	return models.Booking{
		ID:         "bk-1",
		RenterID:   "r-1",
		Channel:    models.ChannelOnline,
		Status:     models.BookingStatusPending,
		StartDate:  "2025-11-10",
		EndDate:    "2025-11-13",
		PickupTime: "10:00",
		EditCount:  0,
		HoldingFee: &models.HoldingFee{
			Amount: HoldingFeeAmount,
			Status: models.HoldingFeePaid,
		},
		PricePerDay: 200000,
	}
}

// now48hBefore is 48h before the fixture's pickup instant.
var now48hBefore = time.Date(2025, 11, 8, 10, 0, 0, 0, time.UTC)

func TestCanEdit(t *testing.T) {
	t.Run("all gates pass", func(t *testing.T) {
		assert.True(t, CanEdit(editableBooking(), now48hBefore))
	})

	t.Run("in-person channel never editable", func(t *testing.T) {
		b := editableBooking()
		b.Channel = models.ChannelInPerson
		assert.False(t, CanEdit(b, now48hBefore))
	})

	t.Run("unpaid holding fee blocks edit", func(t *testing.T) {
		b := editableBooking()
		b.HoldingFee.Status = models.HoldingFeeUnpaid
		assert.False(t, CanEdit(b, now48hBefore))
	})

	t.Run("missing holding fee blocks edit", func(t *testing.T) {
		b := editableBooking()
		b.HoldingFee = nil
		assert.False(t, CanEdit(b, now48hBefore))
	})

	t.Run("only pending status is editable", func(t *testing.T) {
		for _, status := range []models.BookingStatus{
			models.BookingStatusConfirmed,
			models.BookingStatusActive,
			models.BookingStatusCompleted,
			models.BookingStatusCancelled,
		} {
			b := editableBooking()
			b.Status = status
			assert.False(t, CanEdit(b, now48hBefore), "status %s", status)
		}
	})

	t.Run("edit count cap", func(t *testing.T) {
		b := editableBooking()
		b.EditCount = 1
		assert.False(t, CanEdit(b, now48hBefore))
	})

	t.Run("window boundary is inclusive at 24h", func(t *testing.T) {
		b := editableBooking()
		pickup := time.Date(2025, 11, 10, 10, 0, 0, 0, time.UTC)

		assert.True(t, CanEdit(b, pickup.Add(-24*time.Hour)))
		assert.False(t, CanEdit(b, pickup.Add(-24*time.Hour+time.Minute)))
	})

	t.Run("malformed start date fails closed", func(t *testing.T) {
		b := editableBooking()
		b.StartDate = "2025-13-40"
		assert.False(t, CanEdit(b, now48hBefore))
	})

	t.Run("malformed pickup time fails closed", func(t *testing.T) {
		b := editableBooking()
		b.PickupTime = "25:99"
		assert.False(t, CanEdit(b, now48hBefore))
	})

	t.Run("empty pickup time means start of day", func(t *testing.T) {
		b := editableBooking()
		b.PickupTime = ""
		// Midnight Nov 10 is 38h after now; still outside the window.
		assert.True(t, CanEdit(b, now48hBefore))
		// 23h before midnight Nov 10.
		assert.False(t, CanEdit(b, time.Date(2025, 11, 9, 1, 0, 0, 0, time.UTC)))
	})
}

func TestCanCancel(t *testing.T) {
	t.Run("pending with gateway flag", func(t *testing.T) {
		b := editableBooking()
		b.CanCancel = true
		assert.True(t, CanCancel(b))
	})

	t.Run("confirmed with gateway flag", func(t *testing.T) {
		b := editableBooking()
		b.Status = models.BookingStatusConfirmed
		b.CanCancel = true
		assert.True(t, CanCancel(b))
	})

	t.Run("gateway flag denied", func(t *testing.T) {
		b := editableBooking()
		b.CanCancel = false
		assert.False(t, CanCancel(b))
	})

	t.Run("picked-up and terminal states", func(t *testing.T) {
		for _, status := range []models.BookingStatus{
			models.BookingStatusActive,
			models.BookingStatusCompleted,
			models.BookingStatusCancelled,
		} {
			b := editableBooking()
			b.Status = status
			b.CanCancel = true
			assert.False(t, CanCancel(b), "status %s", status)
		}
	})
}
