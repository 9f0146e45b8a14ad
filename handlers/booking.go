package handlers

import (
	"net/http"
	"strconv"

	"drivio/middleware"
	"drivio/models"
	"drivio/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking lifecycle to the app's screens.
// Every handler is a thin caller: eligibility and pricing live in the
// booking service, never here.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(service booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: service}
}

// Quote prices a draft so the screen can display the numbers it will
// later submit.
func (h *BookingHandler) Quote(c *gin.Context) {
	var input struct {
		Draft models.BookingDraft `json:"draft"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	quote, err := h.Service.Quote(input.Draft)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"quote": quote})
}

// Create submits a new booking draft. The online channel may come back
// as a pending payment instead of a booking.
func (h *BookingHandler) Create(c *gin.Context) {
	var input struct {
		Draft models.BookingDraft `json:"draft"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, pending, err := h.Service.CreateBooking(c.Request.Context(), middleware.RenterID(c), input.Draft)
	if err != nil {
		respondError(c, err)
		return
	}
	if pending != nil {
		c.JSON(http.StatusAccepted, gin.H{"pending_payment": pending})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": b})
}

// Finalize completes a create whose holding fee was paid out-of-band.
func (h *BookingHandler) Finalize(c *gin.Context) {
	var input struct {
		SessionID string `json:"session_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.Service.FinalizeBooking(c.Request.Context(), middleware.RenterID(c), input.SessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": b})
}

// Get returns a booking with its locally evaluated eligibility flags,
// so the screen only shows actions that can actually go through.
func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Request.Context(), middleware.RenterID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"booking":    b,
		"can_edit":   booking.CanEdit(*b, timeNow()),
		"can_cancel": booking.CanCancel(*b),
	})
}

// List pages through the renter's bookings.
func (h *BookingHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	bookings, total, err := h.Service.ListBookings(c.Request.Context(), middleware.RenterID(c), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"bookings":    bookings,
		"total_count": total,
	})
}

// Edit applies a change to a pending booking. When the vehicle is sold
// out for the new dates the response carries the offered alternatives
// and no change is applied.
func (h *BookingHandler) Edit(c *gin.Context) {
	var req models.EditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, alternatives, err := h.Service.EditBooking(c.Request.Context(), middleware.RenterID(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	if alternatives != nil {
		c.JSON(http.StatusConflict, gin.H{
			"code":         "vehicle_unavailable",
			"alternatives": alternatives,
			"booking":      b,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// ConfirmAlternative retries the edit with the substitute vehicle the
// renter explicitly accepted, at the substitute's rate.
func (h *BookingHandler) ConfirmAlternative(c *gin.Context) {
	var req models.EditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.Service.ConfirmAlternative(c.Request.Context(), middleware.RenterID(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// CancelPreview returns the forfeit warning the app must show before a
// cancellation can be confirmed.
func (h *BookingHandler) CancelPreview(c *gin.Context) {
	preview, err := h.Service.CancelPreview(c.Request.Context(), middleware.RenterID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"preview": preview})
}

// Cancel cancels the booking. Requires a reason and, when a holding fee
// was paid, the explicit forfeit acknowledgement.
func (h *BookingHandler) Cancel(c *gin.Context) {
	var req models.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.Service.CancelBooking(c.Request.Context(), middleware.RenterID(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}
