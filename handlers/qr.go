package handlers

import (
	"net/http"

	"drivio/middleware"

	"github.com/gin-gonic/gin"
	"github.com/yeqown/go-qrcode"
	"go.uber.org/zap"
)

// PickupQR renders the booking's pickup credential as a QR image the
// station staff scans at handover. The credential itself is issued by
// the rental service; this endpoint only renders it.
func (h *BookingHandler) PickupQR(c *gin.Context) {
	b, err := h.Service.GetBooking(c.Request.Context(), middleware.RenterID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if b.PickupCredential == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "no pickup credential issued for this booking"})
		return
	}

	qrc, err := qrcode.New(b.PickupCredential)
	if err != nil {
		getLogger(c).Error("failed to build pickup QR", zap.String("booking_id", b.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render pickup code"})
		return
	}

	c.Header("Content-Type", "image/jpeg")
	c.Header("Cache-Control", "no-store")
	if err := qrc.SaveTo(c.Writer); err != nil {
		getLogger(c).Error("failed to write pickup QR", zap.String("booking_id", b.ID), zap.Error(err))
	}
}
