package handlers

import (
	"errors"
	"net/http"

	"drivio/gateway"
	"drivio/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError translates service and gateway errors into user-facing
// JSON. Remote error text is surfaced verbatim when the server supplied
// it; pure transport failures get a generic connectivity message.
func respondError(c *gin.Context, err error) {
	var (
		validation   *booking.ValidationError
		eligibility  *booking.EligibilityError
		conflict     *booking.ConflictError
		permission   *booking.PermissionError
		verification *gateway.VerificationRequiredError
		remote       *gateway.RemoteError
	)

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Message, "code": validation.Code})
	case errors.As(err, &eligibility):
		c.JSON(http.StatusForbidden, gin.H{"error": eligibility.Message, "code": eligibility.Code})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Message, "code": conflict.Code})
	case errors.As(err, &permission):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found", "code": permission.Code})
	case errors.As(err, &verification):
		// The app must redirect to identity verification, not retry.
		c.JSON(http.StatusForbidden, gin.H{
			"error": "identity verification required",
			"code":  "verification_required",
		})
	case errors.As(err, &remote):
		status := http.StatusBadGateway
		if remote.StatusCode == http.StatusNotFound {
			status = http.StatusNotFound
		}
		msg := remote.Message
		if msg == "" {
			msg = "the rental service rejected the request"
		}
		c.JSON(status, gin.H{"error": msg, "code": "remoteError"})
	default:
		getLogger(c).Error("booking request failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "could not reach the rental service, please try again",
			"code":  "connectivityError",
		})
	}
}
