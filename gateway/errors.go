package gateway

import (
	"fmt"

	"drivio/models"
)

// PaymentRequiredError signals that the rental service wants the holding
// fee collected before a booking record exists. PaymentRef is the
// payment-initiation reference to settle out-of-band.
type PaymentRequiredError struct {
	PaymentRef string
	Amount     int64
}

func (e *PaymentRequiredError) Error() string {
	return fmt.Sprintf("paymentRequired: holding fee of %d must be paid first (ref %s)", e.Amount, e.PaymentRef)
}

// VerificationRequiredError signals that the renter's identity
// verification is incomplete; the caller must redirect to verification
// instead of retrying.
type VerificationRequiredError struct {
	Reason string
}

func (e *VerificationRequiredError) Error() string {
	return fmt.Sprintf("verificationRequired: %s", e.Reason)
}

// AlternativeVehiclesError signals that the requested vehicle is no
// longer available for the edited dates. The edit was not applied; the
// listed alternatives need explicit renter confirmation.
type AlternativeVehiclesError struct {
	Alternatives []models.VehicleOption
}

func (e *AlternativeVehiclesError) Error() string {
	return fmt.Sprintf("vehicleUnavailable: %d alternatives offered", len(e.Alternatives))
}

// RemoteError is a non-2xx response that is not one of the structured
// signals above. Message carries the server-supplied text when present
// so it can be surfaced verbatim to the caller.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("rental service error: status=%d message=%s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("rental service error: status=%d", e.StatusCode)
}
