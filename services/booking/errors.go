package booking

import "fmt"

// ValidationError rejects bad input before any remote call is made.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &ValidationError{
		Code:    "validationError",
		Message: msg,
	}
}

// EligibilityError is returned when a transition is attempted out of
// turn. The UI should never expose such an action; this is the
// defensive answer when it is called anyway.
type EligibilityError struct {
	Code    string
	Message string
}

func (e *EligibilityError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewEligibilityError(msg string) error {
	return &EligibilityError{
		Code:    "eligibilityError",
		Message: msg,
	}
}

// ConflictError is returned when another mutation already holds the
// booking. The caller resubmits manually; there is no automatic retry.
type ConflictError struct {
	Code    string
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewConflictError(msg string) error {
	return &ConflictError{
		Code:    "conflictError",
		Message: msg,
	}
}

// PermissionError rejects access to a booking the caller does not own.
type PermissionError struct {
	Code    string
	Message string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewPermissionError(msg string) error {
	return &PermissionError{
		Code:    "permissionError",
		Message: msg,
	}
}
