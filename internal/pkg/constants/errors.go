package constants

import "net/http"

// CodedError is an error that carries the HTTP status it should be
// rendered with. The api error handler unwraps down to the first one.
type CodedError struct {
	msg  string
	code int
}

func NewCodedError(msg string, code int) *CodedError {
	return &CodedError{msg: msg, code: code}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrNotFound       = NewCodedError("not found", http.StatusNotFound)
	ErrUsernameTaken  = NewCodedError("Username already exists", http.StatusBadRequest)
	ErrInvalidCreds   = NewCodedError("Invalid credentials", http.StatusUnauthorized)
	ErrUserIDRequired = NewCodedError("User ID is required", http.StatusUnauthorized)
	ErrMissingFields  = NewCodedError("Quantity, price, and location are required", http.StatusBadRequest)
	ErrUnauthorized   = NewCodedError("unauthorized", http.StatusUnauthorized)
)

// Resource-specific 404 bodies; controllers map the store's ErrNotFound
// onto these so clients see which lookup missed.
var (
	ErrUserNotFound    = NewCodedError("User not found", http.StatusNotFound)
	ErrCropNotFound    = NewCodedError("Crop not found", http.StatusNotFound)
	ErrListingNotFound = NewCodedError("Listing not found", http.StatusNotFound)
)
