package errs

import "errors"

// Sentinel errors for the booking and queue usecase layers
var (
	// Gating errors, detected locally before any network call
	ErrUnauthenticated = errors.New("no authenticated identity")
	ErrInvalidInput    = errors.New("invalid input")

	// Network errors, cached state is left unchanged
	ErrTransport = errors.New("transport failure")

	// Booking errors, carries the server message when one was provided
	ErrBookingFailed = errors.New("booking rejected")

	// Shop errors
	ErrShopNotFound = errors.New("shop not found")

	// Appointment errors
	ErrAppointmentNotFound = errors.New("appointment not found")

	// Auth errors
	ErrLoginFailed        = errors.New("login failed")
	ErrRegistrationFailed = errors.New("registration failed")
)
