package payway

import "errors"

var (
	// ErrConfiguration means the merchant id or signing key is unset.
	// This is fatal at startup, never a per-request condition.
	ErrConfiguration = errors.New("payway: merchant id or api key is not configured")

	// ErrInvalidAmount means the amount could not be parsed as a
	// non-negative number.
	ErrInvalidAmount = errors.New("payway: invalid amount")

	// ErrInvalidItems means the item list could not be serialized.
	ErrInvalidItems = errors.New("payway: invalid items")

	// ErrInvalidOption means the payment option is not one of the
	// supported method tags.
	ErrInvalidOption = errors.New("payway: unsupported payment option")
)
