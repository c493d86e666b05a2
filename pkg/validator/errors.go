package validator

import "errors"

var (
	// ErrUnknownKind is returned when a kind name does not match any registered format.
	ErrUnknownKind = errors.New("unknown validation kind")

	// ErrInvalidIDCard is returned by ParseChineseIDCard for malformed or inconsistent ID numbers.
	ErrInvalidIDCard = errors.New("invalid chinese id card number")
)
