package checkapi

import "errors"

var (
	// ErrUnsupportedMediaType is returned for request bodies that are not application/json.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrInvalidRequest is returned for bodies that cannot be decoded.
	ErrInvalidRequest = errors.New("invalid request body")

	// ErrTooManyItems is returned when a batch exceeds the configured limit.
	ErrTooManyItems = errors.New("too many items")
)

// Error codes used in ErrorDetail.Code.
const (
	codeInvalidRequest   = "invalid_request"
	codeUnsupportedMedia = "unsupported_media_type"
	codeUnknownKind      = "unknown_kind"
	codeTooManyItems     = "too_many_items"
	codeEmptyBatch       = "empty_batch"
)
