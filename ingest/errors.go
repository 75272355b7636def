package ingest

import "errors"

var (
	// ErrMalformedPayload covers bad JSON and missing or mistyped fields.
	ErrMalformedPayload = errors.New("malformed payload")
	// ErrInvalidTimestamp is returned when time is neither epoch milliseconds
	// nor a YYYY-MM-DDTHH:MM:SSZ string.
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)
