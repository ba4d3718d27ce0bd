package decode

import (
	"errors"
	"fmt"
)

// Sentinel errors reported through FieldValue.Err and Message.Issues.
var (
	// ErrUnknownPGN: the identifier is not registered; the fallback
	// descriptor was used.
	ErrUnknownPGN = errors.New("unknown pgn")

	// ErrTruncated: the payload ends before the field.
	ErrTruncated = errors.New("payload truncated")

	// ErrMalformedRepeatingGroup: the bits after the fixed prefix are not a
	// whole number of repeating groups.
	ErrMalformedRepeatingGroup = errors.New("malformed repeating group")

	// ErrUnsupportedFieldType: the field's type cannot be applied to its
	// width or content.
	ErrUnsupportedFieldType = errors.New("unsupported field type")
)

// FieldError locates a decode problem. Field is empty for problems that
// concern the whole payload.
type FieldError struct {
	PGN   uint32
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("pgn %d: %v", e.PGN, e.Err)
	}
	return fmt.Sprintf("pgn %d field %q: %v", e.PGN, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
