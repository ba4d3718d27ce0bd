package log

import (
	"time"
)

// Event represents one decoded payload captured by a decoder.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the payload was received or decoded (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the decoding session (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"3,keyasint"`

	// Source is the bus source address of the payload.
	Source uint8 `cbor:"4,keyasint"`

	// Fingerprint identifies the registry contents the payload was decoded
	// against.
	Fingerprint string `cbor:"5,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Message *MessageEvent   `cbor:"10,keyasint,omitempty"` // Decode, fallback and issue events
	Error   *ErrorEventData `cbor:"11,keyasint,omitempty"` // Input that never reached the decoder
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryDecode indicates a payload decoded against its own descriptor.
	CategoryDecode Category = 0
	// CategoryFallback indicates a payload decoded against the fallback descriptor.
	CategoryFallback Category = 1
	// CategoryIssue indicates a decode that reported payload problems.
	CategoryIssue Category = 2
	// CategoryError indicates input that could not be decoded at all.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryDecode:
		return "DECODE"
	case CategoryFallback:
		return "FALLBACK"
	case CategoryIssue:
		return "ISSUE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseCategory converts a category name to a Category.
func ParseCategory(s string) (Category, bool) {
	for c := CategoryDecode; c <= CategoryError; c++ {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}

// MessageEvent captures a decoded payload.
type MessageEvent struct {
	// PGN is the requested parameter group number.
	PGN uint32 `cbor:"1,keyasint"`

	// Name of the descriptor used for decoding.
	Name string `cbor:"2,keyasint"`

	// Known mirrors the descriptor's IsKnown flag.
	Known bool `cbor:"3,keyasint,omitempty"`

	// Data is the raw payload.
	Data []byte `cbor:"4,keyasint,omitempty"`

	// Fields in layout order, repeating group instances last.
	Fields []FieldEvent `cbor:"5,keyasint,omitempty"`

	// Groups is the number of repeating group instances decoded.
	Groups int `cbor:"6,keyasint,omitempty"`

	// PaddingBits is the number of trailing bits too short for a group.
	PaddingBits int `cbor:"7,keyasint,omitempty"`

	// Issues lists payload problems found while decoding.
	Issues []string `cbor:"8,keyasint,omitempty"`
}

// FieldEvent captures one decoded field.
type FieldEvent struct {
	// Name is the field name.
	Name string `cbor:"1,keyasint"`

	// Status is the field outcome (OK, ABSENT, UNAVAILABLE, NOT_USED, ERROR).
	Status string `cbor:"2,keyasint"`

	// Value is the decoded value for OK fields.
	Value any `cbor:"3,keyasint,omitempty"`

	// Unit is the unit symbol, if any.
	Unit string `cbor:"4,keyasint,omitempty"`

	// Group is the 1-based repeating group instance, 0 for fixed fields.
	Group int `cbor:"5,keyasint,omitempty"`

	// Error is the decode error for ERROR fields.
	Error string `cbor:"6,keyasint,omitempty"`
}

// ErrorEventData captures input that could not be decoded.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Context describes the input, e.g. a file name and line number.
	Context string `cbor:"2,keyasint,omitempty"`
}
