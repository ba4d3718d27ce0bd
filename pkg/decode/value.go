package decode

import (
	"encoding/hex"
	"strconv"
)

// Status is the outcome of decoding one field.
type Status uint8

const (
	StatusOK Status = iota
	StatusAbsent
	StatusUnavailable
	StatusNotUsed
	StatusError
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusAbsent:
		return "ABSENT"
	case StatusUnavailable:
		return "UNAVAILABLE"
	case StatusNotUsed:
		return "NOT_USED"
	case StatusError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Kind is the representation a Value holds.
type Kind uint8

const (
	KindNone Kind = iota
	KindInteger
	KindLookup
	KindFloat
	KindString
	KindBytes
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "NONE"
	case KindInteger:
		return "INTEGER"
	case KindLookup:
		return "LOOKUP"
	case KindFloat:
		return "FLOAT"
	case KindString:
		return "STRING"
	case KindBytes:
		return "BYTES"
	default:
		return "UNKNOWN"
	}
}

// Value is a decoded field value.
type Value struct {
	Kind Kind

	// Raw is the extracted bit pattern for fields up to 64 bits wide,
	// before sign extension and scaling.
	Raw uint64

	// Int holds KindInteger and KindLookup values after sign extension and
	// offset. Unsigned 64-bit values above math.MaxInt64 wrap; Interface,
	// Float64 and String report those from Raw.
	Int int64

	// Unsigned is set for integer values of unsigned fields without an
	// offset, where Int is Raw reinterpreted.
	Unsigned bool

	Float float64
	Str   string
	Bytes []byte
}

// Interface returns the value as int64, float64, string, []byte or nil.
// Unsigned integers above math.MaxInt64 are returned as uint64.
func (v Value) Interface() any {
	switch v.Kind {
	case KindInteger, KindLookup:
		if v.wrapped() {
			return v.Raw
		}
		return v.Int
	case KindFloat:
		return v.Float
	case KindString:
		return v.Str
	case KindBytes:
		return v.Bytes
	default:
		return nil
	}
}

// Float64 returns numeric values as a float64.
func (v Value) Float64() (float64, bool) {
	switch v.Kind {
	case KindInteger, KindLookup:
		if v.wrapped() {
			return float64(v.Raw), true
		}
		return float64(v.Int), true
	case KindFloat:
		return v.Float, true
	default:
		return 0, false
	}
}

func (v Value) String() string {
	switch v.Kind {
	case KindInteger, KindLookup:
		if v.wrapped() {
			return strconv.FormatUint(v.Raw, 10)
		}
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.Str)
	case KindBytes:
		return hex.EncodeToString(v.Bytes)
	default:
		return "-"
	}
}

// wrapped reports whether Int is an unsigned value above math.MaxInt64.
func (v Value) wrapped() bool {
	return v.Unsigned && v.Int < 0
}
