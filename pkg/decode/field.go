package decode

import (
	"fmt"
	"math"

	"github.com/libnmea/libnmea-go/pkg/bits"
	"github.com/libnmea/libnmea-go/pkg/pgn"
)

// decodeField decodes f at bit start. seen holds earlier fields of the
// same layout by name, for variable-length fields.
func decodeField(id uint32, f *pgn.Field, start int, data []byte, seen map[string]FieldValue) FieldValue {
	fv := FieldValue{Field: f, Start: start, Size: int(f.Size)}

	switch typ := f.DecodeType(); typ {
	case pgn.FieldTypeNotUsed:
		fv.Status = StatusNotUsed
	case pgn.FieldTypeLookup, pgn.FieldTypeInteger, pgn.FieldTypeDecimal:
		decodeNumber(&fv, typ, data)
	case pgn.FieldTypeFloat:
		decodeFloat(&fv, data)
	case pgn.FieldTypeASCIIString, pgn.FieldTypeFixedString:
		decodeFixedString(&fv, typ, data)
	case pgn.FieldTypePascalString:
		decodePascalString(&fv, data)
	case pgn.FieldTypeWideString:
		decodeWideString(&fv, data)
	case pgn.FieldTypeVariable:
		decodeVariable(&fv, data, seen)
	default:
		fv.fail(fmt.Errorf("%w: %d", ErrUnsupportedFieldType, typ))
	}

	if fv.Err != nil {
		fv.Err = &FieldError{PGN: id, Field: f.Name, Err: fv.Err}
	}
	return fv
}

// unavailable reports whether raw is the "data not available" sentinel:
// all ones, or the largest positive value for signed fields. One-bit
// fields have no sentinel.
func unavailable(raw uint64, size int, signed bool) bool {
	if size < 2 {
		return false
	}
	if signed {
		return raw == bits.MaxSigned(size)
	}
	return bits.AllOnes(raw, size)
}

func decodeNumber(fv *FieldValue, typ pgn.FieldType, data []byte) {
	f := fv.Field
	if !bits.Fits(len(data), fv.Start, fv.Size) {
		fv.absent()
		return
	}
	if fv.Size > bits.MaxWidth {
		fv.fail(fmt.Errorf("%w: %s field of %d bits", ErrUnsupportedFieldType, typ, fv.Size))
		return
	}

	raw, ok := bits.Extract(data, fv.Start, fv.Size)
	if !ok {
		fv.absent()
		return
	}
	if unavailable(raw, fv.Size, f.Signed) {
		fv.Status = StatusUnavailable
		fv.Value = Value{Raw: raw}
		return
	}

	n := int64(raw)
	if f.Signed {
		n = bits.SignExtend(raw, fv.Size)
	}
	n -= f.Offset

	unsigned := !f.Signed && f.Offset == 0
	switch typ {
	case pgn.FieldTypeLookup:
		fv.set(Value{Kind: KindLookup, Raw: raw, Int: n, Unsigned: unsigned})
	case pgn.FieldTypeInteger:
		fv.set(Value{Kind: KindInteger, Raw: raw, Int: n, Unsigned: unsigned})
	default:
		fv.set(Value{Kind: KindFloat, Raw: raw, Float: float64(n) * f.Scale()})
	}
}

func decodeFloat(fv *FieldValue, data []byte) {
	if !bits.Fits(len(data), fv.Start, fv.Size) {
		fv.absent()
		return
	}
	if fv.Size != 32 && fv.Size != 64 {
		fv.fail(fmt.Errorf("%w: float field of %d bits", ErrUnsupportedFieldType, fv.Size))
		return
	}

	raw, ok := bits.Extract(data, fv.Start, fv.Size)
	if !ok {
		fv.absent()
		return
	}

	var v float64
	if fv.Size == 32 {
		v = float64(math.Float32frombits(uint32(raw)))
	} else {
		v = math.Float64frombits(raw)
	}
	fv.set(Value{Kind: KindFloat, Raw: raw, Float: v})
}
