package decode

import (
	"fmt"

	"github.com/libnmea/libnmea-go/pkg/bits"
)

// decodeVariable reads a field whose byte length is the value of an
// earlier field. Up to eight bytes decode as an unsigned integer; longer
// fields decode as bytes.
func decodeVariable(fv *FieldValue, data []byte, seen map[string]FieldValue) {
	name := fv.Field.LengthFrom
	src, ok := seen[name]
	if !ok {
		fv.fail(fmt.Errorf("%w: length source %q not decoded before field", ErrUnsupportedFieldType, name))
		return
	}
	switch src.Status {
	case StatusOK:
	case StatusAbsent:
		fv.absent()
		return
	default:
		fv.fail(fmt.Errorf("%w: length source %q is %s", ErrUnsupportedFieldType, name, src.Status))
		return
	}
	if k := src.Value.Kind; (k != KindInteger && k != KindLookup) || src.Value.Int < 0 {
		fv.fail(fmt.Errorf("%w: length source %q holds %s", ErrUnsupportedFieldType, name, src.Value))
		return
	}

	n := int(src.Value.Int)
	fv.Size = n * 8

	switch {
	case n == 0:
		fv.set(Value{Kind: KindBytes, Bytes: []byte{}})
	case n <= 8:
		raw, ok := bits.Extract(data, fv.Start, fv.Size)
		if !ok {
			fv.absent()
			return
		}
		fv.set(Value{Kind: KindInteger, Raw: raw, Int: int64(raw), Unsigned: true})
	default:
		b, ok := bits.Bytes(data, fv.Start, fv.Size)
		if !ok {
			fv.absent()
			return
		}
		fv.set(Value{Kind: KindBytes, Bytes: b})
	}
}
