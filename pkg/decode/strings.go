package decode

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"

	"github.com/libnmea/libnmea-go/pkg/bits"
	"github.com/libnmea/libnmea-go/pkg/pgn"
)

// Wide string encodings carried in the second header byte.
const (
	wideUTF16 = 0
	wideASCII = 1
)

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

func decodeFixedString(fv *FieldValue, typ pgn.FieldType, data []byte) {
	if fv.Size%8 != 0 {
		fv.fail(fmt.Errorf("%w: string field of %d bits", ErrUnsupportedFieldType, fv.Size))
		return
	}

	b, ok := bits.Bytes(data, fv.Start, fv.Size)
	if !ok {
		fv.absent()
		return
	}
	if allBytes(b, 0xFF) {
		fv.Status = StatusUnavailable
		return
	}

	if typ == pgn.FieldTypeASCIIString {
		b = b[:terminator(b)]
	} else {
		b = trimPadding(b)
	}
	fv.set(Value{Kind: KindString, Str: string(b)})
}

// decodePascalString reads a length byte followed by that many bytes of
// text.
func decodePascalString(fv *FieldValue, data []byte) {
	n, ok := bits.Extract(data, fv.Start, 8)
	if !ok {
		fv.absent()
		return
	}
	fv.Size = 8 + int(n)*8

	b, ok := bits.Bytes(data, fv.Start+8, int(n)*8)
	if !ok {
		fv.absent()
		return
	}
	fv.set(Value{Kind: KindString, Str: string(trimNul(b))})
}

// decodeWideString reads a total length byte (header included), an
// encoding byte and the string data.
func decodeWideString(fv *FieldValue, data []byte) {
	total, ok := bits.Extract(data, fv.Start, 8)
	if !ok {
		fv.absent()
		return
	}
	enc, ok := bits.Extract(data, fv.Start+8, 8)
	if !ok {
		fv.absent()
		return
	}
	if total < 2 {
		fv.Size = 16
		fv.set(Value{Kind: KindString})
		return
	}
	fv.Size = int(total) * 8

	b, ok := bits.Bytes(data, fv.Start+16, (int(total)-2)*8)
	if !ok {
		fv.absent()
		return
	}

	switch enc {
	case wideUTF16:
		s, err := utf16LE.NewDecoder().Bytes(b)
		if err != nil {
			fv.fail(fmt.Errorf("%w: utf-16: %v", ErrUnsupportedFieldType, err))
			return
		}
		fv.set(Value{Kind: KindString, Str: string(trimNul(s))})
	case wideASCII:
		fv.set(Value{Kind: KindString, Str: string(trimNul(b))})
	default:
		fv.fail(fmt.Errorf("%w: string encoding %d", ErrUnsupportedFieldType, enc))
	}
}

func allBytes(b []byte, v byte) bool {
	for _, c := range b {
		if c != v {
			return false
		}
	}
	return len(b) > 0
}

// terminator returns the index of the first 0x00 or 0xFF byte, or len(b).
func terminator(b []byte) int {
	for i, c := range b {
		if c == 0x00 || c == 0xFF {
			return i
		}
	}
	return len(b)
}

func trimPadding(b []byte) []byte {
	end := len(b)
	for end > 0 {
		switch b[end-1] {
		case 0x00, 0xFF, '@', ' ':
			end--
			continue
		}
		break
	}
	return b[:end]
}

func trimNul(b []byte) []byte {
	end := len(b)
	for end > 0 && b[end-1] == 0 {
		end--
	}
	return b[:end]
}
