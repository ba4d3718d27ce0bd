// Package bits reads and writes bit fields in NMEA 2000 payloads.
//
// Bits are numbered LSB-first: bit n of a payload lives in byte n/8 at
// position n%8, and multi-byte values are little-endian. A field of width
// w starting at bit s therefore occupies bits s..s+w-1 with bit s as the
// least significant bit of the result.
package bits

// MaxWidth is the widest field Extract can return as an integer.
const MaxWidth = 64

// Mask returns a value with the low size bits set.
func Mask(size int) uint64 {
	if size >= MaxWidth {
		return ^uint64(0)
	}
	if size <= 0 {
		return 0
	}
	return (uint64(1) << size) - 1
}

// Fits reports whether a field of size bits starting at bit start lies
// entirely within a payload of n bytes.
func Fits(n, start, size int) bool {
	return start >= 0 && size >= 0 && start+size <= n*8
}

// Extract returns the unsigned value of the size-bit field starting at bit
// start. It returns false if size is outside 1..64 or the field runs past
// the end of data.
func Extract(data []byte, start, size int) (uint64, bool) {
	if size < 1 || size > MaxWidth || !Fits(len(data), start, size) {
		return 0, false
	}

	var v uint64
	idx := start / 8
	shift := start % 8
	got := 0
	for got < size {
		v |= (uint64(data[idx]) >> shift) << got
		got += 8 - shift
		idx++
		shift = 0
	}
	return v & Mask(size), true
}

// Bytes returns a copy of the size-bit field starting at bit start as a
// byte slice. size must be a multiple of 8. The field need not be byte
// aligned.
func Bytes(data []byte, start, size int) ([]byte, bool) {
	if size < 0 || size%8 != 0 || !Fits(len(data), start, size) {
		return nil, false
	}
	n := size / 8
	if start%8 == 0 {
		out := make([]byte, n)
		copy(out, data[start/8:start/8+n])
		return out, true
	}
	out := make([]byte, n)
	for i := range out {
		b, _ := Extract(data, start+i*8, 8)
		out[i] = byte(b)
	}
	return out, true
}

// Insert writes the low size bits of v into data at bit start, leaving the
// surrounding bits untouched. It returns false if the field does not fit.
func Insert(data []byte, start, size int, v uint64) bool {
	if size < 1 || size > MaxWidth || !Fits(len(data), start, size) {
		return false
	}
	v &= Mask(size)
	for i := 0; i < size; i++ {
		pos := start + i
		bit := byte(v>>i) & 1
		data[pos/8] = data[pos/8]&^(1<<(pos%8)) | bit<<(pos%8)
	}
	return true
}

// SignExtend interprets the low size bits of v as a two's complement
// number.
func SignExtend(v uint64, size int) int64 {
	if size >= MaxWidth {
		return int64(v)
	}
	if size <= 0 {
		return 0
	}
	shift := uint(MaxWidth - size)
	return int64(v<<shift) >> shift
}

// AllOnes reports whether the low size bits of v are all set.
func AllOnes(v uint64, size int) bool {
	return v&Mask(size) == Mask(size)
}

// MaxSigned returns the largest positive two's complement value of the
// given width.
func MaxSigned(size int) uint64 {
	return Mask(size - 1)
}
