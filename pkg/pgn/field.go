package pgn

// Field describes one bit field of a PGN payload.
type Field struct {
	// Name is the human-readable field name, unique within its descriptor.
	Name string

	// Description is optional free text.
	Description Option[string]

	// Unit is the physical unit of the decoded value, if any.
	Unit Option[Unit]

	// Type is the interpretation of the field's bits. A field without a
	// type decodes as FieldTypeInteger, or FieldTypeDecimal when it
	// carries a multiplier.
	Type Option[FieldType]

	// Start is the bit offset from the start of the payload, LSB-first.
	Start uint16

	// Size is the declared width in bits. For dynamic-width types it is
	// the nominal width used for layout.
	Size uint16

	// Multiplier scales decimal values. Zero means 1.
	Multiplier float64

	// Offset is subtracted from the raw value before scaling (excess-K).
	Offset int64

	// Signed marks two's complement fields.
	Signed bool

	// LengthFrom names the earlier field holding the byte length of a
	// FieldTypeVariable field.
	LengthFrom string
}

// End returns the first bit after the field's declared extent.
func (f *Field) End() int {
	return int(f.Start) + int(f.Size)
}

// Scale returns the effective multiplier.
func (f *Field) Scale() float64 {
	if f.Multiplier == 0 {
		return 1
	}
	return f.Multiplier
}

// DecodeType returns the declared type, or the type inferred from the
// multiplier when none is declared.
func (f *Field) DecodeType() FieldType {
	if t, ok := f.Type.Get(); ok {
		return t
	}
	if f.Scale() != 1 {
		return FieldTypeDecimal
	}
	return FieldTypeInteger
}

// Reserved reports whether the field marks unused bits.
func (f *Field) Reserved() bool {
	return f.DecodeType() == FieldTypeNotUsed
}
