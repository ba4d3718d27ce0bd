package decode

import (
	"errors"
	"time"

	"github.com/libnmea/libnmea-go/pkg/pgn"
)

// FieldValue is the outcome of decoding one field.
type FieldValue struct {
	// Field is the descriptor field that was decoded.
	Field *pgn.Field

	// Start is the effective bit offset after dynamic-width fields and
	// repeating group placement are taken into account.
	Start int

	// Size is the effective width in bits. It differs from Field.Size for
	// dynamic-width fields.
	Size int

	// Group is the 1-based repeating group instance, 0 for fixed fields.
	Group int

	Status Status
	Value  Value

	// Err explains ABSENT and ERROR outcomes. It is a *FieldError.
	Err error
}

// Name returns the field name.
func (fv *FieldValue) Name() string {
	return fv.Field.Name
}

// Unit returns the field's unit.
func (fv *FieldValue) Unit() pgn.Option[pgn.Unit] {
	return fv.Field.Unit
}

// OK reports whether a value was produced.
func (fv *FieldValue) OK() bool {
	return fv.Status == StatusOK
}

func (fv *FieldValue) set(v Value) {
	fv.Status = StatusOK
	fv.Value = v
}

func (fv *FieldValue) absent() {
	fv.Status = StatusAbsent
	fv.Err = ErrTruncated
}

func (fv *FieldValue) fail(err error) {
	fv.Status = StatusError
	fv.Err = err
}

// Group is one instance of a repeating group.
type Group struct {
	// Index is the 0-based instance number.
	Index  int
	Fields []FieldValue
}

// Field returns the group's field with the given name.
func (g *Group) Field(name string) (*FieldValue, bool) {
	return findField(g.Fields, name)
}

// Message is a decoded payload.
type Message struct {
	// PGN is the identifier the payload was received with, which differs
	// from Descriptor.PGN when the fallback was used.
	PGN uint32

	Source    uint8
	Timestamp time.Time

	// Descriptor is the layout the payload was decoded with.
	Descriptor *pgn.Descriptor

	// Fallback is set when PGN is not registered.
	Fallback bool

	// Data is the payload as passed in. It is not copied.
	Data []byte

	// Fields holds the fixed fields in layout order.
	Fields []FieldValue

	// Groups holds the repeating group instances.
	Groups []Group

	// PaddingBits counts trailing bits too short for another group.
	PaddingBits int

	// Issues lists payload-level problems and field decode errors, each a
	// *FieldError. ABSENT fields are not issues.
	Issues []error
}

// Name returns the descriptor name.
func (m *Message) Name() string {
	return m.Descriptor.Name
}

// Known mirrors the descriptor's IsKnown flag.
func (m *Message) Known() bool {
	return m.Descriptor.IsKnown
}

// Trusted reports whether the payload was decoded against a registered,
// fully documented layout.
func (m *Message) Trusted() bool {
	return !m.Fallback && m.Descriptor.IsKnown
}

// Field returns the fixed field with the given name.
func (m *Message) Field(name string) (*FieldValue, bool) {
	return findField(m.Fields, name)
}

// Err joins the message issues, or returns nil if there are none.
func (m *Message) Err() error {
	return errors.Join(m.Issues...)
}

// Each yields every field value, fixed fields first, then group
// instances in order.
func (m *Message) Each(yield func(*FieldValue) bool) {
	for i := range m.Fields {
		if !yield(&m.Fields[i]) {
			return
		}
	}
	for g := range m.Groups {
		for i := range m.Groups[g].Fields {
			if !yield(&m.Groups[g].Fields[i]) {
				return
			}
		}
	}
}

func findField(fields []FieldValue, name string) (*FieldValue, bool) {
	for i := range fields {
		if fields[i].Field.Name == name {
			return &fields[i], true
		}
	}
	return nil, false
}
