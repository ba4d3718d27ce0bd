package pgn

// Payload size limits of the NMEA 2000 transports.
const (
	SingleFrameSize = 8
	FastPacketSize  = 252
)

// Transport is the transport a payload of a given size travels on.
type Transport uint8

const (
	TransportSingleFrame Transport = iota
	TransportFastPacket
	TransportISO
)

// String returns the transport name.
func (t Transport) String() string {
	switch t {
	case TransportSingleFrame:
		return "SINGLE_FRAME"
	case TransportFastPacket:
		return "FAST_PACKET"
	case TransportISO:
		return "ISO_TP"
	default:
		return "UNKNOWN"
	}
}

// Descriptor is the metadata for one PGN.
type Descriptor struct {
	// Name is the human-readable PGN name.
	Name string

	// Category is the functional area.
	Category Category

	// PGN is the 24-bit parameter group number.
	PGN uint32

	// IsKnown is false for placeholder and catch-all entries whose layout
	// is not fully documented.
	IsKnown bool

	// Size is the declared payload size in bytes.
	Size uint32

	// RepeatingFields is the number of trailing fields that form a
	// repeating group. Zero means no repetition.
	RepeatingFields uint32

	// Fields in layout order.
	Fields []Field
}

// Transport returns the transport implied by the declared size.
func (d *Descriptor) Transport() Transport {
	switch {
	case d.Size <= SingleFrameSize:
		return TransportSingleFrame
	case d.Size <= FastPacketSize:
		return TransportFastPacket
	default:
		return TransportISO
	}
}

func (d *Descriptor) groupStart() int {
	n := int(d.RepeatingFields)
	if n > len(d.Fields) {
		n = len(d.Fields)
	}
	return len(d.Fields) - n
}

// FixedFields returns the fields that precede the repeating group.
func (d *Descriptor) FixedFields() []Field {
	return d.Fields[:d.groupStart()]
}

// RepeatingGroup returns the template fields replayed for each group
// instance, or nil if the PGN has none.
func (d *Descriptor) RepeatingGroup() []Field {
	if d.RepeatingFields == 0 {
		return nil
	}
	return d.Fields[d.groupStart():]
}

// FixedBits returns the declared bit width of the fixed prefix, measured
// to the end of its furthest field.
func (d *Descriptor) FixedBits() int {
	end := 0
	for i := range d.FixedFields() {
		end = max(end, d.Fields[i].End())
	}
	return end
}

// GroupBits returns the bit width of one repeating group instance, or 0 if
// the PGN has none.
func (d *Descriptor) GroupBits() int {
	group := d.RepeatingGroup()
	if len(group) == 0 {
		return 0
	}
	lo, hi := int(group[0].Start), group[0].End()
	for i := range group[1:] {
		f := &group[i+1]
		lo = min(lo, int(f.Start))
		hi = max(hi, f.End())
	}
	return hi - lo
}

// GroupOrigin returns the lowest declared start of the repeating group
// template. Template offsets are relative to it.
func (d *Descriptor) GroupOrigin() int {
	group := d.RepeatingGroup()
	if len(group) == 0 {
		return 0
	}
	lo := int(group[0].Start)
	for i := range group {
		lo = min(lo, int(group[i].Start))
	}
	return lo
}

// Field returns the first field with the given name.
func (d *Descriptor) Field(name string) (*Field, bool) {
	for i := range d.Fields {
		if d.Fields[i].Name == name {
			return &d.Fields[i], true
		}
	}
	return nil, false
}

// clone returns a deep copy that shares no slices with d.
func (d Descriptor) clone() Descriptor {
	d.Fields = append([]Field(nil), d.Fields...)
	return d
}
