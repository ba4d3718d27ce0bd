package decode

import (
	"fmt"

	"github.com/libnmea/libnmea-go/pkg/pgn"
)

// shift records that a dynamic-width field ending at bit from (as
// declared) actually occupied delta more bits.
type shift struct {
	from  int
	delta int
}

func shiftAt(shifts []shift, pos int) int {
	n := 0
	for _, s := range shifts {
		if s.from <= pos {
			n += s.delta
		}
	}
	return n
}

// decodeLayout decodes the fixed prefix and repeating groups of d from
// data into msg.
func decodeLayout(msg *Message, d *pgn.Descriptor, data []byte) {
	fixed := d.FixedFields()
	msg.Fields = make([]FieldValue, 0, len(fixed))
	seen := make(map[string]FieldValue, len(fixed))

	var shifts []shift
	for i := range fixed {
		f := &fixed[i]
		start := int(f.Start) + shiftAt(shifts, int(f.Start))
		fv := decodeField(d.PGN, f, start, data, seen)
		if fv.Size != int(f.Size) {
			shifts = append(shifts, shift{from: f.End(), delta: fv.Size - int(f.Size)})
		}
		msg.Fields = append(msg.Fields, fv)
		seen[f.Name] = fv
	}

	if d.RepeatingFields == 0 {
		return
	}
	origin := d.FixedBits()
	decodeGroups(msg, d, origin+shiftAt(shifts, origin), data)
}

// decodeGroups replays the repeating group template from bit origin until
// fewer than one group's worth of bits remain.
func decodeGroups(msg *Message, d *pgn.Descriptor, origin int, data []byte) {
	template := d.RepeatingGroup()
	width := d.GroupBits()
	base := d.GroupOrigin()
	total := len(data) * 8
	if width == 0 || origin >= total {
		return
	}

	count := (total - origin) / width
	msg.Groups = make([]Group, 0, count)
	for i := 0; i < count; i++ {
		at := origin + i*width
		g := Group{Index: i, Fields: make([]FieldValue, 0, len(template))}
		seen := make(map[string]FieldValue, len(template))
		for j := range template {
			f := &template[j]
			fv := decodeField(d.PGN, f, at+int(f.Start)-base, data, seen)
			fv.Group = i + 1
			g.Fields = append(g.Fields, fv)
			seen[f.Name] = fv
		}
		msg.Groups = append(msg.Groups, g)
	}

	if rest := (total - origin) % width; rest > 0 {
		msg.PaddingBits = rest
		msg.Issues = append(msg.Issues, &FieldError{
			PGN: d.PGN,
			Err: fmt.Errorf("%w: %d bits left after %d groups of %d bits",
				ErrMalformedRepeatingGroup, rest, count, width),
		})
	}
}
