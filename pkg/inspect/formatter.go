package inspect

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/libnmea/libnmea-go/pkg/decode"
	"github.com/libnmea/libnmea-go/pkg/pgn"
)

// Formatter formats inspection output.
type Formatter struct {
	// ShowMetadata includes field type and bit range information
	ShowMetadata bool

	// ShowRaw includes the raw extracted bits alongside scaled values
	ShowRaw bool

	// IndentWidth is the number of spaces per indent level
	IndentWidth int
}

// NewFormatter creates a new Formatter with default settings.
func NewFormatter() *Formatter {
	return &Formatter{
		ShowMetadata: false,
		ShowRaw:      false,
		IndentWidth:  2,
	}
}

// Indent returns the content with indentation.
func (f *Formatter) Indent(depth int, content string) string {
	width := f.IndentWidth
	if width == 0 {
		width = 2
	}
	return strings.Repeat(" ", depth*width) + content
}

// FormatValue formats a decoded field for display, including unit
// conversions.
func (f *Formatter) FormatValue(fv *decode.FieldValue) string {
	switch fv.Status {
	case decode.StatusOK:
	case decode.StatusAbsent:
		return "absent"
	case decode.StatusUnavailable:
		return "n/a"
	case decode.StatusNotUsed:
		return "-"
	default:
		return fmt.Sprintf("error (%v)", fv.Err)
	}

	unit := ""
	if u, ok := fv.Unit().Get(); ok {
		unit = u.Symbol()
	}

	v := fv.Value
	switch v.Kind {
	case decode.KindInteger, decode.KindLookup:
		return withUnit(v.String(), unit, fv)
	case decode.KindFloat:
		var s string
		if fv.Field.DecodeType() == pgn.FieldTypeFloat {
			s = strconv.FormatFloat(v.Float, 'g', -1, 64)
		} else {
			s = strconv.FormatFloat(v.Float, 'f', Decimals(fv.Field.Scale()), 64)
		}
		s = withUnit(s, unit, fv)
		if f.ShowRaw {
			s += fmt.Sprintf(" [raw %d]", v.Raw)
		}
		return s
	case decode.KindString:
		return strconv.Quote(v.Str)
	case decode.KindBytes:
		return fmt.Sprintf("0x%x", v.Bytes)
	default:
		return v.String()
	}
}

// withUnit appends the unit and, for common units, a human-readable
// conversion.
func withUnit(s, unit string, fv *decode.FieldValue) string {
	if unit == "" {
		return s
	}
	base := s + " " + unit

	x, ok := fv.Value.Float64()
	if !ok {
		return base
	}
	u, _ := fv.Unit().Get()
	switch u {
	case pgn.UnitKelvin:
		return fmt.Sprintf("%s (%.1f °C)", base, x-273.15)
	case pgn.UnitRadians:
		return fmt.Sprintf("%s (%.1f°)", base, x*180/math.Pi)
	case pgn.UnitRadiansPerSecond:
		return fmt.Sprintf("%s (%.1f°/min)", base, x*180/math.Pi*60)
	case pgn.UnitMetersPerSecond:
		return fmt.Sprintf("%s (%.1f kn)", base, x*3600/1852)
	case pgn.UnitPascals:
		if x >= 1000 || x <= -1000 {
			return fmt.Sprintf("%s (%.1f kPa)", base, x/1000)
		}
		return base
	case pgn.UnitSeconds:
		if x >= 60 {
			return fmt.Sprintf("%s (%s)", base, FormatDuration(x))
		}
		return base
	default:
		return base
	}
}

// Decimals returns the number of fractional digits a multiplier
// resolves.
func Decimals(multiplier float64) int {
	s := strconv.FormatFloat(math.Abs(multiplier), 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

// FormatDuration formats seconds as h:mm:ss.
func FormatDuration(seconds float64) string {
	total := int64(seconds)
	return fmt.Sprintf("%d:%02d:%02d", total/3600, total/60%60, total%60)
}

// FormatMessage formats a decoded payload for display.
func (f *Formatter) FormatMessage(msg *decode.Message) string {
	var sb strings.Builder

	header := fmt.Sprintf("PGN %d: %s (src %d)", msg.PGN, msg.Name(), msg.Source)
	switch {
	case msg.Fallback:
		header += " [unregistered]"
	case !msg.Known():
		header += " [unverified layout]"
	}
	sb.WriteString(header + "\n")

	for i := range msg.Fields {
		sb.WriteString(f.Indent(1, f.formatField(&msg.Fields[i])) + "\n")
	}
	for _, g := range msg.Groups {
		sb.WriteString(f.Indent(1, fmt.Sprintf("Group %d:", g.Index+1)) + "\n")
		for i := range g.Fields {
			sb.WriteString(f.Indent(2, f.formatField(&g.Fields[i])) + "\n")
		}
	}
	if msg.PaddingBits > 0 {
		sb.WriteString(f.Indent(1, fmt.Sprintf("(%d padding bits)", msg.PaddingBits)) + "\n")
	}
	for _, issue := range msg.Issues {
		sb.WriteString(f.Indent(1, "! "+issue.Error()) + "\n")
	}
	return sb.String()
}

func (f *Formatter) formatField(fv *decode.FieldValue) string {
	line := fmt.Sprintf("%s = %s", fv.Name(), f.FormatValue(fv))
	if f.ShowMetadata {
		line += fmt.Sprintf(" (%s, bits %d+%d)", fv.Field.DecodeType(), fv.Start, fv.Size)
	}
	return line
}

// FormatDescriptor formats a descriptor layout for display.
func (f *Formatter) FormatDescriptor(d *pgn.Descriptor) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "PGN %d: %s\n", d.PGN, d.Name)
	fmt.Fprintf(&sb, "Category: %s  Size: %d bytes (%s)", d.Category, d.Size, d.Transport())
	if !d.IsKnown {
		sb.WriteString("  [unverified layout]")
	}
	sb.WriteString("\n---\n")

	for i := range d.FixedFields() {
		sb.WriteString(f.Indent(0, formatLayoutField(&d.Fields[i])) + "\n")
	}
	if group := d.RepeatingGroup(); len(group) > 0 {
		sb.WriteString(fmt.Sprintf("Repeating group (%d bits):\n", d.GroupBits()))
		for i := range group {
			sb.WriteString(f.Indent(1, formatLayoutField(&group[i])) + "\n")
		}
	}
	return sb.String()
}

func formatLayoutField(fd *pgn.Field) string {
	line := fmt.Sprintf("%4d %3d  %-32s %s", fd.Start, fd.Size, fd.Name, fd.DecodeType())
	if fd.Signed {
		line += " signed"
	}
	if fd.Scale() != 1 {
		line += " x" + strconv.FormatFloat(fd.Multiplier, 'g', -1, 64)
	}
	if fd.Offset != 0 {
		line += fmt.Sprintf(" -%d", fd.Offset)
	}
	if u, ok := fd.Unit.Get(); ok {
		line += " [" + u.Symbol() + "]"
	}
	if fd.LengthFrom != "" {
		line += fmt.Sprintf(" (length from %q)", fd.LengthFrom)
	}
	return line
}

// DescriptorRow represents a registry entry for display.
type DescriptorRow struct {
	PGN      uint32
	Name     string
	Category string
	Size     uint32
	Fields   int
	Known    bool
}

// Rows returns one row per descriptor of reg.
func Rows(reg *pgn.Registry) []DescriptorRow {
	rows := make([]DescriptorRow, 0, reg.Len())
	for d := range reg.All() {
		rows = append(rows, DescriptorRow{
			PGN:      d.PGN,
			Name:     d.Name,
			Category: d.Category.String(),
			Size:     d.Size,
			Fields:   len(d.Fields),
			Known:    d.IsKnown,
		})
	}
	return rows
}

// FormatDescriptorTable formats registry rows as a table.
func (f *Formatter) FormatDescriptorTable(rows []DescriptorRow) string {
	if len(rows) == 0 {
		return "  (no descriptors)"
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("  %6d  %-40s", row.PGN, row.Name))
		if f.ShowMetadata {
			sb.WriteString(fmt.Sprintf(" (%s, %d bytes, %d fields)", row.Category, row.Size, row.Fields))
		}
		if !row.Known {
			sb.WriteString(" *")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
