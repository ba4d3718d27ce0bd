package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/libnmea/libnmea-go/pkg/pgn"
	"github.com/libnmea/libnmea-go/pkg/specparse"
)

// pgnSlug converts 127250 "Vessel Heading" to "127250-vessel-heading".
func pgnSlug(d *pgn.Descriptor) string {
	return fmt.Sprintf("%d-%s", d.PGN, specparse.Slug(d.Name))
}

// hexPGN formats a PGN as 0x1F112.
func hexPGN(id uint32) string {
	return fmt.Sprintf("0x%05X", id)
}

// yesNo returns "Yes" for true, empty string for false.
func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return ""
}

// bitRange formats the declared extent of a field as "8-23".
func bitRange(f *pgn.Field) string {
	if f.Size == 1 {
		return strconv.Itoa(int(f.Start))
	}
	return fmt.Sprintf("%d-%d", f.Start, f.End()-1)
}

// formatType renders the field type, marking inferred and signed types.
func formatType(f *pgn.Field) string {
	t := f.DecodeType().String()
	if f.Signed {
		t = "signed " + t
	}
	if !f.Type.IsSome() {
		t += " (inferred)"
	}
	return t
}

// formatScale renders the multiplier and excess-K offset of numeric fields.
func formatScale(f *pgn.Field) string {
	var parts []string
	if f.Scale() != 1 {
		parts = append(parts, "×"+strconv.FormatFloat(f.Multiplier, 'g', -1, 64))
	}
	if f.Offset != 0 {
		parts = append(parts, fmt.Sprintf("-%d", f.Offset))
	}
	return strings.Join(parts, " ")
}

// formatUnit renders a unit as its symbol.
func formatUnit(f *pgn.Field) string {
	if u, ok := f.Unit.Get(); ok {
		return u.Symbol()
	}
	return ""
}

// escapeCell escapes pipes so text fits in a Markdown table cell.
func escapeCell(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "|", `\|`)
}
