package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/libnmea/libnmea-go/pkg/pgn"
)

// LayoutDiagram renders the declared field layout of d as a Mermaid packet
// diagram. Gaps become "(gap)" entries. Fields of the repeating group are
// shown at their first-instance offsets.
func LayoutDiagram(d *pgn.Descriptor) string {
	type span struct {
		start, end int
		label      string
	}

	groupStart := len(d.Fields) - len(d.RepeatingGroup())
	spans := make([]span, 0, len(d.Fields))
	for i := range d.Fields {
		f := &d.Fields[i]
		if f.Size == 0 {
			continue
		}
		label := f.Name
		if i >= groupStart {
			label += " (repeats)"
		}
		spans = append(spans, span{int(f.Start), f.End(), label})
	}
	if len(spans) == 0 {
		return ""
	}
	slices.SortStableFunc(spans, func(a, b span) int { return a.start - b.start })

	var b strings.Builder
	b.WriteString("```mermaid\npacket-beta\n")
	pos := 0
	for _, s := range spans {
		if s.start < pos {
			// Overlapping declarations cannot be drawn.
			continue
		}
		if s.start > pos {
			fmt.Fprintf(&b, "  %d-%d: \"(gap)\"\n", pos, s.start-1)
		}
		if s.end-s.start == 1 {
			fmt.Fprintf(&b, "  %d: %q\n", s.start, s.label)
		} else {
			fmt.Fprintf(&b, "  %d-%d: %q\n", s.start, s.end-1, s.label)
		}
		pos = s.end
	}
	b.WriteString("```\n")
	return b.String()
}
