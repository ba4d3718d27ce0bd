package pgn

import (
	"fmt"
	"sort"
)

// IssueCode classifies a definition problem found by Lint.
type IssueCode uint8

const (
	// IssueOutOfBounds: a field ends past the declared payload size.
	IssueOutOfBounds IssueCode = iota
	// IssueOverlap: two fixed fields share bits.
	IssueOverlap
	// IssueGroupRemainder: the declared size leaves a partial repeating group.
	IssueGroupRemainder
	// IssueLengthSource: a variable field's length source is missing or follows it.
	IssueLengthSource
	// IssueFloatWidth: a float field is neither 32 nor 64 bits wide.
	IssueFloatWidth
	// IssueStringWidth: a fixed-width string is not a whole number of bytes.
	IssueStringWidth
	// IssueDynamicInGroup: a dynamic-width field sits inside the repeating group.
	IssueDynamicInGroup
	// IssueDuplicateName: two fields share a name.
	IssueDuplicateName
)

// String returns the issue code name.
func (c IssueCode) String() string {
	switch c {
	case IssueOutOfBounds:
		return "OUT_OF_BOUNDS"
	case IssueOverlap:
		return "OVERLAP"
	case IssueGroupRemainder:
		return "GROUP_REMAINDER"
	case IssueLengthSource:
		return "LENGTH_SOURCE"
	case IssueFloatWidth:
		return "FLOAT_WIDTH"
	case IssueStringWidth:
		return "STRING_WIDTH"
	case IssueDynamicInGroup:
		return "DYNAMIC_IN_GROUP"
	case IssueDuplicateName:
		return "DUPLICATE_NAME"
	default:
		return "UNKNOWN"
	}
}

// Issue is a problem in a descriptor. Issues are reported, never fixed:
// the registry serves descriptors exactly as defined.
type Issue struct {
	PGN     uint32
	Field   string
	Code    IssueCode
	Message string
}

func (i Issue) String() string {
	if i.Field == "" {
		return fmt.Sprintf("pgn %d: %s: %s", i.PGN, i.Code, i.Message)
	}
	return fmt.Sprintf("pgn %d field %q: %s: %s", i.PGN, i.Field, i.Code, i.Message)
}

// Lint checks a descriptor for layout problems.
func Lint(d *Descriptor) []Issue {
	var issues []Issue
	add := func(field string, code IssueCode, format string, args ...any) {
		issues = append(issues, Issue{
			PGN:     d.PGN,
			Field:   field,
			Code:    code,
			Message: fmt.Sprintf(format, args...),
		})
	}

	sizeBits := int(d.Size) * 8
	seen := make(map[string]int, len(d.Fields))
	groupStart := d.groupStart()

	for i := range d.Fields {
		f := &d.Fields[i]
		typ := f.DecodeType()

		if prev, dup := seen[f.Name]; dup {
			add(f.Name, IssueDuplicateName, "also declared as field %d", prev)
		} else {
			seen[f.Name] = i
		}

		if f.End() > sizeBits {
			add(f.Name, IssueOutOfBounds, "bits %d..%d exceed declared size of %d bits",
				f.Start, f.End()-1, sizeBits)
		}

		switch typ {
		case FieldTypeFloat:
			if f.Size != 32 && f.Size != 64 {
				add(f.Name, IssueFloatWidth, "float width %d", f.Size)
			}
		case FieldTypeASCIIString, FieldTypeFixedString:
			if f.Size%8 != 0 {
				add(f.Name, IssueStringWidth, "string width %d is not a multiple of 8", f.Size)
			}
		case FieldTypeVariable:
			src, ok := seen[f.LengthFrom]
			if !ok || src >= i {
				add(f.Name, IssueLengthSource, "length source %q is not an earlier field", f.LengthFrom)
			}
		}

		if i >= groupStart && d.RepeatingFields > 0 && typ.DynamicWidth() {
			add(f.Name, IssueDynamicInGroup, "%s field inside repeating group is decoded at its declared width", typ)
		}
	}

	lintOverlap(d, add)

	if gb := d.GroupBits(); gb > 0 {
		if rest := sizeBits - d.FixedBits(); rest > 0 && rest%gb != 0 {
			add("", IssueGroupRemainder, "%d bits after the fixed prefix leave %d bits of a %d-bit group",
				rest, rest%gb, gb)
		}
	}
	return issues
}

func lintOverlap(d *Descriptor, add func(string, IssueCode, string, ...any)) {
	fixed := d.FixedFields()
	order := make([]int, len(fixed))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return fixed[order[a]].Start < fixed[order[b]].Start
	})
	for i := 1; i < len(order); i++ {
		prev, cur := &fixed[order[i-1]], &fixed[order[i]]
		if int(cur.Start) < prev.End() {
			add(cur.Name, IssueOverlap, "starts at bit %d inside %q (bits %d..%d)",
				cur.Start, prev.Name, prev.Start, prev.End()-1)
		}
	}
}
