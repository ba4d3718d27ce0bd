// Package inspect provides lookup and display utilities for decoded
// payloads.
//
// The inspect package offers:
//   - Parsing path expressions (e.g., "127503/2/voltage")
//   - Resolving PGN and field names
//   - Keeping the latest decoded payload per PGN
//   - Formatting output for display
package inspect

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/libnmea/libnmea-go/pkg/pgn"
)

// Path errors.
var (
	ErrEmptyPath     = errors.New("empty path")
	ErrInvalidPath   = errors.New("invalid path format")
	ErrInvalidNumber = errors.New("invalid numeric value in path")
	ErrUnknownPGN    = errors.New("unknown pgn")
	ErrUnknownField  = errors.New("unknown field")
)

// Path represents a parsed inspection path.
// Format: pgn[/group]/field or pgn
type Path struct {
	// PGN is the registered parameter group number.
	PGN uint32

	// Group is the 1-based repeating group instance, 0 for fixed fields.
	Group int

	// Field is the resolved field name.
	Field string

	// IsPartial indicates the path names a PGN without a field.
	IsPartial bool

	// Raw stores the original input string.
	Raw string
}

// ParsePath parses a path string against reg.
//
// Supported formats:
//   - "pgn" - partial (for showing every field)
//   - "pgn/field" - fixed field
//   - "pgn/group/field" - field of a repeating group instance
//
// The PGN may be a number (decimal or 0x hex), a name or a slug. Field
// names are matched case-insensitively or by slug. Fields of unregistered
// numbers resolve against the fallback descriptor.
func ParsePath(reg *pgn.Registry, input string) (*Path, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyPath
	}
	if strings.HasPrefix(input, "/") || strings.HasSuffix(input, "/") || strings.Contains(input, "//") {
		return nil, ErrInvalidPath
	}

	parts := strings.Split(input, "/")
	if len(parts) > 3 {
		return nil, fmt.Errorf("%w: too many segments", ErrInvalidPath)
	}

	id, ok := ResolvePGN(reg, parts[0])
	if !ok {
		// Unregistered numbers address payloads decoded with the fallback
		// descriptor.
		n, err := parseUint(parts[0], 24)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPGN, parts[0])
		}
		id = uint32(n)
	}
	p := &Path{PGN: id, Raw: input}
	d := reg.Get(id)

	switch len(parts) {
	case 1:
		p.IsPartial = true
		return p, nil
	case 3:
		g, err := parseUint(parts[1], 16)
		if err != nil || g == 0 {
			return nil, fmt.Errorf("%w: group %q", ErrInvalidNumber, parts[1])
		}
		if d.RepeatingFields == 0 {
			return nil, fmt.Errorf("%w: pgn %d has no repeating group", ErrInvalidPath, id)
		}
		p.Group = int(g)
	}

	name, ok := ResolveFieldName(d, parts[len(parts)-1])
	if !ok {
		return nil, fmt.Errorf("%w: %q in pgn %d", ErrUnknownField, parts[len(parts)-1], id)
	}
	p.Field = name
	return p, nil
}

// String returns the canonical form of the path.
func (p *Path) String() string {
	switch {
	case p.IsPartial:
		return strconv.FormatUint(uint64(p.PGN), 10)
	case p.Group > 0:
		return fmt.Sprintf("%d/%d/%s", p.PGN, p.Group, p.Field)
	default:
		return fmt.Sprintf("%d/%s", p.PGN, p.Field)
	}
}

// parseUint parses a decimal or 0x-prefixed hex number of at most bits
// bits.
func parseUint(s string, bits int) (uint64, error) {
	s = strings.TrimSpace(s)
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
	}
	v, err := strconv.ParseUint(s, base, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidNumber, s)
	}
	return v, nil
}
