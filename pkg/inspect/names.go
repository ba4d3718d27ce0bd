package inspect

import (
	"strings"

	"github.com/libnmea/libnmea-go/pkg/pgn"
	"github.com/libnmea/libnmea-go/pkg/specparse"
)

// ResolvePGN resolves a PGN number (decimal or 0x hex), a descriptor name
// or its slug to a registered PGN. Names are matched case-insensitively.
func ResolvePGN(reg *pgn.Registry, s string) (uint32, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := parseUint(s, 24); err == nil {
		if _, ok := reg.Lookup(uint32(n)); ok {
			return uint32(n), true
		}
		return 0, false
	}

	slug := specparse.Slug(s)
	for d := range reg.All() {
		if strings.EqualFold(d.Name, s) || specparse.Slug(d.Name) == slug {
			return d.PGN, true
		}
	}
	return 0, false
}

// ResolveFieldName returns the name of the field in d matching name,
// compared case-insensitively or by slug.
func ResolveFieldName(d *pgn.Descriptor, name string) (string, bool) {
	slug := specparse.Slug(name)
	for i := range d.Fields {
		f := &d.Fields[i]
		if strings.EqualFold(f.Name, name) || specparse.Slug(f.Name) == slug {
			return f.Name, true
		}
	}
	return "", false
}

// PGNName returns the registered name for id, or "" if none.
func PGNName(reg *pgn.Registry, id uint32) string {
	if d, ok := reg.Lookup(id); ok {
		return d.Name
	}
	return ""
}
