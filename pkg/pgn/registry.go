package pgn

import (
	"encoding/hex"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"strconv"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// MaxPGN is the largest valid parameter group number.
const MaxPGN = 1<<24 - 1

// UnknownPGN is the identifier of the fallback descriptor.
const UnknownPGN = 0

// Registry errors.
var (
	ErrDuplicatePGN = errors.New("duplicate pgn")
	ErrInvalidPGN   = errors.New("pgn out of range")
	ErrNoFallback   = errors.New("no fallback descriptor for pgn 0")
	ErrInvalidField = errors.New("invalid field")
)

// Registry is an immutable table of PGN descriptors. It is safe for
// concurrent use. Descriptors returned by a Registry must not be modified.
type Registry struct {
	defs        []Descriptor
	index       map[uint32]int
	unknown     int
	fingerprint string
}

// NewRegistry builds a registry from defs. The slice order is kept as the
// enumeration order. defs must contain exactly one descriptor per PGN and
// one for PGN 0, which is returned for unregistered identifiers.
func NewRegistry(defs []Descriptor) (*Registry, error) {
	r := &Registry{
		defs:  make([]Descriptor, 0, len(defs)),
		index: make(map[uint32]int, len(defs)),
	}

	for i := range defs {
		d := defs[i].clone()
		if d.PGN > MaxPGN {
			return nil, fmt.Errorf("%w: %d", ErrInvalidPGN, d.PGN)
		}
		if _, dup := r.index[d.PGN]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicatePGN, d.PGN)
		}
		if err := validateFields(&d); err != nil {
			return nil, err
		}
		r.index[d.PGN] = len(r.defs)
		r.defs = append(r.defs, d)
	}

	idx, ok := r.index[UnknownPGN]
	if !ok {
		return nil, ErrNoFallback
	}
	r.unknown = idx
	r.fingerprint = fingerprint(r.defs)
	return r, nil
}

func validateFields(d *Descriptor) error {
	if int(d.RepeatingFields) > len(d.Fields) {
		return fmt.Errorf("%w: pgn %d: %d repeating fields but only %d fields",
			ErrInvalidField, d.PGN, d.RepeatingFields, len(d.Fields))
	}
	for i := range d.Fields {
		f := &d.Fields[i]
		if f.Size == 0 {
			return fmt.Errorf("%w: pgn %d field %q: zero size", ErrInvalidField, d.PGN, f.Name)
		}
		if f.DecodeType() == FieldTypeVariable && f.LengthFrom == "" {
			return fmt.Errorf("%w: pgn %d field %q: variable field without length source",
				ErrInvalidField, d.PGN, f.Name)
		}
	}
	return nil
}

// Get returns the descriptor for pgn, or the fallback descriptor if pgn is
// not registered. It never returns nil.
func (r *Registry) Get(pgn uint32) *Descriptor {
	if idx, ok := r.index[pgn]; ok {
		return &r.defs[idx]
	}
	return &r.defs[r.unknown]
}

// Lookup returns the descriptor registered for pgn and whether it exists.
// Unlike Get it does not substitute the fallback.
func (r *Registry) Lookup(pgn uint32) (*Descriptor, bool) {
	idx, ok := r.index[pgn]
	if !ok {
		return nil, false
	}
	return &r.defs[idx], true
}

// Unknown returns the fallback descriptor.
func (r *Registry) Unknown() *Descriptor {
	return &r.defs[r.unknown]
}

// All yields every descriptor in declaration order, the fallback included.
func (r *Registry) All() iter.Seq[*Descriptor] {
	return func(yield func(*Descriptor) bool) {
		for i := range r.defs {
			if !yield(&r.defs[i]) {
				return
			}
		}
	}
}

// Len returns the number of descriptors.
func (r *Registry) Len() int {
	return len(r.defs)
}

// Fingerprint returns a hex BLAKE2b-256 digest of the registry contents.
// Two registries with the same descriptors in the same order share a
// fingerprint.
func (r *Registry) Fingerprint() string {
	return r.fingerprint
}

// Lint checks every descriptor and returns the issues found.
func (r *Registry) Lint() []Issue {
	var issues []Issue
	for d := range r.All() {
		issues = append(issues, Lint(d)...)
	}
	return issues
}

func fingerprint(defs []Descriptor) string {
	h, _ := blake2b.New256(nil)
	var buf []byte
	for i := range defs {
		d := &defs[i]
		buf = buf[:0]
		buf = strconv.AppendUint(buf, uint64(d.PGN), 10)
		buf = append(buf, '|')
		buf = append(buf, d.Name...)
		buf = append(buf, '|')
		buf = append(buf, d.Category.String()...)
		buf = append(buf, '|')
		buf = strconv.AppendBool(buf, d.IsKnown)
		buf = append(buf, '|')
		buf = strconv.AppendUint(buf, uint64(d.Size), 10)
		buf = append(buf, '|')
		buf = strconv.AppendUint(buf, uint64(d.RepeatingFields), 10)
		buf = append(buf, '\n')
		for j := range d.Fields {
			buf = appendField(buf, &d.Fields[j])
		}
		h.Write(buf)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func appendField(buf []byte, f *Field) []byte {
	buf = append(buf, '\t')
	buf = append(buf, f.Name...)
	buf = append(buf, '|')
	buf = append(buf, f.Description.OrElse("")...)
	buf = append(buf, '|')
	buf = append(buf, f.Unit.String()...)
	buf = append(buf, '|')
	buf = append(buf, f.Type.String()...)
	buf = append(buf, '|')
	buf = strconv.AppendUint(buf, uint64(f.Start), 10)
	buf = append(buf, '|')
	buf = strconv.AppendUint(buf, uint64(f.Size), 10)
	buf = append(buf, '|')
	buf = strconv.AppendFloat(buf, f.Multiplier, 'g', -1, 64)
	buf = append(buf, '|')
	buf = strconv.AppendInt(buf, f.Offset, 10)
	buf = append(buf, '|')
	buf = strconv.AppendBool(buf, f.Signed)
	buf = append(buf, '|')
	buf = append(buf, f.LengthFrom...)
	buf = append(buf, '\n')
	return buf
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r, err := NewRegistry(definitions)
	if err != nil {
		panic(fmt.Sprintf("pgn: bundled definitions: %v", err))
	}
	for _, issue := range r.Lint() {
		slog.Debug("pgn definition issue", "pgn", issue.PGN, "field", issue.Field,
			"code", issue.Code.String(), "msg", issue.Message)
	}
	return r
})

// Default returns the registry built from the bundled definitions. It is
// built on first use and shared afterwards.
func Default() *Registry {
	return defaultRegistry()
}

// DefinitionsVersion returns the definitions format version the bundled
// table was generated from.
func DefinitionsVersion() string {
	return definitionsVersion
}
