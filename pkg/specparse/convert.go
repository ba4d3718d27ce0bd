package specparse

import (
	"fmt"
	"path/filepath"

	"github.com/libnmea/libnmea-go/pkg/pgn"
	"github.com/libnmea/libnmea-go/pkg/version"
)

// Descriptor converts the raw definition into a registry descriptor.
func (def *RawPGNDef) Descriptor() (pgn.Descriptor, error) {
	cat, err := pgn.ParseCategory(def.Category)
	if err != nil {
		return pgn.Descriptor{}, fmt.Errorf("pgn %d: %w", def.PGN, err)
	}

	d := pgn.Descriptor{
		Name:            def.Name,
		Category:        cat,
		PGN:             def.PGN,
		IsKnown:         def.Known == nil || *def.Known,
		Size:            def.Size,
		RepeatingFields: def.RepeatingFields,
		Fields:          make([]pgn.Field, 0, len(def.Fields)),
	}
	for i := range def.Fields {
		f, err := def.Fields[i].Field()
		if err != nil {
			return pgn.Descriptor{}, fmt.Errorf("pgn %d: %w", def.PGN, err)
		}
		d.Fields = append(d.Fields, f)
	}
	return d, nil
}

// Field converts the raw field definition.
func (raw *RawFieldDef) Field() (pgn.Field, error) {
	f := pgn.Field{
		Name:       raw.Name,
		Start:      raw.Start,
		Size:       raw.Size,
		Multiplier: raw.Multiplier,
		Offset:     raw.Offset,
		Signed:     raw.Signed,
		LengthFrom: raw.LengthFrom,
	}
	if raw.Description != "" {
		f.Description = pgn.Some(raw.Description)
	}
	if raw.Type != "" {
		t, err := pgn.ParseFieldType(raw.Type)
		if err != nil {
			return pgn.Field{}, fmt.Errorf("field %q: %w", raw.Name, err)
		}
		f.Type = pgn.Some(t)
	}
	if raw.Unit != "" {
		u, err := pgn.ParseUnit(raw.Unit)
		if err != nil {
			return pgn.Field{}, fmt.Errorf("field %q: %w", raw.Name, err)
		}
		f.Unit = pgn.Some(u)
	}
	return f, nil
}

// Definitions is a fully loaded definitions directory.
type Definitions struct {
	Version     string
	Sources     []string
	Descriptors []pgn.Descriptor
}

// LoadDefinitions reads the index of dir and every file it lists, in
// order, and converts them to descriptors.
func LoadDefinitions(dir string) (*Definitions, error) {
	idx, err := LoadIndex(filepath.Join(dir, IndexFile))
	if err != nil {
		return nil, err
	}
	if err := version.Check(idx.Version); err != nil {
		return nil, fmt.Errorf("%s: %w", IndexFile, err)
	}

	defs := &Definitions{Version: idx.Version}
	for _, name := range idx.Files {
		path := filepath.Join(dir, name)
		file, err := LoadPGNFile(path)
		if err != nil {
			return nil, err
		}
		for i := range file.PGNs {
			d, err := file.PGNs[i].Descriptor()
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			defs.Descriptors = append(defs.Descriptors, d)
		}
		defs.Sources = append(defs.Sources, name)
	}
	return defs, nil
}

// Registry builds a registry from the loaded descriptors.
func (d *Definitions) Registry() (*pgn.Registry, error) {
	return pgn.NewRegistry(d.Descriptors)
}
