package main

import (
	"slices"

	"github.com/libnmea/libnmea-go/pkg/pgn"
	"github.com/libnmea/libnmea-go/pkg/specparse"
)

// DocModel holds the registry data the pages are rendered from.
type DocModel struct {
	Version     string
	Fingerprint string
	Descriptors []*pgn.Descriptor // sorted by PGN
	ByCategory  map[pgn.Category][]*pgn.Descriptor
}

// loadModel builds the model from a definitions directory, or from the
// bundled registry when dir is empty.
func loadModel(dir string) (*DocModel, error) {
	if dir == "" {
		return BuildDocModel(pgn.Default(), pgn.DefinitionsVersion()), nil
	}

	defs, err := specparse.LoadDefinitions(dir)
	if err != nil {
		return nil, err
	}
	reg, err := defs.Registry()
	if err != nil {
		return nil, err
	}
	return BuildDocModel(reg, defs.Version), nil
}

// BuildDocModel indexes the descriptors of reg.
func BuildDocModel(reg *pgn.Registry, version string) *DocModel {
	m := &DocModel{
		Version:     version,
		Fingerprint: reg.Fingerprint(),
		ByCategory:  make(map[pgn.Category][]*pgn.Descriptor),
	}
	for d := range reg.All() {
		m.Descriptors = append(m.Descriptors, d)
	}
	slices.SortFunc(m.Descriptors, func(a, b *pgn.Descriptor) int {
		return int(a.PGN) - int(b.PGN)
	})
	for _, d := range m.Descriptors {
		m.ByCategory[d.Category] = append(m.ByCategory[d.Category], d)
	}
	return m
}

// Categories returns the categories that have descriptors, in enumeration
// order.
func (m *DocModel) Categories() []pgn.Category {
	var cats []pgn.Category
	for c := range m.ByCategory {
		cats = append(cats, c)
	}
	slices.Sort(cats)
	return cats
}
