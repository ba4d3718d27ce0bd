// Package specparse reads PGN definition files. Both pgn-gen and tests
// that check the bundled table against its sources import this package.
package specparse

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RawPGNFile is one definition file: a list of PGN definitions.
type RawPGNFile struct {
	PGNs []RawPGNDef `yaml:"pgns"`
}

// RawPGNDef represents a PGN definition loaded from YAML.
type RawPGNDef struct {
	PGN             uint32        `yaml:"pgn"`
	Name            string        `yaml:"name"`
	Category        string        `yaml:"category"`
	Known           *bool         `yaml:"known"` // defaults to true
	Size            uint32        `yaml:"size"`  // bytes
	RepeatingFields uint32        `yaml:"repeatingFields"`
	Fields          []RawFieldDef `yaml:"fields"`
}

// RawFieldDef represents a field definition.
type RawFieldDef struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Type        string  `yaml:"type"` // "lookup", "decimal", ...; empty infers from multiplier
	Unit        string  `yaml:"unit"` // name or symbol
	Start       uint16  `yaml:"start"`
	Size        uint16  `yaml:"size"`
	Multiplier  float64 `yaml:"multiplier"`
	Offset      int64   `yaml:"offset"`
	Signed      bool    `yaml:"signed"`
	LengthFrom  string  `yaml:"lengthFrom"`
}

// ParsePGNFile parses a definition file from YAML bytes.
func ParsePGNFile(data []byte) (*RawPGNFile, error) {
	var file RawPGNFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing pgn definitions: %w", err)
	}
	for i, def := range file.PGNs {
		if def.Name == "" {
			return nil, fmt.Errorf("pgn definition %d (pgn %d) missing name", i, def.PGN)
		}
	}
	return &file, nil
}

// LoadPGNFile loads and parses a definition file.
func LoadPGNFile(path string) (*RawPGNFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParsePGNFile(data)
}
