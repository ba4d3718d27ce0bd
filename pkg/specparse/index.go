package specparse

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// IndexFile is the name of the definitions index inside a definitions
// directory.
const IndexFile = "index.yaml"

// RawIndex lists the definition files of a definitions directory.
type RawIndex struct {
	Version string   `yaml:"version"`
	Files   []string `yaml:"files"`
}

// ParseIndex parses a definitions index from YAML bytes.
func ParseIndex(data []byte) (*RawIndex, error) {
	var idx RawIndex
	if err := yaml.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("parsing definitions index: %w", err)
	}
	if idx.Version == "" {
		return nil, fmt.Errorf("definitions index missing version")
	}
	return &idx, nil
}

// LoadIndex loads and parses a definitions index from a file.
func LoadIndex(path string) (*RawIndex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseIndex(data)
}
