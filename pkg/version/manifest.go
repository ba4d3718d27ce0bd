package version

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed manifests/*.yaml
var manifestFS embed.FS

// Manifest lists the PGNs a definitions version must cover.
type Manifest struct {
	Version     string       `yaml:"version"`
	Description string       `yaml:"description"`
	PGNs        []PGNRequire `yaml:"pgns"`
}

// PGNRequire is one PGN entry of a manifest.
type PGNRequire struct {
	PGN       uint32 `yaml:"pgn"`
	Name      string `yaml:"name"`
	Mandatory bool   `yaml:"mandatory"`
}

// ---------------------------------------------------------------------------
// Cache
// ---------------------------------------------------------------------------

var (
	cacheMu sync.RWMutex
	cache   = make(map[string]*Manifest)
)

// LoadManifest loads a coverage manifest by version string (e.g. "1.0").
func LoadManifest(ver string) (*Manifest, error) {
	cacheMu.RLock()
	if m, ok := cache[ver]; ok {
		cacheMu.RUnlock()
		return m, nil
	}
	cacheMu.RUnlock()

	data, err := manifestFS.ReadFile("manifests/" + ver + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("manifest version %q not found: %w", ver, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %q: %w", ver, err)
	}

	cacheMu.Lock()
	cache[ver] = &m
	cacheMu.Unlock()

	return &m, nil
}

// LoadCurrentManifest loads the manifest for the current format version.
func LoadCurrentManifest() (*Manifest, error) {
	return LoadManifest(Current)
}

// AvailableManifests returns the version strings of all embedded manifests.
func AvailableManifests() ([]string, error) {
	entries, err := manifestFS.ReadDir("manifests")
	if err != nil {
		return nil, fmt.Errorf("reading manifests directory: %w", err)
	}

	var versions []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") {
			versions = append(versions, strings.TrimSuffix(name, ".yaml"))
		}
	}
	sort.Strings(versions)
	return versions, nil
}

// Mandatory returns the mandatory PGNs in ascending order.
func (m *Manifest) Mandatory() []uint32 {
	var out []uint32
	for _, p := range m.PGNs {
		if p.Mandatory {
			out = append(out, p.PGN)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ---------------------------------------------------------------------------
// Validation
// ---------------------------------------------------------------------------

// ValidationResult holds the outcome of checking a definition set against
// a manifest.
type ValidationResult struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// ValidateCoverage checks that the defined PGNs, given as PGN to name,
// satisfy a manifest. A missing mandatory PGN is an error; a missing
// optional PGN or a name mismatch is a warning.
func ValidateCoverage(m *Manifest, defined map[uint32]string) ValidationResult {
	var result ValidationResult

	for _, req := range m.PGNs {
		name, present := defined[req.PGN]
		if !present {
			if req.Mandatory {
				result.Errors = append(result.Errors,
					fmt.Sprintf("mandatory pgn %d (%s) missing", req.PGN, req.Name))
			} else {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("pgn %d (%s) not defined", req.PGN, req.Name))
			}
			continue
		}
		if req.Name != "" && name != req.Name {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("pgn %d name mismatch: defined as %q, manifest expects %q",
					req.PGN, name, req.Name))
		}
	}

	result.Valid = len(result.Errors) == 0
	return result
}
