package specparse

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/libnmea/libnmea-go/pkg/pgn"
)

// defsDir returns the absolute path to docs/pgns/ relative to this test file.
func defsDir(t *testing.T) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine test file path")
	}
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "docs", "pgns")
}

func TestParsePGNFile_Minimal(t *testing.T) {
	yaml := `
pgns:
  - pgn: 127250
    name: Vessel Heading
    category: navigation
    size: 8
    fields:
      - name: Heading
        type: decimal
        unit: radians
        start: 8
        size: 16
        multiplier: 0.0001
      - name: Deviation
        unit: rad
        start: 24
        size: 16
        multiplier: 0.0001
        signed: true
`
	file, err := ParsePGNFile([]byte(yaml))
	if err != nil {
		t.Fatalf("ParsePGNFile failed: %v", err)
	}
	if len(file.PGNs) != 1 {
		t.Fatalf("len(pgns) = %d, want 1", len(file.PGNs))
	}

	d, err := file.PGNs[0].Descriptor()
	if err != nil {
		t.Fatalf("Descriptor failed: %v", err)
	}
	if d.PGN != 127250 || d.Name != "Vessel Heading" {
		t.Errorf("descriptor = %d %q", d.PGN, d.Name)
	}
	if d.Category != pgn.CategoryNavigation {
		t.Errorf("category = %v, want navigation", d.Category)
	}
	if !d.IsKnown {
		t.Error("known should default to true")
	}
	if len(d.Fields) != 2 {
		t.Fatalf("len(fields) = %d, want 2", len(d.Fields))
	}

	heading := d.Fields[0]
	if typ, ok := heading.Type.Get(); !ok || typ != pgn.FieldTypeDecimal {
		t.Errorf("heading type = %v", heading.Type)
	}
	if u, ok := heading.Unit.Get(); !ok || u != pgn.UnitRadians {
		t.Errorf("heading unit = %v", heading.Unit)
	}

	deviation := d.Fields[1]
	if deviation.Type.IsSome() {
		t.Errorf("deviation type = %v, want none", deviation.Type)
	}
	if deviation.DecodeType() != pgn.FieldTypeDecimal {
		t.Errorf("deviation decode type = %v, want decimal", deviation.DecodeType())
	}
	if u, _ := deviation.Unit.Get(); u != pgn.UnitRadians {
		t.Errorf("unit symbol not resolved: %v", deviation.Unit)
	}
	if !deviation.Signed {
		t.Error("signed = false, want true")
	}
}

func TestParsePGNFile_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing name", "pgns:\n  - pgn: 1\n    category: general\n"},
		{"bad yaml", "pgns: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParsePGNFile([]byte(tt.yaml)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDescriptor_BadEnums(t *testing.T) {
	tests := []struct {
		name string
		def  RawPGNDef
	}{
		{"category", RawPGNDef{PGN: 1, Name: "x", Category: "weather"}},
		{"type", RawPGNDef{PGN: 1, Name: "x", Category: "general",
			Fields: []RawFieldDef{{Name: "f", Type: "bitmap", Size: 8}}}},
		{"unit", RawPGNDef{PGN: 1, Name: "x", Category: "general",
			Fields: []RawFieldDef{{Name: "f", Unit: "furlongs", Size: 8}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.def.Descriptor(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseIndex(t *testing.T) {
	idx, err := ParseIndex([]byte("version: \"1.0\"\nfiles: [a.yaml, b.yaml]\n"))
	if err != nil {
		t.Fatalf("ParseIndex failed: %v", err)
	}
	if diff := cmp.Diff([]string{"a.yaml", "b.yaml"}, idx.Files); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}

	if _, err := ParseIndex([]byte("files: [a.yaml]\n")); err == nil {
		t.Error("index without version should fail")
	}
}

func TestLoadDefinitions_Bundled(t *testing.T) {
	defs, err := LoadDefinitions(defsDir(t))
	if err != nil {
		t.Fatalf("LoadDefinitions failed: %v", err)
	}
	if defs.Version != pgn.DefinitionsVersion() {
		t.Errorf("version = %q, generated table has %q", defs.Version, pgn.DefinitionsVersion())
	}

	reg, err := defs.Registry()
	if err != nil {
		t.Fatalf("Registry failed: %v", err)
	}

	// The generated table must match its sources.
	if reg.Fingerprint() != pgn.Default().Fingerprint() {
		var want []pgn.Descriptor
		for d := range pgn.Default().All() {
			want = append(want, *d)
		}
		opts := cmp.AllowUnexported(pgn.Option[string]{}, pgn.Option[pgn.Unit]{}, pgn.Option[pgn.FieldType]{})
		t.Errorf("definitions_gen.go is stale, run go generate (-generated +yaml):\n%s",
			cmp.Diff(want, defs.Descriptors, opts))
	}
}

func TestLoadDefinitions_IncompatibleVersion(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, IndexFile), "version: \"2.0\"\nfiles: []\n")

	if _, err := LoadDefinitions(dir); err == nil {
		t.Error("expected version error")
	}
}

func TestLoadDefinitions_Order(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, IndexFile), "version: \"1.0\"\nfiles: [b.yaml, a.yaml]\n")
	writeFile(t, filepath.Join(dir, "a.yaml"), `
pgns:
  - pgn: 0
    name: Unknown PGN
    category: mandatory
    known: false
    size: 8
    fields:
      - {name: Manufacturer Code, type: lookup, start: 0, size: 11}
`)
	writeFile(t, filepath.Join(dir, "b.yaml"), `
pgns:
  - pgn: 127250
    name: Vessel Heading
    category: navigation
    size: 8
    fields:
      - {name: SID, type: integer, start: 0, size: 8}
`)

	defs, err := LoadDefinitions(dir)
	if err != nil {
		t.Fatalf("LoadDefinitions failed: %v", err)
	}
	if diff := cmp.Diff([]string{"b.yaml", "a.yaml"}, defs.Sources); diff != "" {
		t.Errorf("sources (-want +got):\n%s", diff)
	}
	if len(defs.Descriptors) != 2 || defs.Descriptors[0].PGN != 127250 {
		t.Fatalf("descriptors not in index order: %+v", defs.Descriptors)
	}
	if defs.Descriptors[1].IsKnown {
		t.Error("known: false not honoured")
	}
}
