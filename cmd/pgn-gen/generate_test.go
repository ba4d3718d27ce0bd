package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/imports"
	"gopkg.in/yaml.v3"

	"github.com/libnmea/libnmea-go/pkg/pgn"
	"github.com/libnmea/libnmea-go/pkg/specparse"
	"github.com/libnmea/libnmea-go/pkg/version"
)

func defsDir() string {
	return filepath.Join("..", "..", "docs", "pgns")
}

func loadDefs(t *testing.T) *specparse.Definitions {
	t.Helper()
	defs, err := specparse.LoadDefinitions(defsDir())
	if err != nil {
		t.Fatalf("LoadDefinitions failed: %v", err)
	}
	return defs
}

func TestBundledDefinitionsUpToDate(t *testing.T) {
	defs := loadDefs(t)

	reg, err := defs.Registry()
	if err != nil {
		t.Fatalf("Registry failed: %v", err)
	}
	if defs.Version != pgn.DefinitionsVersion() {
		t.Errorf("definitions version %s, bundled %s", defs.Version, pgn.DefinitionsVersion())
	}
	if reg.Fingerprint() != pgn.Default().Fingerprint() {
		t.Error("pkg/pgn/definitions_gen.go is stale; rerun pgn-gen")
	}
}

func TestGenerateDefinitions(t *testing.T) {
	code, err := GenerateDefinitions(loadDefs(t))
	if err != nil {
		t.Fatalf("GenerateDefinitions failed: %v", err)
	}

	for _, want := range []string{
		"// Code generated by pgn-gen. DO NOT EDIT.",
		"// Sources: mandatory.yaml, general.yaml",
		"package pgn",
		`const definitionsVersion = "1.0"`,
		"PGN:             127250,",
		"Category:        CategoryNavigation,",
		"RepeatingFields: 1,",
		`{Name: "Data", Type: Some(FieldTypeVariable), Start: 24, Size: 8, LengthFrom: "Data Length"},`,
	} {
		if !strings.Contains(code, want) {
			t.Errorf("generated code does not contain %q", want)
		}
	}

	if _, err := imports.Process("definitions_gen.go", []byte(code), nil); err != nil {
		t.Errorf("generated code does not format: %v", err)
	}
}

func TestGenerateDefinitionsBadConstant(t *testing.T) {
	defs := &specparse.Definitions{
		Version: "1.0",
		Descriptors: []pgn.Descriptor{{
			Name:     "Broken",
			Category: pgn.Category(200),
		}},
	}
	if _, err := GenerateDefinitions(defs); err == nil || !strings.Contains(err.Error(), "no constant for category 200") {
		t.Errorf("expected constant error, got %v", err)
	}
}

func TestFieldLiteral(t *testing.T) {
	tests := []struct {
		name  string
		field pgn.Field
		want  string
	}{
		{
			name:  "minimal",
			field: pgn.Field{Name: "Group Function", Start: 8, Size: 8},
			want:  `{Name: "Group Function", Start: 8, Size: 8}`,
		},
		{
			name: "decimal",
			field: pgn.Field{
				Name: "Deviation", Unit: pgn.Some(pgn.UnitRadians), Type: pgn.Some(pgn.FieldTypeDecimal),
				Start: 24, Size: 16, Multiplier: 0.0001, Signed: true,
			},
			want: `{Name: "Deviation", Unit: Some(UnitRadians), Type: Some(FieldTypeDecimal), Start: 24, Size: 16, Multiplier: 0.0001, Signed: true}`,
		},
		{
			name: "description and offset",
			field: pgn.Field{
				Name: "Temp", Description: pgn.Some(`say "hi"`), Start: 0, Size: 8, Offset: 40,
			},
			want: `{Name: "Temp", Description: Some("say \"hi\""), Start: 0, Size: 8, Offset: 40}`,
		},
		{
			name:  "tiny multiplier",
			field: pgn.Field{Name: "Rate", Start: 8, Size: 32, Multiplier: 3.125e-08},
			want:  `{Name: "Rate", Start: 8, Size: 32, Multiplier: 3.125e-08}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fieldLiteral(tt.field); got != tt.want {
				t.Errorf("fieldLiteral() =\n  %s\nwant\n  %s", got, tt.want)
			}
		})
	}
}

func TestDeriveManifest(t *testing.T) {
	defs := loadDefs(t)

	out, err := DeriveManifest(defs, "test manifest")
	if err != nil {
		t.Fatalf("DeriveManifest failed: %v", err)
	}
	if !strings.HasPrefix(out, "# Code generated by pgn-gen. DO NOT EDIT.\n") {
		t.Errorf("missing generated header:\n%s", out)
	}

	var m version.Manifest
	if err := yaml.Unmarshal([]byte(out), &m); err != nil {
		t.Fatalf("manifest is not valid YAML: %v", err)
	}
	if m.Version != defs.Version || m.Description != "test manifest" {
		t.Errorf("unexpected manifest header: %+v", m)
	}
	if len(m.PGNs) != len(defs.Descriptors) {
		t.Fatalf("expected %d entries, got %d", len(defs.Descriptors), len(m.PGNs))
	}

	mandatory := make(map[uint32]bool)
	for _, p := range m.PGNs {
		mandatory[p.PGN] = p.Mandatory
	}
	if !mandatory[59904] || mandatory[127250] {
		t.Errorf("unexpected mandatory flags: 59904=%v 127250=%v", mandatory[59904], mandatory[127250])
	}

	// The derived manifest must satisfy its own coverage check.
	defined := make(map[uint32]string)
	for _, d := range defs.Descriptors {
		defined[d.PGN] = d.Name
	}
	if res := version.ValidateCoverage(&m, defined); !res.Valid {
		t.Errorf("derived manifest not covered: %v", res.Errors)
	}
}

func TestRun(t *testing.T) {
	outDir := t.TempDir()
	manifestPath := filepath.Join(outDir, "manifests", "derived.yaml")

	if err := run(defsDir(), outDir, manifestPath, false); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outDir, "definitions_gen.go"))
	if err != nil {
		t.Fatalf("expected definitions_gen.go: %v", err)
	}
	if !strings.Contains(string(data), "var definitions = []Descriptor{") {
		t.Error("generated file missing definitions table")
	}
	if _, err := os.Stat(manifestPath); err != nil {
		t.Errorf("expected manifest: %v", err)
	}
}

func TestRunMissingDefinitions(t *testing.T) {
	if err := run(filepath.Join(t.TempDir(), "missing"), t.TempDir(), "", false); err == nil {
		t.Error("expected error for missing definitions")
	}
}
