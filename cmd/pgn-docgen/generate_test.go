package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/libnmea/libnmea-go/pkg/pgn"
)

func testModel(t *testing.T) *DocModel {
	t.Helper()
	return BuildDocModel(pgn.Default(), pgn.DefinitionsVersion())
}

func mustContain(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Errorf("output does not contain %q\nOutput (first 2000 chars):\n%s", substr, truncate(output, 2000))
	}
}

func mustNotContain(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Errorf("output should not contain %q", substr)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "\n... (truncated)"
}

// --- PGN page tests ---

func TestGeneratePGNPage_Header(t *testing.T) {
	output := GeneratePGNPage(pgn.Default().Get(127250))

	mustContain(t, output, "# Vessel Heading")
	mustContain(t, output, "| **PGN** | 127250 (0x1F112) |")
	mustContain(t, output, "| **Category** | navigation |")
	mustContain(t, output, "| **Size** | 8 bytes |")
	mustContain(t, output, "| **Transport** | SINGLE_FRAME |")
	mustNotContain(t, output, "not fully documented")
}

func TestGeneratePGNPage_FieldTable(t *testing.T) {
	output := GeneratePGNPage(pgn.Default().Get(127250))

	mustContain(t, output, "## Fields")
	mustContain(t, output, "| 8-23 | `Heading` | decimal | rad | ×0.0001 |")
	mustContain(t, output, "| 24-39 | `Deviation` | signed decimal | rad | ×0.0001 |")
	mustContain(t, output, "| 56-57 | `Reference` | lookup |")
	mustNotContain(t, output, "## Repeating Group")
	mustNotContain(t, output, "## Variable Length")
}

func TestGeneratePGNPage_InferredTypeAndDescription(t *testing.T) {
	output := GeneratePGNPage(pgn.Default().Get(59392))

	mustContain(t, output, "| 8-15 | `Group Function` | integer (inferred) |")
	mustContain(t, output, "Parameter group number of requested information")
}

func TestGeneratePGNPage_RepeatingGroup(t *testing.T) {
	output := GeneratePGNPage(pgn.Default().Get(127501))

	mustContain(t, output, "## Repeating Group")
	mustContain(t, output, "The last 1 fields repeat every 2 bits until the payload ends.")
	mustContain(t, output, "| 8-9 | `Indicator` | lookup |")
	mustContain(t, output, `8-9: "Indicator (repeats)"`)
}

func TestGeneratePGNPage_VariableLength(t *testing.T) {
	output := GeneratePGNPage(pgn.Default().Get(130816))

	mustContain(t, output, "> The layout of this PGN is not fully documented.")
	mustContain(t, output, "| **Transport** | FAST_PACKET |")
	mustContain(t, output, "## Variable Length")
	mustContain(t, output, "`Data` holds the number of bytes given by `Data Length`.")
}

func TestGeneratePGNPage_WideStrings(t *testing.T) {
	output := GeneratePGNPage(pgn.Default().Get(126998))

	mustContain(t, output, "starts with a length byte and an encoding byte.")
}

// --- Diagram tests ---

func TestLayoutDiagram_Gaps(t *testing.T) {
	output := LayoutDiagram(pgn.Default().Unknown())

	want := "```mermaid\npacket-beta\n" +
		"  0-10: \"Manufacturer Code\"\n" +
		"  11-12: \"(gap)\"\n" +
		"  13-15: \"Industry Code\"\n" +
		"```\n"
	if output != want {
		t.Errorf("LayoutDiagram() =\n%s\nwant:\n%s", output, want)
	}
}

func TestLayoutDiagram_LeadingGap(t *testing.T) {
	output := LayoutDiagram(pgn.Default().Get(59904))

	mustContain(t, output, "  0-39: \"(gap)\"\n")
	mustContain(t, output, "  40-63: \"PGN\"\n")
}

func TestLayoutDiagram_SingleBitAndOverlap(t *testing.T) {
	d := &pgn.Descriptor{
		Name: "Test",
		Fields: []pgn.Field{
			{Name: "Flag", Start: 0, Size: 1},
			{Name: "Value", Start: 1, Size: 7},
			{Name: "Alias", Start: 4, Size: 4},
		},
	}
	output := LayoutDiagram(d)

	mustContain(t, output, "  0: \"Flag\"\n")
	mustContain(t, output, "  1-7: \"Value\"\n")
	mustNotContain(t, output, "Alias")
}

func TestLayoutDiagram_Empty(t *testing.T) {
	if got := LayoutDiagram(&pgn.Descriptor{Name: "Empty"}); got != "" {
		t.Errorf("expected no diagram, got %q", got)
	}
}

// --- Index and nav tests ---

func TestIndexPage(t *testing.T) {
	m := testModel(t)
	output, err := renderTemplate("index", m)
	if err != nil {
		t.Fatalf("renderTemplate failed: %v", err)
	}

	mustContain(t, output, "# PGN Reference")
	mustContain(t, output, "Definitions format 1.0")
	mustContain(t, output, "## navigation")
	mustContain(t, output, "| 127250 | 0x1F112 | [Vessel Heading](pgns/127250-vessel-heading.md) | 8 | Yes |")
	mustContain(t, output, "| 65280 | 0x0FF00 | [Manufacturer Proprietary Single Frame](pgns/65280-manufacturer-proprietary-single-frame.md) | 8 |  |")

	// Categories follow enumeration order.
	if strings.Index(output, "## mandatory") > strings.Index(output, "## proprietary") {
		t.Error("expected mandatory before proprietary")
	}
}

func TestGenerateNav(t *testing.T) {
	m := testModel(t)
	output, err := GenerateNav(m)
	if err != nil {
		t.Fatalf("GenerateNav failed: %v", err)
	}

	mustContain(t, output, "# Code generated by pgn-docgen. DO NOT EDIT.")
	mustContain(t, output, "nav:")
	mustContain(t, output, "Overview: index.md")
	mustContain(t, output, "127250 Vessel Heading: pgns/127250-vessel-heading.md")
}

func TestBuildDocModel(t *testing.T) {
	m := testModel(t)

	if len(m.Descriptors) != pgn.Default().Len() {
		t.Fatalf("expected %d descriptors, got %d", pgn.Default().Len(), len(m.Descriptors))
	}
	for i := 1; i < len(m.Descriptors); i++ {
		if m.Descriptors[i-1].PGN >= m.Descriptors[i].PGN {
			t.Fatalf("descriptors not sorted at %d: %d >= %d", i, m.Descriptors[i-1].PGN, m.Descriptors[i].PGN)
		}
	}
	if m.Descriptors[0].PGN != pgn.UnknownPGN {
		t.Errorf("expected fallback first, got %d", m.Descriptors[0].PGN)
	}
	if m.Fingerprint != pgn.Default().Fingerprint() {
		t.Error("fingerprint mismatch")
	}

	cats := m.Categories()
	if len(cats) == 0 || cats[0] != pgn.CategoryMandatory {
		t.Errorf("unexpected categories: %v", cats)
	}
	total := 0
	for _, c := range cats {
		total += len(m.ByCategory[c])
	}
	if total != len(m.Descriptors) {
		t.Errorf("category index covers %d of %d descriptors", total, len(m.Descriptors))
	}
}

// --- End to end ---

func TestEndToEnd_AllPages(t *testing.T) {
	m := testModel(t)
	outputDir := t.TempDir()

	if err := generateAll(m, outputDir); err != nil {
		t.Fatalf("generateAll failed: %v", err)
	}

	for _, d := range m.Descriptors {
		path := filepath.Join(outputDir, "pgns", pgnSlug(d)+".md")
		data, err := os.ReadFile(path)
		if err != nil {
			t.Errorf("expected page for %d: %v", d.PGN, err)
			continue
		}
		if !strings.HasPrefix(string(data), "# "+d.Name+"\n") {
			t.Errorf("page for %d has wrong title", d.PGN)
		}
	}

	for _, name := range []string{"index.md", "nav.yml"} {
		if _, err := os.Stat(filepath.Join(outputDir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
}

func TestRunFromDefinitions(t *testing.T) {
	defsDir := filepath.Join("..", "..", "docs", "pgns")
	outputDir := t.TempDir()

	if err := run(defsDir, outputDir); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outputDir, "pgns", "128267-water-depth.md"))
	if err != nil {
		t.Fatalf("expected water depth page: %v", err)
	}
	mustContain(t, string(data), "| 8-39 | `Depth` | decimal | m | ×0.01 |")
}

func TestRunMissingDefinitions(t *testing.T) {
	if err := run(filepath.Join(t.TempDir(), "missing"), t.TempDir()); err == nil {
		t.Error("expected error for missing definitions directory")
	}
}
