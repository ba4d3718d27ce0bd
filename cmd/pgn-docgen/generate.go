package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/libnmea/libnmea-go/pkg/pgn"
)

// GeneratePGNPage produces the Markdown content for one PGN reference page.
func GeneratePGNPage(d *pgn.Descriptor) string {
	var b strings.Builder

	writePGNHeader(&b, d)
	writeFieldTable(&b, "Fields", d.FixedFields())
	if group := d.RepeatingGroup(); len(group) > 0 {
		fmt.Fprintf(&b, "## Repeating Group\n\n")
		fmt.Fprintf(&b, "The last %d fields repeat every %d bits until the payload ends.\n\n",
			d.RepeatingFields, d.GroupBits())
		writeFieldTable(&b, "", group)
	}
	writeLengthNotes(&b, d)

	if diagram := LayoutDiagram(d); diagram != "" {
		b.WriteString("## Bit Layout\n\n")
		b.WriteString(diagram)
	}
	return b.String()
}

func writePGNHeader(b *strings.Builder, d *pgn.Descriptor) {
	fmt.Fprintf(b, "# %s\n\n", d.Name)

	if !d.IsKnown {
		b.WriteString("> The layout of this PGN is not fully documented. Decoded values are unverified.\n\n")
	}

	fmt.Fprintf(b, "| | |\n|---|---|\n")
	fmt.Fprintf(b, "| **PGN** | %d (%s) |\n", d.PGN, hexPGN(d.PGN))
	fmt.Fprintf(b, "| **Category** | %s |\n", d.Category)
	fmt.Fprintf(b, "| **Size** | %d bytes |\n", d.Size)
	fmt.Fprintf(b, "| **Transport** | %s |\n", d.Transport())
	b.WriteString("\n")
}

func writeFieldTable(b *strings.Builder, title string, fields []pgn.Field) {
	if len(fields) == 0 {
		return
	}

	if title != "" {
		fmt.Fprintf(b, "## %s\n\n", title)
	}
	b.WriteString("| Bits | Name | Type | Unit | Scale | Description |\n")
	b.WriteString("|-----:|------|------|------|-------|-------------|\n")

	for i := range fields {
		f := &fields[i]
		desc, _ := f.Description.Get()
		fmt.Fprintf(b, "| %s | `%s` | %s | %s | %s | %s |\n",
			bitRange(f),
			f.Name,
			formatType(f),
			formatUnit(f),
			formatScale(f),
			escapeCell(desc),
		)
	}
	b.WriteString("\n")
}

func writeLengthNotes(b *strings.Builder, d *pgn.Descriptor) {
	var notes []string
	for i := range d.Fields {
		f := &d.Fields[i]
		switch f.DecodeType() {
		case pgn.FieldTypeVariable:
			notes = append(notes, fmt.Sprintf("`%s` holds the number of bytes given by `%s`.", f.Name, f.LengthFrom))
		case pgn.FieldTypePascalString:
			notes = append(notes, fmt.Sprintf("`%s` starts with a length byte.", f.Name))
		case pgn.FieldTypeWideString:
			notes = append(notes, fmt.Sprintf("`%s` starts with a length byte and an encoding byte.", f.Name))
		}
	}
	if len(notes) == 0 {
		return
	}

	b.WriteString("## Variable Length\n\n")
	for _, n := range notes {
		fmt.Fprintf(b, "- %s\n", n)
	}
	b.WriteString("\nFields after a variable-length field move with its encoded length.\n\n")
}

// generateAll writes all generated Markdown pages to outputDir.
func generateAll(m *DocModel, outputDir string) error {
	if err := generateAllPGNPages(m, outputDir); err != nil {
		return err
	}

	index, err := renderTemplate("index", m)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outputDir, "index.md"), []byte(index), 0o644); err != nil {
		return fmt.Errorf("writing index: %w", err)
	}

	nav, err := GenerateNav(m)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outputDir, "nav.yml"), []byte(nav), 0o644); err != nil {
		return fmt.Errorf("writing nav: %w", err)
	}
	return nil
}

// generateAllPGNPages writes one page per descriptor to outputDir/pgns/.
func generateAllPGNPages(m *DocModel, outputDir string) error {
	pgnDir := filepath.Join(outputDir, "pgns")
	if err := os.MkdirAll(pgnDir, 0o755); err != nil {
		return fmt.Errorf("creating pgns dir: %w", err)
	}

	for _, d := range m.Descriptors {
		slug := pgnSlug(d)
		path := filepath.Join(pgnDir, slug+".md")
		if err := os.WriteFile(path, []byte(GeneratePGNPage(d)), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", slug, err)
		}
	}
	return nil
}
