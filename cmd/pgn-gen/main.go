// Command pgn-gen generates the bundled PGN table from the YAML definitions.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/imports"

	"github.com/libnmea/libnmea-go/pkg/specparse"
	"github.com/libnmea/libnmea-go/pkg/version"
)

func main() {
	defsDir := flag.String("defs", "", "Definitions directory containing index.yaml (docs/pgns/)")
	outputDir := flag.String("output", "", "Output directory for definitions_gen.go")
	manifestOutput := flag.String("manifest-output", "", "Output path for a derived coverage manifest")
	strict := flag.Bool("strict", false, "Fail on definition lint issues")
	flag.Parse()

	if *defsDir == "" || *outputDir == "" {
		fmt.Fprintln(os.Stderr, "Usage: pgn-gen -defs <dir> -output <dir> [-manifest-output <path>] [-strict]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*defsDir, *outputDir, *manifestOutput, *strict); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(defsDir, outputDir, manifestOutput string, strict bool) error {
	defs, err := specparse.LoadDefinitions(defsDir)
	if err != nil {
		return fmt.Errorf("loading definitions: %w", err)
	}

	// Building the registry validates PGN uniqueness and the fallback entry.
	reg, err := defs.Registry()
	if err != nil {
		return fmt.Errorf("validating definitions: %w", err)
	}

	issues := reg.Lint()
	for _, issue := range issues {
		fmt.Fprintf(os.Stderr, "  warning: %s\n", issue)
	}
	if strict && len(issues) > 0 {
		return fmt.Errorf("%d lint issues", len(issues))
	}

	if err := checkCoverage(defs); err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	code, err := GenerateDefinitions(defs)
	if err != nil {
		return fmt.Errorf("generating definitions: %w", err)
	}
	outPath := filepath.Join(outputDir, "definitions_gen.go")
	if err := writeFormatted(outPath, code); err != nil {
		return fmt.Errorf("writing definitions_gen.go: %w", err)
	}
	fmt.Printf("  generated %s (%d pgns, fingerprint %.16s)\n", outPath, reg.Len(), reg.Fingerprint())

	if manifestOutput != "" {
		manifest, err := DeriveManifest(defs, fmt.Sprintf("Definitions format %s", defs.Version))
		if err != nil {
			return fmt.Errorf("deriving manifest: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(manifestOutput), 0o755); err != nil {
			return fmt.Errorf("creating manifest output dir: %w", err)
		}
		if err := os.WriteFile(manifestOutput, []byte(manifest), 0o644); err != nil {
			return fmt.Errorf("writing manifest: %w", err)
		}
		fmt.Printf("  generated %s\n", manifestOutput)
	}

	return nil
}

// checkCoverage verifies the definitions against the manifest of their
// format version.
func checkCoverage(defs *specparse.Definitions) error {
	m, err := version.LoadManifest(defs.Version)
	if err != nil {
		return fmt.Errorf("loading manifest: %w", err)
	}

	defined := make(map[uint32]string, len(defs.Descriptors))
	for _, d := range defs.Descriptors {
		defined[d.PGN] = d.Name
	}

	res := version.ValidateCoverage(m, defined)
	for _, w := range res.Warnings {
		fmt.Fprintf(os.Stderr, "  warning: %s\n", w)
	}
	if !res.Valid {
		for _, e := range res.Errors {
			fmt.Fprintf(os.Stderr, "  error: %s\n", e)
		}
		return fmt.Errorf("definitions do not cover manifest %s", m.Version)
	}
	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
