// Command pgn-docgen renders Markdown reference pages for the PGN
// registry.
//
// Without -defs the bundled registry is documented.
package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	defsDir := flag.String("defs", "", "Definitions directory containing index.yaml (default: bundled registry)")
	outputDir := flag.String("output", "", "Output directory for generated Markdown")
	flag.Parse()

	if *outputDir == "" {
		fmt.Fprintln(os.Stderr, "Usage: pgn-docgen -output <dir> [-defs <dir>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*defsDir, *outputDir); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(defsDir, outputDir string) error {
	model, err := loadModel(defsDir)
	if err != nil {
		return fmt.Errorf("building doc model: %w", err)
	}

	if err := generateAll(model, outputDir); err != nil {
		return err
	}
	fmt.Printf("  generated %d pgn pages in %s\n", len(model.Descriptors), outputDir)
	return nil
}
