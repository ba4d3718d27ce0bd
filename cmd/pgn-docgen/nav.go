package main

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// navEntry is one mkdocs nav item: a title mapped to a page path or to
// nested entries.
type navEntry map[string]any

// GenerateNav produces an mkdocs nav fragment listing every page, grouped
// by category.
func GenerateNav(m *DocModel) (string, error) {
	nav := []navEntry{{"Overview": "index.md"}}
	for _, cat := range m.Categories() {
		var pages []navEntry
		for _, d := range m.ByCategory[cat] {
			title := fmt.Sprintf("%d %s", d.PGN, d.Name)
			pages = append(pages, navEntry{title: "pgns/" + pgnSlug(d) + ".md"})
		}
		nav = append(nav, navEntry{cat.String(): pages})
	}

	out, err := yaml.Marshal(map[string]any{"nav": nav})
	if err != nil {
		return "", fmt.Errorf("encoding nav: %w", err)
	}
	return "# Code generated by pgn-docgen. DO NOT EDIT.\n" + string(out), nil
}
