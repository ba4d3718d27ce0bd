package main

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/libnmea/libnmea-go/pkg/pgn"
	"github.com/libnmea/libnmea-go/pkg/specparse"
	"github.com/libnmea/libnmea-go/pkg/version"
)

// GenerateDefinitions renders definitions_gen.go for the pgn package.
func GenerateDefinitions(defs *specparse.Definitions) (code string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	var b strings.Builder
	renderTemplate(&b, "definitions", definitionsData{
		Version:     defs.Version,
		Sources:     defs.Sources,
		Descriptors: defs.Descriptors,
	})
	return b.String(), nil
}

// DeriveManifest builds a coverage manifest listing every defined PGN.
// Descriptors in the mandatory category are marked mandatory.
func DeriveManifest(defs *specparse.Definitions, description string) (string, error) {
	m := version.Manifest{
		Version:     defs.Version,
		Description: description,
	}
	for _, d := range defs.Descriptors {
		m.PGNs = append(m.PGNs, version.PGNRequire{
			PGN:       d.PGN,
			Name:      d.Name,
			Mandatory: d.Category == pgn.CategoryMandatory,
		})
	}

	out, err := yaml.Marshal(&m)
	if err != nil {
		return "", err
	}
	return "# Code generated by pgn-gen. DO NOT EDIT.\n" + string(out), nil
}
