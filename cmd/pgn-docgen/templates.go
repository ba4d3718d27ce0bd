package main

import (
	"bytes"
	"fmt"
	"text/template"
)

var funcMap = template.FuncMap{
	"slug":   pgnSlug,
	"hexPGN": hexPGN,
	"yesNo":  yesNo,
	"cell":   escapeCell,
}

var templates = template.Must(template.New("").Funcs(funcMap).Parse(indexTmpl))

// renderTemplate executes a named template with the given data.
func renderTemplate(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}

const indexTmpl = `{{define "index"}}# PGN Reference

Definitions format {{.Version}}, {{len .Descriptors}} PGNs.
Registry fingerprint: ` + "`{{.Fingerprint}}`" + `
{{range $cat := .Categories}}
## {{$cat}}

| PGN | Hex | Name | Size | Verified |
|----:|-----|------|-----:|:--------:|
{{- range index $.ByCategory $cat}}
| {{.PGN}} | {{hexPGN .PGN}} | [{{cell .Name}}](pgns/{{slug .}}.md) | {{.Size}} | {{yesNo .IsKnown}} |
{{- end}}
{{end}}{{end}}`
