package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/libnmea/libnmea-go/pkg/pgn"
)

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"quote":         strconv.Quote,
	"categoryConst": categoryConst,
	"fieldLiteral":  fieldLiteral,
}

// templates holds all parsed code generation templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(definitionsTmpl))

// renderTemplate executes a named template into the builder.
func renderTemplate(b *strings.Builder, name string, data any) {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		panic(fmt.Sprintf("template %s: %v", name, err))
	}
}

// definitionsData holds data for the definitions template.
type definitionsData struct {
	Version     string
	Sources     []string
	Descriptors []pgn.Descriptor
}

const definitionsTmpl = `{{define "definitions"}}// Code generated by pgn-gen. DO NOT EDIT.
// Sources: {{range $i, $s := .Sources}}{{if $i}}, {{end}}{{$s}}{{end}}

package pgn

const definitionsVersion = {{quote .Version}}

var definitions = []Descriptor{
{{- range .Descriptors}}
	{
		Name:            {{quote .Name}},
		Category:        {{categoryConst .Category}},
		PGN:             {{.PGN}},
		IsKnown:         {{.IsKnown}},
		Size:            {{.Size}},
		RepeatingFields: {{.RepeatingFields}},
		Fields: []Field{
{{- range .Fields}}
			{{fieldLiteral .}},
{{- end}}
		},
	},
{{- end}}
}
{{end}}`

var categoryConsts = []string{
	"CategoryMandatory", "CategoryGeneral", "CategoryPower", "CategorySteering",
	"CategoryPropulsion", "CategoryNavigation", "CategoryAIS", "CategoryCommunication",
	"CategoryEnvironmental", "CategoryEntertainment", "CategoryProprietary",
	"CategoryOther",
}

var fieldTypeConsts = []string{
	"FieldTypeVariable", "FieldTypeNotUsed", "FieldTypeLookup", "FieldTypeInteger",
	"FieldTypeDecimal", "FieldTypeFloat", "FieldTypeASCIIString", "FieldTypeFixedString",
	"FieldTypePascalString", "FieldTypeWideString",
}

var unitConsts = []string{
	"UnitVolts", "UnitHertz", "UnitSeconds", "UnitDegrees", "UnitCelsius", "UnitRadians",
	"UnitRadiansPerSecond", "UnitWatts", "UnitWattHours", "UnitKilowattHours", "UnitVoltAmps",
	"UnitVoltAmpsReactive", "UnitAmperes", "UnitKelvin", "UnitMeters", "UnitMetersPerSecond",
	"UnitPascals", "UnitPercent",
}

func constName(names []string, v uint8, kind string) string {
	if int(v) < len(names) {
		return names[v]
	}
	panic(fmt.Sprintf("no constant for %s %d", kind, v))
}

func categoryConst(c pgn.Category) string {
	return constName(categoryConsts, uint8(c), "category")
}

// fieldLiteral renders a Field as a single-line composite literal,
// omitting zero values.
func fieldLiteral(f pgn.Field) string {
	parts := []string{"Name: " + strconv.Quote(f.Name)}
	if d, ok := f.Description.Get(); ok {
		parts = append(parts, "Description: Some("+strconv.Quote(d)+")")
	}
	if u, ok := f.Unit.Get(); ok {
		parts = append(parts, "Unit: Some("+constName(unitConsts, uint8(u), "unit")+")")
	}
	if t, ok := f.Type.Get(); ok {
		parts = append(parts, "Type: Some("+constName(fieldTypeConsts, uint8(t), "field type")+")")
	}
	parts = append(parts,
		"Start: "+strconv.FormatUint(uint64(f.Start), 10),
		"Size: "+strconv.FormatUint(uint64(f.Size), 10))
	if f.Multiplier != 0 {
		parts = append(parts, "Multiplier: "+strconv.FormatFloat(f.Multiplier, 'g', -1, 64))
	}
	if f.Offset != 0 {
		parts = append(parts, "Offset: "+strconv.FormatInt(f.Offset, 10))
	}
	if f.Signed {
		parts = append(parts, "Signed: true")
	}
	if f.LengthFrom != "" {
		parts = append(parts, "LengthFrom: "+strconv.Quote(f.LengthFrom))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
