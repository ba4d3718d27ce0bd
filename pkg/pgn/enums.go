package pgn

import (
	"fmt"
	"strings"
)

// Category groups PGNs by functional area.
type Category uint8

const (
	CategoryMandatory Category = iota
	CategoryGeneral
	CategoryPower
	CategorySteering
	CategoryPropulsion
	CategoryNavigation
	CategoryAIS
	CategoryCommunication
	CategoryEnvironmental
	CategoryEntertainment
	CategoryProprietary
	CategoryOther
)

var categoryNames = []string{
	"mandatory", "general", "power", "steering", "propulsion", "navigation",
	"ais", "communication", "environmental", "entertainment", "proprietary",
	"other",
}

// String returns the category name.
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "unknown"
}

// ParseCategory converts a category name to a Category.
func ParseCategory(s string) (Category, error) {
	for i, name := range categoryNames {
		if strings.EqualFold(s, name) {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

// FieldType is the interpretation applied to a field's bits.
type FieldType uint8

const (
	// FieldTypeVariable is a byte string whose length comes from another field.
	FieldTypeVariable FieldType = iota
	// FieldTypeNotUsed marks reserved bits.
	FieldTypeNotUsed
	// FieldTypeLookup is an integer code into an enumeration.
	FieldTypeLookup
	FieldTypeInteger
	// FieldTypeDecimal is an integer scaled by the field's multiplier.
	FieldTypeDecimal
	// FieldTypeFloat is an IEEE 754 value of 32 or 64 bits.
	FieldTypeFloat
	// FieldTypeASCIIString is a fixed-width string terminated by 0x00 or 0xFF.
	FieldTypeASCIIString
	// FieldTypeFixedString is a fixed-width string padded at the end.
	FieldTypeFixedString
	// FieldTypePascalString is a length byte followed by that many data bytes.
	FieldTypePascalString
	// FieldTypeWideString is a length byte, an encoding byte and string data.
	FieldTypeWideString
)

var fieldTypeNames = []string{
	"variable", "notUsed", "lookup", "integer", "decimal", "float",
	"asciiString", "fixedString", "pascalString", "wideString",
}

// String returns the field type name as used in definition files.
func (t FieldType) String() string {
	if int(t) < len(fieldTypeNames) {
		return fieldTypeNames[t]
	}
	return "unknown"
}

// Numeric reports whether values of this type decode to a number.
func (t FieldType) Numeric() bool {
	switch t {
	case FieldTypeLookup, FieldTypeInteger, FieldTypeDecimal, FieldTypeFloat:
		return true
	}
	return false
}

// DynamicWidth reports whether the encoded width of this type depends on
// the payload.
func (t FieldType) DynamicWidth() bool {
	switch t {
	case FieldTypeVariable, FieldTypePascalString, FieldTypeWideString:
		return true
	}
	return false
}

// ParseFieldType converts a field type name to a FieldType.
func ParseFieldType(s string) (FieldType, error) {
	for i, name := range fieldTypeNames {
		if strings.EqualFold(s, name) {
			return FieldType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown field type %q", s)
}

// Unit is the physical unit of a decoded value.
type Unit uint8

const (
	UnitVolts Unit = iota
	UnitHertz
	UnitSeconds
	UnitDegrees
	UnitCelsius
	UnitRadians
	UnitRadiansPerSecond
	UnitWatts
	UnitWattHours
	UnitKilowattHours
	UnitVoltAmps
	UnitVoltAmpsReactive
	UnitAmperes
	UnitKelvin
	UnitMeters
	UnitMetersPerSecond
	UnitPascals
	UnitPercent
)

var unitNames = []string{
	"volts", "hertz", "seconds", "degrees", "celsius", "radians",
	"radiansPerSecond", "watts", "wattHours", "kilowattHours", "voltAmps",
	"voltAmpsReactive", "amperes", "kelvin", "meters", "metersPerSecond",
	"pascals", "percent",
}

var unitSymbols = []string{
	"V", "Hz", "s", "deg", "°C", "rad", "rad/s", "W", "Wh", "kWh", "VA",
	"var", "A", "K", "m", "m/s", "Pa", "%",
}

// String returns the unit name as used in definition files.
func (u Unit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}
	return "unknown"
}

// Symbol returns the conventional symbol for the unit.
func (u Unit) Symbol() string {
	if int(u) < len(unitSymbols) {
		return unitSymbols[u]
	}
	return "?"
}

// ParseUnit converts a unit name or symbol to a Unit.
func ParseUnit(s string) (Unit, error) {
	for i, name := range unitNames {
		if strings.EqualFold(s, name) {
			return Unit(i), nil
		}
	}
	for i, sym := range unitSymbols {
		if s == sym {
			return Unit(i), nil
		}
	}
	return 0, fmt.Errorf("unknown unit %q", s)
}
