package inspect

import (
	"errors"
	"testing"

	"github.com/libnmea/libnmea-go/pkg/pgn"
)

func TestParsePath(t *testing.T) {
	reg := pgn.Default()

	tests := []struct {
		name  string
		input string
		want  *Path
	}{
		{
			name:  "numeric pgn only",
			input: "128267",
			want:  &Path{PGN: 128267, IsPartial: true},
		},
		{
			name:  "hex pgn",
			input: "0xE800",
			want:  &Path{PGN: 59392, IsPartial: true},
		},
		{
			name:  "pgn and field",
			input: "128267/Depth",
			want:  &Path{PGN: 128267, Field: "Depth"},
		},
		{
			name:  "names and slugs",
			input: "water-depth/offset",
			want:  &Path{PGN: 128267, Field: "Offset"},
		},
		{
			name:  "pgn name with spaces",
			input: "ISO Acknowledgement/group function",
			want:  &Path{PGN: 59392, Field: "Group Function"},
		},
		{
			name:  "group field",
			input: "127503/2/voltage",
			want:  &Path{PGN: 127503, Group: 2, Field: "Voltage"},
		},
		{
			name:  "unregistered pgn",
			input: "61184",
			want:  &Path{PGN: 61184, IsPartial: true},
		},
		{
			name:  "unregistered pgn field",
			input: "61184/manufacturer-code",
			want:  &Path{PGN: 61184, Field: "Manufacturer Code"},
		},
		{
			name:  "surrounding whitespace",
			input: "  127250/heading  ",
			want:  &Path{PGN: 127250, Field: "Heading"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePath(reg, tt.input)
			if err != nil {
				t.Fatalf("ParsePath(%q) error = %v", tt.input, err)
			}
			if got.PGN != tt.want.PGN {
				t.Errorf("PGN = %d, want %d", got.PGN, tt.want.PGN)
			}
			if got.Group != tt.want.Group {
				t.Errorf("Group = %d, want %d", got.Group, tt.want.Group)
			}
			if got.Field != tt.want.Field {
				t.Errorf("Field = %q, want %q", got.Field, tt.want.Field)
			}
			if got.IsPartial != tt.want.IsPartial {
				t.Errorf("IsPartial = %v, want %v", got.IsPartial, tt.want.IsPartial)
			}
		})
	}
}

func TestParsePathErrors(t *testing.T) {
	reg := pgn.Default()

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrEmptyPath},
		{"blank", "   ", ErrEmptyPath},
		{"leading slash", "/128267", ErrInvalidPath},
		{"trailing slash", "128267/", ErrInvalidPath},
		{"double slash", "128267//Depth", ErrInvalidPath},
		{"too many segments", "127503/1/2/Voltage", ErrInvalidPath},
		{"unknown name", "fish-finder", ErrUnknownPGN},
		{"pgn out of range", "99999999", ErrUnknownPGN},
		{"unregistered pgn field", "61184/Depth", ErrUnknownField},
		{"unknown field", "128267/Salinity", ErrUnknownField},
		{"zero group", "127503/0/Voltage", ErrInvalidNumber},
		{"bad group", "127503/x/Voltage", ErrInvalidNumber},
		{"group without repeating fields", "128267/1/Depth", ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePath(reg, tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParsePath(%q) error = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestPathString(t *testing.T) {
	tests := []struct {
		path Path
		want string
	}{
		{Path{PGN: 128267, IsPartial: true}, "128267"},
		{Path{PGN: 128267, Field: "Depth"}, "128267/Depth"},
		{Path{PGN: 127503, Group: 3, Field: "Voltage"}, "127503/3/Voltage"},
	}

	for _, tt := range tests {
		if got := tt.path.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
