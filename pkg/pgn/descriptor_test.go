package pgn

import (
	"testing"
)

func TestDescriptor_Transport(t *testing.T) {
	tests := []struct {
		size uint32
		want Transport
	}{
		{1, TransportSingleFrame},
		{8, TransportSingleFrame},
		{9, TransportFastPacket},
		{252, TransportFastPacket},
		{253, TransportISO},
		{1785, TransportISO},
	}
	for _, tt := range tests {
		d := Descriptor{Size: tt.size}
		if got := d.Transport(); got != tt.want {
			t.Errorf("Transport(size %d) = %v, want %v", tt.size, got, tt.want)
		}
	}
}

func TestDescriptor_RepeatingLayout(t *testing.T) {
	d := Default().Get(127503)

	if got := len(d.FixedFields()); got != 2 {
		t.Fatalf("len(FixedFields) = %d, want 2", got)
	}
	if got := len(d.RepeatingGroup()); got != 10 {
		t.Fatalf("len(RepeatingGroup) = %d, want 10", got)
	}
	if got := d.FixedBits(); got != 16 {
		t.Errorf("FixedBits = %d, want 16", got)
	}
	if got := d.GroupBits(); got != 144 {
		t.Errorf("GroupBits = %d, want 144", got)
	}
	if got := d.GroupOrigin(); got != 16 {
		t.Errorf("GroupOrigin = %d, want 16", got)
	}
}

func TestDescriptor_NoGroup(t *testing.T) {
	d := Default().Get(127250)

	if g := d.RepeatingGroup(); g != nil {
		t.Errorf("RepeatingGroup = %v, want nil", g)
	}
	if got := d.GroupBits(); got != 0 {
		t.Errorf("GroupBits = %d, want 0", got)
	}
	if got := d.FixedBits(); got != 64 {
		t.Errorf("FixedBits = %d, want 64", got)
	}
}

func TestDescriptor_FixedBitsSpansGaps(t *testing.T) {
	// ISO Acknowledgement leaves bits 16..39 undeclared.
	d := Default().Get(59392)
	if got := d.FixedBits(); got != 64 {
		t.Errorf("FixedBits = %d, want 64", got)
	}
}

func TestDescriptor_Field(t *testing.T) {
	d := Default().Get(128267)

	f, ok := d.Field("Depth")
	if !ok {
		t.Fatal("Field(Depth) not found")
	}
	if f.Start != 8 || f.Size != 32 {
		t.Errorf("Depth at %d/%d", f.Start, f.Size)
	}
	if _, ok := d.Field("Salinity"); ok {
		t.Error("Field(Salinity) found")
	}
}

func TestField_DecodeType(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  FieldType
	}{
		{"declared", Field{Type: Some(FieldTypeLookup), Multiplier: 0.5}, FieldTypeLookup},
		{"no multiplier", Field{}, FieldTypeInteger},
		{"unit multiplier", Field{Multiplier: 1}, FieldTypeInteger},
		{"scaled", Field{Multiplier: 0.01}, FieldTypeDecimal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.field.DecodeType(); got != tt.want {
				t.Errorf("DecodeType = %v, want %v", got, tt.want)
			}
		})
	}
}
