package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libnmea/libnmea-go/pkg/pgn"
)

func TestDecode_VariableProprietary(t *testing.T) {
	tests := []struct {
		name   string
		length byte
		data   []byte
		kind   Kind
		check  func(t *testing.T, v Value)
	}{
		{
			name:   "short as integer",
			length: 3,
			data:   []byte{0x01, 0x02, 0x03},
			kind:   KindInteger,
			check: func(t *testing.T, v Value) {
				assert.Equal(t, int64(0x030201), v.Int)
			},
		},
		{
			name:   "long as bytes",
			length: 10,
			data:   []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
			kind:   KindBytes,
			check: func(t *testing.T, v Value) {
				assert.Equal(t, []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, v.Bytes)
			},
		},
		{
			name:   "zero length",
			length: 0,
			kind:   KindBytes,
			check: func(t *testing.T, v Value) {
				assert.Empty(t, v.Bytes)
				assert.NotNil(t, v.Bytes)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			payload := []byte{0xE5, 0x98, tc.length}
			payload = append(payload, tc.data...)

			msg := testDecoder(pgn.Default()).Decode(130816, payload)

			require.False(t, msg.Fallback)
			data := mustField(t, msg, "Data")
			require.Equal(t, StatusOK, data.Status, "err: %v", data.Err)
			assert.Equal(t, tc.kind, data.Value.Kind)
			assert.Equal(t, int(tc.length)*8, data.Size)
			tc.check(t, data.Value)
		})
	}
}

func variableRegistry(t *testing.T) *pgn.Registry {
	return testRegistry(t, pgn.Descriptor{
		Name: "Test Variable", PGN: 65020, IsKnown: true, Size: 16,
		Fields: []pgn.Field{
			{Name: "Length", Type: pgn.Some(pgn.FieldTypeInteger), Start: 0, Size: 8},
			{Name: "Payload", Type: pgn.Some(pgn.FieldTypeVariable), Start: 8, Size: 8, LengthFrom: "Length"},
			{Name: "Trailer", Type: pgn.Some(pgn.FieldTypeInteger), Start: 16, Size: 8},
			{Name: "Orphan", Type: pgn.Some(pgn.FieldTypeVariable), Start: 24, Size: 8, LengthFrom: "Missing"},
		},
	})
}

func TestDecode_VariableShiftsLaterFields(t *testing.T) {
	reg := variableRegistry(t)
	payload := []byte{3, 0xAA, 0xBB, 0xCC, 0x2A, 0x00}

	msg := testDecoder(reg).Decode(65020, payload)

	p := mustField(t, msg, "Payload")
	require.Equal(t, StatusOK, p.Status)
	assert.Equal(t, int64(0xCCBBAA), p.Value.Int)
	assert.Equal(t, 24, p.Size)

	trailer := mustField(t, msg, "Trailer")
	assert.Equal(t, 32, trailer.Start)
	assert.Equal(t, int64(0x2A), trailer.Value.Int)
}

func TestDecode_VariableLengthSourceProblems(t *testing.T) {
	reg := variableRegistry(t)

	t.Run("missing source", func(t *testing.T) {
		msg := testDecoder(reg).Decode(65020, []byte{0, 1, 2, 3})

		orphan := mustField(t, msg, "Orphan")
		assert.Equal(t, StatusError, orphan.Status)
		assert.ErrorIs(t, orphan.Err, ErrUnsupportedFieldType)
		assert.Contains(t, msg.Issues, orphan.Err)
		assert.ErrorIs(t, msg.Err(), ErrUnsupportedFieldType)

		// Independent fields still decode.
		assert.Equal(t, StatusOK, mustField(t, msg, "Trailer").Status)
	})

	t.Run("unavailable source", func(t *testing.T) {
		msg := testDecoder(reg).Decode(65020, filled(8, 0xFF))

		p := mustField(t, msg, "Payload")
		assert.Equal(t, StatusError, p.Status)
		assert.ErrorIs(t, p.Err, ErrUnsupportedFieldType)
		assert.Contains(t, msg.Issues, p.Err)
	})

	t.Run("absent source", func(t *testing.T) {
		msg := testDecoder(reg).Decode(65020, nil)

		p := mustField(t, msg, "Payload")
		assert.Equal(t, StatusAbsent, p.Status)
		assert.ErrorIs(t, p.Err, ErrTruncated)
	})

	t.Run("length past payload", func(t *testing.T) {
		msg := testDecoder(reg).Decode(65020, []byte{200, 1, 2})

		p := mustField(t, msg, "Payload")
		assert.Equal(t, StatusAbsent, p.Status)
	})
}
