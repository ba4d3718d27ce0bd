package decode

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/libnmea/libnmea-go/pkg/bits"
	"github.com/libnmea/libnmea-go/pkg/pgn"
)

// testRegistry builds a registry from defs plus a minimal fallback.
func testRegistry(t *testing.T, defs ...pgn.Descriptor) *pgn.Registry {
	t.Helper()
	all := append([]pgn.Descriptor{{
		Name:   "Unknown",
		PGN:    pgn.UnknownPGN,
		Size:   8,
		Fields: []pgn.Field{{Name: "Data", Start: 0, Size: 64}},
	}}, defs...)
	r, err := pgn.NewRegistry(all)
	require.NoError(t, err)
	return r
}

// testDecoder returns a quiet decoder over reg.
func testDecoder(reg *pgn.Registry) *Decoder {
	return New(Config{
		Registry:  reg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		SessionID: "test-session",
	})
}

// put writes v into data, failing the test if it does not fit.
func put(t *testing.T, data []byte, start, size int, v uint64) {
	t.Helper()
	require.True(t, bits.Insert(data, start, size, v), "insert %d bits at %d", size, start)
}

func mustField(t *testing.T, msg *Message, name string) *FieldValue {
	t.Helper()
	fv, ok := msg.Field(name)
	require.True(t, ok, "field %q", name)
	return fv
}

func filled(n int, b byte) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}
