package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/libnmea/libnmea-go/pkg/log"
)

var testTime = time.Date(2026, 1, 28, 10, 15, 32, 123456000, time.UTC)

func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.nlog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	for _, e := range events {
		logger.Log(e)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("failed to close logger: %v", err)
	}

	return path
}

func headingEvent(ts time.Time, src uint8) log.Event {
	return log.Event{
		Timestamp:   ts,
		SessionID:   "abc12345-6789-0123-4567-890abcdef012",
		Category:    log.CategoryDecode,
		Source:      src,
		Fingerprint: "f1",
		Message: &log.MessageEvent{
			PGN:   127250,
			Name:  "Vessel Heading",
			Known: true,
			Data:  []byte{0x01, 0x10, 0x27, 0xFF, 0x7F, 0xFF, 0x7F, 0xFD},
			Fields: []log.FieldEvent{
				{Name: "SID", Status: "OK", Value: uint64(1)},
				{Name: "Heading", Status: "OK", Value: 1.0, Unit: "rad"},
				{Name: "Deviation", Status: "UNAVAILABLE", Unit: "rad"},
				{Name: "Reserved", Status: "NOT_USED"},
			},
		},
	}
}

func fallbackEvent(ts time.Time) log.Event {
	return log.Event{
		Timestamp:   ts,
		SessionID:   "abc12345-6789-0123-4567-890abcdef012",
		Category:    log.CategoryFallback,
		Source:      7,
		Fingerprint: "f1",
		Message: &log.MessageEvent{
			PGN:    61184,
			Name:   "Unknown PGN",
			Data:   []byte{0xE5, 0x98},
			Fields: []log.FieldEvent{{Name: "Manufacturer Code", Status: "ABSENT"}},
			Issues: []string{"pgn 61184: unknown pgn"},
		},
	}
}

func groupEvent(ts time.Time) log.Event {
	return log.Event{
		Timestamp: ts,
		SessionID: "def67890",
		Category:  log.CategoryIssue,
		Source:    35,
		Message: &log.MessageEvent{
			PGN:   126464,
			Name:  "PGN List (Transmit and Receive)",
			Known: true,
			Fields: []log.FieldEvent{
				{Name: "Function Code", Status: "OK", Value: uint64(1)},
				{Name: "PGN", Status: "OK", Value: uint64(126992), Group: 1},
				{Name: "PGN", Status: "OK", Value: uint64(129025), Group: 2},
			},
			Groups:      2,
			PaddingBits: 8,
			Issues:      []string{"pgn 126464: malformed repeating group: 8 bits left after 2 groups of 24 bits"},
		},
	}
}

func errorEvent(ts time.Time) log.Event {
	return log.Event{
		Timestamp: ts,
		SessionID: "abc12345-6789-0123-4567-890abcdef012",
		Category:  log.CategoryError,
		Error: &log.ErrorEventData{
			Message: "invalid hex payload",
			Context: "capture.txt:12",
		},
	}
}
