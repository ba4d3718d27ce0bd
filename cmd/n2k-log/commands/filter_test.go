package commands

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/libnmea/libnmea-go/pkg/log"
)

func readAll(t *testing.T, path string) []log.Event {
	t.Helper()
	r, err := log.NewReader(path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer r.Close()

	var events []log.Event
	for {
		e, err := r.Next()
		if err == io.EOF {
			return events
		}
		if err != nil {
			t.Fatalf("failed to read event: %v", err)
		}
		events = append(events, e)
	}
}

func TestRunFilter(t *testing.T) {
	path := createTestLogFile(t, []log.Event{
		headingEvent(testTime, 35),
		headingEvent(testTime.Add(time.Second), 36),
		fallbackEvent(testTime.Add(2 * time.Second)),
		groupEvent(testTime.Add(3 * time.Second)),
		errorEvent(testTime.Add(4 * time.Second)),
	})

	tests := []struct {
		name  string
		flags FilterFlags
		want  int
	}{
		{"no filter", FilterFlags{}, 5},
		{"session", FilterFlags{SessionID: "def67890"}, 1},
		{"pgn", FilterFlags{PGN: "127250"}, 2},
		{"pgn hex", FilterFlags{PGN: "0x1F112"}, 2},
		{"source", FilterFlags{Source: "36"}, 1},
		{"category", FilterFlags{Category: "fallback"}, 1},
		{"time window", FilterFlags{
			TimeStart: testTime.Add(time.Second).Format(time.RFC3339Nano),
			TimeEnd:   testTime.Add(3 * time.Second).Format(time.RFC3339Nano),
		}, 2},
		{"combined", FilterFlags{PGN: "127250", Source: "35"}, 1},
		{"no match", FilterFlags{PGN: "130306"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outPath := filepath.Join(t.TempDir(), "filtered.nlog")
			var buf bytes.Buffer

			err := RunFilter(path, FilterOptions{Output: outPath, FilterFlags: tt.flags}, &buf)
			if err != nil {
				t.Fatalf("RunFilter failed: %v", err)
			}

			if got := len(readAll(t, outPath)); got != tt.want {
				t.Errorf("expected %d events, got %d", tt.want, got)
			}
			if !strings.Contains(buf.String(), "Filtered ") || !strings.Contains(buf.String(), outPath) {
				t.Errorf("unexpected summary: %q", buf.String())
			}
		})
	}
}

func TestRunFilterPreservesEvents(t *testing.T) {
	path := createTestLogFile(t, []log.Event{
		headingEvent(testTime, 35),
		groupEvent(testTime),
	})
	outPath := filepath.Join(t.TempDir(), "filtered.nlog")

	var buf bytes.Buffer
	if err := RunFilter(path, FilterOptions{Output: outPath, FilterFlags: FilterFlags{PGN: "126464"}}, &buf); err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}
	if got := buf.String(); got != "Filtered 1 events to "+outPath+"\n" {
		t.Errorf("unexpected summary: %q", got)
	}

	events := readAll(t, outPath)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	msg := events[0].Message
	if msg == nil || msg.Groups != 2 || msg.PaddingBits != 8 || len(msg.Fields) != 3 {
		t.Errorf("group event not preserved: %+v", msg)
	}
	if msg != nil && msg.Fields[2].Group != 2 {
		t.Errorf("expected group index 2, got %d", msg.Fields[2].Group)
	}
}

func TestRunFilterInvalidFlags(t *testing.T) {
	path := createTestLogFile(t, []log.Event{headingEvent(testTime, 35)})
	outPath := filepath.Join(t.TempDir(), "filtered.nlog")

	var buf bytes.Buffer
	err := RunFilter(path, FilterOptions{Output: outPath, FilterFlags: FilterFlags{Category: "bogus"}}, &buf)
	if err == nil {
		t.Fatal("expected error for invalid category")
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestRunFilterMissingFile(t *testing.T) {
	var buf bytes.Buffer
	opts := FilterOptions{Output: filepath.Join(t.TempDir(), "out.nlog")}
	if err := RunFilter("/nonexistent/file.nlog", opts, &buf); err == nil {
		t.Error("expected error for missing file")
	}
}
