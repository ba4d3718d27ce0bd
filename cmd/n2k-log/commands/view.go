// Package commands implements the n2k-log CLI commands.
package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"

	"github.com/libnmea/libnmea-go/pkg/log"
)

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [sess:id] CATEGORY src=N label
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	sess := shortenSessionID(event.SessionID)

	var label string
	switch {
	case event.Message != nil:
		label = fmt.Sprintf("PGN %d %s", event.Message.PGN, event.Message.Name)
		if !event.Message.Known {
			label += " (unverified)"
		}
	case event.Error != nil:
		label = "Error"
	default:
		label = "Unknown"
	}

	fmt.Fprintf(w, "%s [sess:%s] %-8s src=%-3d %s\n", ts, sess, event.Category, event.Source, label)

	switch {
	case event.Message != nil:
		formatMessageDetails(w, event.Message)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// formatMessageDetails writes the decoded fields of a message event.
func formatMessageDetails(w io.Writer, msg *log.MessageEvent) {
	if len(msg.Data) > 0 {
		fmt.Fprintf(w, "  Data: %s (%d bytes)\n", hex.EncodeToString(msg.Data), len(msg.Data))
	}

	for _, f := range msg.Fields {
		if f.Status == "NOT_USED" {
			continue
		}
		name := f.Name
		if f.Group > 0 {
			name = fmt.Sprintf("[%d] %s", f.Group, f.Name)
		}
		if f.Error != "" {
			fmt.Fprintf(w, "  %s: %s (%s)\n", name, f.Status, f.Error)
			continue
		}
		if f.Status != "OK" {
			fmt.Fprintf(w, "  %s: %s\n", name, f.Status)
			continue
		}
		value := formatFieldValue(f.Value)
		if f.Unit != "" {
			value += " " + f.Unit
		}
		fmt.Fprintf(w, "  %s = %s\n", name, value)
	}

	if msg.Groups > 0 {
		fmt.Fprintf(w, "  Groups: %d", msg.Groups)
		if msg.PaddingBits > 0 {
			fmt.Fprintf(w, " (+%d padding bits)", msg.PaddingBits)
		}
		fmt.Fprintln(w)
	}
	for _, issue := range msg.Issues {
		fmt.Fprintf(w, "  ! %s\n", issue)
	}
}

// formatErrorDetails writes error details.
func formatErrorDetails(w io.Writer, err *log.ErrorEventData) {
	fmt.Fprintf(w, "  Message: %s\n", err.Message)
	if err.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", err.Context)
	}
}

// formatFieldValue formats a value as read back from a log file.
func formatFieldValue(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case string:
		return strconv.Quote(v)
	case []byte:
		return fmt.Sprintf("0x%x", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// RunView executes the view command.
func RunView(path string, filter log.Filter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}

	return nil
}
