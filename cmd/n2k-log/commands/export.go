package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/libnmea/libnmea-go/pkg/log"
)

// RunExport exports the log file to the specified format.
func RunExport(path, format, output string) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	// Determine output writer
	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(event); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

var csvHeader = []string{"timestamp", "session_id", "category", "source", "pgn", "name", "data", "values", "issues"}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := cw.Write(csvRow(event)); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}

func csvRow(event log.Event) []string {
	row := []string{
		event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
		event.SessionID,
		event.Category.String(),
		strconv.Itoa(int(event.Source)),
		"", "", "", "", "",
	}

	switch {
	case event.Message != nil:
		msg := event.Message
		row[4] = strconv.FormatUint(uint64(msg.PGN), 10)
		row[5] = msg.Name
		row[6] = fmt.Sprintf("%x", msg.Data)
		row[7] = joinValues(msg.Fields)
		row[8] = strings.Join(msg.Issues, "; ")
	case event.Error != nil:
		row[8] = event.Error.Message
	}
	return row
}

// joinValues renders OK fields as "name=value unit" pairs separated by
// semicolons.
func joinValues(fields []log.FieldEvent) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f.Status != "OK" {
			continue
		}
		name := f.Name
		if f.Group > 0 {
			name = fmt.Sprintf("%s[%d]", f.Name, f.Group)
		}
		value := formatFieldValue(f.Value)
		if f.Unit != "" {
			value += " " + f.Unit
		}
		parts = append(parts, name+"="+value)
	}
	return strings.Join(parts, "; ")
}
