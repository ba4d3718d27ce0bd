package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/libnmea/libnmea-go/pkg/decode"
	"github.com/libnmea/libnmea-go/pkg/inspect"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Printer writes decoded messages in one output format.
type Printer struct {
	w         io.Writer
	format    string
	formatter *inspect.Formatter
	enc       *json.Encoder
}

// NewPrinter creates a Printer for format, which must be FormatText or
// FormatJSON.
func NewPrinter(w io.Writer, format string) (*Printer, error) {
	p := &Printer{w: w, format: format}
	switch format {
	case FormatText:
		p.formatter = inspect.NewFormatter()
	case FormatJSON:
		p.enc = json.NewEncoder(w)
	default:
		return nil, fmt.Errorf("unknown format: %s (use text or json)", format)
	}
	return p, nil
}

// Print writes one message. JSON output is one object per line.
func (p *Printer) Print(msg *decode.Message) error {
	if p.enc != nil {
		return p.enc.Encode(inspect.ToDTO(msg))
	}
	_, err := fmt.Fprintln(p.w, p.formatter.FormatMessage(msg))
	return err
}

// PrintAll writes msgs in order.
func (p *Printer) PrintAll(msgs []*decode.Message) error {
	for _, msg := range msgs {
		if err := p.Print(msg); err != nil {
			return err
		}
	}
	return nil
}
