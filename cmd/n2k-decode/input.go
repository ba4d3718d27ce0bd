package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/libnmea/libnmea-go/pkg/decode"
	"github.com/libnmea/libnmea-go/pkg/pgn"
)

// Input errors.
var (
	ErrMissingPayload = errors.New("missing payload")
	ErrInvalidPGN     = errors.New("invalid pgn")
	ErrInvalidSource  = errors.New("invalid source address")
	ErrInvalidHex     = errors.New("invalid hex payload")
)

// LineError is an input line that could not be parsed.
type LineError struct {
	Name string
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s: %v", e.Context(), e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Context returns the "name:line" location of the error.
func (e *LineError) Context() string {
	return fmt.Sprintf("%s:%d", e.Name, e.Line)
}

// ParseLine parses one input line of the form
//
//	<pgn> [src] <hex>
//
// The PGN and source accept decimal or 0x hex. The payload may separate
// bytes with ':' or ','. Blank lines and lines starting with '#' yield
// ok == false.
func ParseLine(line string) (raw decode.Raw, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return raw, false, nil
	}

	parts := strings.Fields(line)
	if len(parts) < 2 {
		return raw, false, ErrMissingPayload
	}
	if len(parts) > 3 {
		return raw, false, fmt.Errorf("unexpected token %q", parts[3])
	}

	id, err := strconv.ParseUint(parts[0], 0, 32)
	if err != nil || id > pgn.MaxPGN {
		return raw, false, fmt.Errorf("%w: %s", ErrInvalidPGN, parts[0])
	}
	raw.PGN = uint32(id)

	payload := parts[len(parts)-1]
	if len(parts) == 3 {
		src, err := strconv.ParseUint(parts[1], 0, 8)
		if err != nil {
			return raw, false, fmt.Errorf("%w: %s", ErrInvalidSource, parts[1])
		}
		raw.Source = uint8(src)
	}

	payload = strings.NewReplacer(":", "", ",", "").Replace(payload)
	payload = strings.TrimPrefix(strings.TrimPrefix(payload, "0x"), "0X")
	data, err := hex.DecodeString(payload)
	if err != nil {
		return raw, false, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	raw.Data = data
	return raw, true, nil
}

// ReadInput parses every line of r. Lines that fail to parse are returned
// as LineErrors and do not stop the scan.
func ReadInput(r io.Reader, name string) ([]decode.Raw, []*LineError, error) {
	var (
		raws []decode.Raw
		bad  []*LineError
	)

	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		raw, ok, err := ParseLine(scanner.Text())
		if err != nil {
			bad = append(bad, &LineError{Name: name, Line: n, Err: err})
			continue
		}
		if ok {
			raws = append(raws, raw)
		}
	}
	if err := scanner.Err(); err != nil {
		return raws, bad, fmt.Errorf("reading %s: %w", name, err)
	}
	return raws, bad, nil
}
