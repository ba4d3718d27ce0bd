package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/libnmea/libnmea-go/pkg/log"
)

// FilterFlags holds the raw filter flag values shared by view and filter.
type FilterFlags struct {
	SessionID string
	TimeStart string
	TimeEnd   string
	Category  string
	PGN       string
	Source    string
}

// Filter converts the flag values into a log filter.
func (ff FilterFlags) Filter() (log.Filter, error) {
	filter := log.Filter{SessionID: ff.SessionID}

	if ff.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, ff.TimeStart)
		if err != nil {
			return filter, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}

	if ff.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, ff.TimeEnd)
		if err != nil {
			return filter, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}

	if ff.Category != "" {
		c, err := ParseCategoryFlag(ff.Category)
		if err != nil {
			return filter, err
		}
		filter.Category = &c
	}

	if ff.PGN != "" {
		p, err := ParsePGNFlag(ff.PGN)
		if err != nil {
			return filter, err
		}
		filter.PGN = &p
	}

	if ff.Source != "" {
		s, err := ParseSourceFlag(ff.Source)
		if err != nil {
			return filter, err
		}
		filter.Source = &s
	}

	return filter, nil
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	c, ok := log.ParseCategory(strings.ToUpper(s))
	if !ok {
		return 0, fmt.Errorf("invalid category: %s (must be decode, fallback, issue, or error)", s)
	}
	return c, nil
}

// ParsePGNFlag parses a decimal or 0x-prefixed hex PGN.
func ParsePGNFlag(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 0, 24)
	if err != nil {
		return 0, fmt.Errorf("invalid pgn: %s", s)
	}
	return uint32(v), nil
}

// ParseSourceFlag parses a bus source address.
func ParseSourceFlag(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid source address: %s (must be 0-255)", s)
	}
	return uint8(v), nil
}
