package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/libnmea/libnmea-go/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents      int
	EventsByCategory map[log.Category]int
	PGNs             map[uint32]*PGNStats
	Sources          map[uint8]int
	Sessions         map[string]int
	Fingerprints     map[string]int
	Errors           int
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// PGNStats holds statistics for a single PGN.
type PGNStats struct {
	Name        string
	Known       bool
	Messages    int
	Issues      int
	Unavailable int
	Absent      int
	FirstSeen   time.Time
	LastSeen    time.Time
}

func newStats() *Stats {
	return &Stats{
		EventsByCategory: make(map[log.Category]int),
		PGNs:             make(map[uint32]*PGNStats),
		Sources:          make(map[uint8]int),
		Sessions:         make(map[string]int),
		Fingerprints:     make(map[string]int),
	}
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByCategory[event.Category]++
	s.Sessions[event.SessionID]++
	if event.Fingerprint != "" {
		s.Fingerprints[event.Fingerprint]++
	}

	// Track time range
	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	if event.Error != nil {
		s.Errors++
	}

	msg := event.Message
	if msg == nil {
		return
	}
	s.Sources[event.Source]++

	ps, ok := s.PGNs[msg.PGN]
	if !ok {
		ps = &PGNStats{
			Name:      msg.Name,
			Known:     msg.Known,
			FirstSeen: event.Timestamp,
			LastSeen:  event.Timestamp,
		}
		s.PGNs[msg.PGN] = ps
	}
	ps.Messages++
	ps.Issues += len(msg.Issues)
	if event.Timestamp.After(ps.LastSeen) {
		ps.LastSeen = event.Timestamp
	}
	for _, f := range msg.Fields {
		switch f.Status {
		case "UNAVAILABLE":
			ps.Unavailable++
		case "ABSENT":
			ps.Absent++
		}
	}
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := newStats()
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}

	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== NMEA 2000 Decode Log Statistics ===")
	fmt.Fprintln(w)

	// Time range
	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintf(w, "Sessions:     %d\n", len(stats.Sessions))
	fmt.Fprintf(w, "Sources:      %d\n", len(stats.Sources))
	if len(stats.Fingerprints) > 1 {
		fmt.Fprintf(w, "Warning: events were decoded with %d different registries\n", len(stats.Fingerprints))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryDecode, log.CategoryFallback, log.CategoryIssue, log.CategoryError} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "PGNs: %d\n", len(stats.PGNs))
	if len(stats.PGNs) > 0 {
		ids := make([]uint32, 0, len(stats.PGNs))
		for id := range stats.PGNs {
			ids = append(ids, id)
		}
		// Most frequent first
		sort.Slice(ids, func(i, j int) bool {
			a, b := stats.PGNs[ids[i]], stats.PGNs[ids[j]]
			if a.Messages != b.Messages {
				return a.Messages > b.Messages
			}
			return ids[i] < ids[j]
		})

		fmt.Fprintln(w)
		for _, id := range ids {
			ps := stats.PGNs[id]
			marker := ""
			if !ps.Known {
				marker = " *"
			}
			fmt.Fprintf(w, "  %6d %-40s %d messages%s\n", id, ps.Name, ps.Messages, marker)
			if ps.Issues > 0 || ps.Unavailable > 0 || ps.Absent > 0 {
				fmt.Fprintf(w, "         issues %d, unavailable fields %d, absent fields %d\n",
					ps.Issues, ps.Unavailable, ps.Absent)
			}
		}
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
