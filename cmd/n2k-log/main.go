// Command n2k-log is a tool for viewing and analyzing NMEA 2000 decode log
// files.
//
// Log files are created by n2k-decode with the -log flag, or by any program
// that attaches a log.FileLogger to a decoder.
//
// Usage:
//
//	n2k-log <command> [flags] <file.nlog>
//
// Commands:
//
//	view     View log file in human-readable format
//	export   Export log file to JSON or CSV format
//	filter   Filter log file and write to new file
//	stats    Show statistics about the log file
//
// Examples:
//
//	# View all events
//	n2k-log view capture.nlog
//
//	# View only payloads decoded with the fallback descriptor
//	n2k-log view --category fallback capture.nlog
//
//	# View one PGN from one source
//	n2k-log view --pgn 127250 --source 35 capture.nlog
//
//	# Export to CSV
//	n2k-log export --format csv capture.nlog
//
//	# Filter by session and save to new file
//	n2k-log filter --session-id 5f0c7e2a-... -o filtered.nlog capture.nlog
//
//	# Show statistics
//	n2k-log stats capture.nlog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/libnmea/libnmea-go/cmd/n2k-log/commands"
)

const usage = `n2k-log - NMEA 2000 Decode Log Analyzer

Usage:
  n2k-log <command> [flags] <file.nlog>

Commands:
  view     View log file in human-readable format
  export   Export log file to JSON or CSV format
  filter   Filter log file and write to new file
  stats    Show statistics about the log file

Use "n2k-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "filter":
		runFilter(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// filterFlags registers the flags shared by view and filter.
func filterFlags(fs *flag.FlagSet) *commands.FilterFlags {
	ff := &commands.FilterFlags{}
	fs.StringVar(&ff.SessionID, "session-id", "", "Filter by session ID")
	fs.StringVar(&ff.TimeStart, "time-start", "", "Filter by start time (RFC3339)")
	fs.StringVar(&ff.TimeEnd, "time-end", "", "Filter by end time (RFC3339)")
	fs.StringVar(&ff.Category, "category", "", "Filter by category (decode, fallback, issue, error)")
	fs.StringVar(&ff.PGN, "pgn", "", "Filter by PGN (decimal or 0x hex)")
	fs.StringVar(&ff.Source, "source", "", "Filter by source address")
	return ff
}

func logPath(fs *flag.FlagSet) string {
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}
	return fs.Arg(0)
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `n2k-log view - View log file in human-readable format

Usage:
  n2k-log view [flags] <file.nlog>

Flags:
`)
		fs.PrintDefaults()
	}
	ff := filterFlags(fs)

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := logPath(fs)

	filter, err := ff.Filter()
	if err != nil {
		fail(err)
	}
	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fail(err)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `n2k-log export - Export log file to JSON or CSV format

Usage:
  n2k-log export [flags] <file.nlog>

Flags:
`)
		fs.PrintDefaults()
	}

	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := logPath(fs)

	if err := commands.RunExport(path, *format, *output); err != nil {
		fail(err)
	}
}

func runFilter(args []string) {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `n2k-log filter - Filter log file and write to new file

Usage:
  n2k-log filter [flags] <file.nlog>

Flags:
`)
		fs.PrintDefaults()
	}

	output := fs.String("o", "", "Output file (required)")
	ff := filterFlags(fs)

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := logPath(fs)

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}

	opts := commands.FilterOptions{Output: *output, FilterFlags: *ff}
	if err := commands.RunFilter(path, opts, os.Stdout); err != nil {
		fail(err)
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `n2k-log stats - Show statistics about the log file

Usage:
  n2k-log stats <file.nlog>

`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	path := logPath(fs)

	if err := commands.RunStats(path, os.Stdout); err != nil {
		fail(err)
	}
}
