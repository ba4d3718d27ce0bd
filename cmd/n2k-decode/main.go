// Command n2k-decode decodes NMEA 2000 payloads from text input.
//
// Each input line holds a PGN, an optional source address and the payload
// in hex:
//
//	127250 35 01102700008000FD
//	0x1F50B 01:E8:03:00:00:10:27:05
//
// Usage:
//
//	n2k-decode [flags] [file ...]
//
// Without files, lines are read from stdin. With -i an interactive shell
// is started instead.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/libnmea/libnmea-go/pkg/decode"
	"github.com/libnmea/libnmea-go/pkg/inspect"
	"github.com/libnmea/libnmea-go/pkg/log"
)

// Options configures a run.
type Options struct {
	Format      string
	LogFile     string
	LogLevel    string
	Trace       bool
	Interactive bool
	Files       []string
}

func main() {
	var opts Options
	flag.StringVar(&opts.Format, "format", FormatText, "Output format: text, json")
	flag.StringVar(&opts.LogFile, "log", "", "Record decode events to a .nlog file")
	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level: debug, info, warn, error (overridden by "+EnvLogLevel+")")
	flag.BoolVar(&opts.Trace, "trace", false, "Also write decode events to the log at debug level")
	flag.BoolVar(&opts.Interactive, "i", false, "Start an interactive decoding shell")
	flag.Parse()
	opts.Files = flag.Args()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts Options, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	logger := newLogger(stderr, resolveLevel(opts.LogLevel))

	var loggers []log.Logger
	if opts.LogFile != "" {
		fl, ferr := log.NewFileLogger(opts.LogFile)
		if ferr != nil {
			return fmt.Errorf("creating protocol log: %w", ferr)
		}
		defer func() {
			werr := fl.Err()
			if cerr := fl.Close(); werr == nil {
				werr = cerr
			}
			if werr != nil {
				logger.Error("writing protocol log", "path", opts.LogFile, "error", werr)
				if err == nil {
					err = fmt.Errorf("writing protocol log: %w", werr)
				}
				return
			}
			logger.Info("protocol log written", "path", opts.LogFile, "events", fl.Count())
		}()
		loggers = append(loggers, fl)
	}
	if opts.Trace {
		loggers = append(loggers, log.NewSlogAdapter(logger))
	}

	var plog log.Logger
	if len(loggers) > 0 {
		plog = log.NewMultiLogger(loggers...)
	}

	dec := decode.New(decode.Config{
		Logger:         logger,
		ProtocolLogger: plog,
	})
	logger.Debug("decoder ready", "session_id", dec.SessionID(),
		"pgns", dec.Registry().Len(), "fingerprint", dec.Registry().Fingerprint())

	if opts.Interactive {
		return NewShell(inspect.NewInspector(dec), plog, dec.SessionID(), stdout).Run(ctx)
	}

	printer, err := NewPrinter(stdout, opts.Format)
	if err != nil {
		return err
	}

	if len(opts.Files) == 0 {
		return decodeStream(ctx, dec, plog, logger, printer, stdin, "stdin")
	}
	for _, path := range opts.Files {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		err = decodeStream(ctx, dec, plog, logger, printer, f, path)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// decodeStream decodes every line of r and prints the results in input
// order.
func decodeStream(ctx context.Context, dec *decode.Decoder, plog log.Logger, logger *slog.Logger,
	printer *Printer, r io.Reader, name string) error {
	raws, bad, err := ReadInput(r, name)
	if err != nil {
		return err
	}
	for _, lerr := range bad {
		logger.Warn("skipping input line", "at", lerr.Context(), "error", lerr.Err)
		if plog != nil {
			plog.Log(errorEvent(dec.SessionID(), lerr))
		}
	}

	msgs, err := dec.DecodeAll(ctx, raws)
	if err != nil {
		return err
	}
	logger.Info("decoded input", "source", name, "payloads", len(msgs), "skipped", len(bad))
	return printer.PrintAll(msgs)
}

func errorEvent(sessionID string, lerr *LineError) log.Event {
	return log.Event{
		Timestamp: time.Now(),
		SessionID: sessionID,
		Category:  log.CategoryError,
		Error: &log.ErrorEventData{
			Message: lerr.Err.Error(),
			Context: lerr.Context(),
		},
	}
}
