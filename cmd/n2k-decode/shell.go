package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/libnmea/libnmea-go/pkg/inspect"
	"github.com/libnmea/libnmea-go/pkg/log"
)

// Shell is the interactive decoding shell.
type Shell struct {
	inspector *inspect.Inspector
	formatter *inspect.Formatter
	plog      log.Logger
	sessionID string
	out       io.Writer
	entered   int
}

// NewShell creates a shell decoding with inspector and writing to out.
// Lines that fail to parse are reported to plog when it is non-nil.
func NewShell(inspector *inspect.Inspector, plog log.Logger, sessionID string, out io.Writer) *Shell {
	return &Shell{
		inspector: inspector,
		formatter: inspect.NewFormatter(),
		plog:      plog,
		sessionID: sessionID,
		out:       out,
	}
}

// Run reads commands with readline until quit, EOF or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "n2k> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	s.out = rl.Stdout()
	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			return nil
		}
		if !s.Execute(line) {
			return nil
		}
	}
}

// Execute runs one command line. It returns false when the shell should
// exit.
func (s *Shell) Execute(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()
	case "decode", "d":
		s.cmdDecode(args)
	case "show", "s":
		s.cmdShow(args)
	case "list", "ls":
		s.cmdList(args)
	case "last", "l":
		s.cmdLast(args)
	case "get", "g":
		s.cmdGet(args)
	case "quit", "exit", "q":
		fmt.Fprintln(s.out, "Exiting...")
		return false
	default:
		// A bare "<pgn> [src] <hex>" line decodes directly.
		if len(parts) >= 2 {
			s.cmdDecode(parts)
			return true
		}
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
NMEA 2000 Decoder Commands:
  Decoding:
    decode <pgn> [src] <hex> - Decode a payload (the "decode" may be omitted)
    last [pgn]               - Show the latest decoded payload (or list PGNs seen)
    get <path>               - Show one field of the latest payload

  Registry:
    list [-v]                - List registered PGNs
    show <pgn>               - Show the field layout of a PGN

  General:
    help                     - Show this help
    quit                     - Exit

  Path Format:
    pgn[/group]/field - e.g., 127250/heading or 127503/2/voltage
    PGNs can be numbers, names or slugs: vessel-heading/heading`)
}

func (s *Shell) cmdDecode(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.out, "Usage: decode <pgn> [src] <hex>")
		fmt.Fprintln(s.out, "  Example: decode 127250 35 01102700008000FD")
		return
	}

	s.entered++
	raw, _, err := ParseLine(strings.Join(args, " "))
	if err != nil {
		lerr := &LineError{Name: "shell", Line: s.entered, Err: err}
		s.logError(lerr)
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}

	msg := s.inspector.Decode(raw)
	fmt.Fprint(s.out, s.formatter.FormatMessage(msg))
}

func (s *Shell) cmdShow(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "Usage: show <pgn>")
		return
	}

	reg := s.inspector.Registry()
	id, ok := inspect.ResolvePGN(reg, strings.Join(args, " "))
	if !ok {
		fmt.Fprintf(s.out, "Unknown PGN: %s\n", strings.Join(args, " "))
		return
	}
	fmt.Fprint(s.out, s.formatter.FormatDescriptor(reg.Get(id)))
}

func (s *Shell) cmdList(args []string) {
	f := *s.formatter
	f.ShowMetadata = len(args) > 0 && (args[0] == "-v" || args[0] == "--verbose")
	fmt.Fprint(s.out, f.FormatDescriptorTable(inspect.Rows(s.inspector.Registry())))
}

func (s *Shell) cmdLast(args []string) {
	reg := s.inspector.Registry()
	if len(args) == 0 {
		ids := s.inspector.PGNs()
		if len(ids) == 0 {
			fmt.Fprintln(s.out, "No payloads decoded yet")
			return
		}
		for _, id := range ids {
			fmt.Fprintf(s.out, "  %6d  %s\n", id, inspect.PGNName(reg, id))
		}
		return
	}

	// Unregistered PGNs are recorded too, so accept any number.
	arg := strings.Join(args, " ")
	id, ok := inspect.ResolvePGN(reg, arg)
	if !ok {
		n, err := strconv.ParseUint(arg, 0, 24)
		if err != nil {
			fmt.Fprintf(s.out, "Unknown PGN: %s\n", arg)
			return
		}
		id = uint32(n)
	}
	msg, ok := s.inspector.Latest(id)
	if !ok {
		fmt.Fprintf(s.out, "No payload decoded for PGN %d\n", id)
		return
	}
	fmt.Fprint(s.out, s.formatter.FormatMessage(msg))
}

func (s *Shell) cmdGet(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "Usage: get <path>")
		fmt.Fprintln(s.out, "  Example: get 127250/heading")
		return
	}

	path, err := inspect.ParsePath(s.inspector.Registry(), strings.Join(args, " "))
	if err != nil {
		fmt.Fprintf(s.out, "Invalid path: %v\n", err)
		return
	}
	if path.IsPartial {
		s.cmdLast(args)
		return
	}

	fv, err := s.inspector.Read(path)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "%s = %s\n", fv.Name(), s.formatter.FormatValue(fv))
}

func (s *Shell) logError(lerr *LineError) {
	if s.plog == nil {
		return
	}
	s.plog.Log(errorEvent(s.sessionID, lerr))
}
