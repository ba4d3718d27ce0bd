package decode

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/libnmea/libnmea-go/pkg/log"
	"github.com/libnmea/libnmea-go/pkg/pgn"
)

// Config configures a Decoder. The zero value decodes against the bundled
// registry without protocol logging.
type Config struct {
	// Registry supplies payload layouts. Defaults to pgn.Default().
	Registry *pgn.Registry

	// Logger receives operational messages. Defaults to slog.Default().
	Logger *slog.Logger

	// ProtocolLogger receives one event per decoded payload.
	ProtocolLogger log.Logger

	// SessionID tags protocol events. A random UUID is used when empty.
	SessionID string

	// Clock stamps payloads that arrive without a timestamp. Defaults to
	// time.Now.
	Clock func() time.Time
}

// Raw is a reassembled payload as received from the bus.
type Raw struct {
	PGN       uint32
	Source    uint8
	Timestamp time.Time
	Data      []byte
}

// Decoder decodes payloads against a registry. It is safe for concurrent
// use.
type Decoder struct {
	reg       *pgn.Registry
	logger    *slog.Logger
	plog      log.Logger
	sessionID string
	clock     func() time.Time
}

// New creates a Decoder.
func New(cfg Config) *Decoder {
	d := &Decoder{
		reg:       cfg.Registry,
		logger:    cfg.Logger,
		plog:      cfg.ProtocolLogger,
		sessionID: cfg.SessionID,
		clock:     cfg.Clock,
	}
	if d.reg == nil {
		d.reg = pgn.Default()
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	if d.sessionID == "" {
		d.sessionID = uuid.NewString()
	}
	if d.clock == nil {
		d.clock = time.Now
	}
	return d
}

// Registry returns the registry the decoder uses.
func (d *Decoder) Registry() *pgn.Registry {
	return d.reg
}

// SessionID returns the session ID attached to protocol events.
func (d *Decoder) SessionID() string {
	return d.sessionID
}

// Decode decodes payload as PGN id.
func (d *Decoder) Decode(id uint32, payload []byte) *Message {
	return d.DecodeRaw(Raw{PGN: id, Data: payload})
}

// DecodeRaw decodes a received payload. Unregistered identifiers are
// decoded against the fallback descriptor and flagged with ErrUnknownPGN.
// Fields that fail to decode are also reported in Message.Issues.
func (d *Decoder) DecodeRaw(raw Raw) *Message {
	msg := &Message{
		PGN:       raw.PGN,
		Source:    raw.Source,
		Timestamp: raw.Timestamp,
		Data:      raw.Data,
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = d.clock()
	}

	desc, ok := d.reg.Lookup(raw.PGN)
	if !ok {
		desc = d.reg.Unknown()
		msg.Fallback = true
		msg.Issues = append(msg.Issues, &FieldError{PGN: raw.PGN, Err: ErrUnknownPGN})
	}
	msg.Descriptor = desc

	decodeLayout(msg, desc, raw.Data)
	for fv := range msg.Each {
		if fv.Status == StatusError {
			msg.Issues = append(msg.Issues, fv.Err)
		}
	}
	d.report(msg)
	return msg
}

func (d *Decoder) report(msg *Message) {
	if msg.Fallback {
		d.logger.Debug("decoded with fallback descriptor", "pgn", msg.PGN, "source", msg.Source,
			"bytes", len(msg.Data))
	}
	if !msg.Fallback {
		for _, issue := range msg.Issues {
			d.logger.Debug("payload issue", "pgn", msg.PGN, "source", msg.Source, "error", issue)
		}
	}
	if d.plog != nil {
		d.plog.Log(d.event(msg))
	}
}

var defaultDecoder = sync.OnceValue(func() *Decoder {
	return New(Config{})
})

// Decode decodes payload as PGN id against the bundled registry.
func Decode(id uint32, payload []byte) *Message {
	return defaultDecoder().Decode(id, payload)
}
