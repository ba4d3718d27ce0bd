package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes decode events to an slog.Logger.
// Useful for development when you want to see decode events in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session_id", event.SessionID),
		slog.String("category", event.Category.String()),
		slog.Uint64("source", uint64(event.Source)),
	}

	// Add type-specific attributes
	switch {
	case event.Message != nil:
		attrs = append(attrs,
			slog.Uint64("pgn", uint64(event.Message.PGN)),
			slog.String("name", event.Message.Name),
			slog.Int("fields", len(event.Message.Fields)),
		)
		if event.Message.Groups > 0 {
			attrs = append(attrs, slog.Int("groups", event.Message.Groups))
		}
		if event.Message.PaddingBits > 0 {
			attrs = append(attrs, slog.Int("padding_bits", event.Message.PaddingBits))
		}
		if len(event.Message.Issues) > 0 {
			attrs = append(attrs, slog.Any("issues", event.Message.Issues))
		}
	case event.Error != nil:
		attrs = append(attrs, slog.String("error_msg", event.Error.Message))
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("error_context", event.Error.Context))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "decode", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
