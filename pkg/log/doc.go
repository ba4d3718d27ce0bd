// Package log records decoded NMEA 2000 payloads as a machine-readable
// event trace.
//
// It is separate from operational logging (slog): every payload a decoder
// handles becomes one Event carrying the raw bytes, the per-field outcomes
// and any payload issues, so a capture can be replayed and analysed later.
//
// # Basic Usage
//
// Decoders accept a Logger implementation:
//
//	// For development: log to console via slog
//	cfg.ProtocolLogger = log.NewSlogAdapter(slog.Default())
//
//	// For capture: write to binary file
//	cfg.ProtocolLogger, _ = log.NewFileLogger("/var/log/n2k/bus.nlog")
//
//	// Both: use MultiLogger
//	cfg.ProtocolLogger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Categories
//
//   - DECODE: payload decoded against its own descriptor
//   - FALLBACK: identifier unknown, decoded against the fallback descriptor
//   - ISSUE: decoded, but the payload did not fit its layout cleanly
//   - ERROR: input that never reached the decoder
//
// # File Format
//
// Log files are a stream of CBOR-encoded events with the .nlog extension.
// The n2k-log CLI tool provides viewing, filtering, and export capabilities.
package log
