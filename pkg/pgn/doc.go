// Package pgn is the NMEA 2000 parameter group metadata registry.
//
// A Descriptor describes the payload layout of one PGN: its name, category,
// declared size and an ordered list of bit fields. A Registry indexes
// descriptors by PGN and always answers a lookup, substituting the fallback
// descriptor registered under PGN 0 for identifiers it does not know.
//
// The bundled table is generated from docs/pgns by pgn-gen:
//
//	go generate ./pkg/pgn
//
// Descriptors are served exactly as defined. Layout problems such as a
// field extending past the declared size are reported by Lint, never
// corrected; ISO Request (59904) is the standing example.
package pgn

//go:generate go run ../../cmd/pgn-gen -defs ../../docs/pgns -output .
