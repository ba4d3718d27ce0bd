// Package decode turns NMEA 2000 payloads into field values using the
// layouts held by a pgn.Registry.
//
// Decoding never fails as a whole. Every declared field yields a FieldValue
// whose Status says what happened to it:
//
//   - OK: a value was produced
//   - ABSENT: the payload ends before the field
//   - UNAVAILABLE: the field holds the "data not available" sentinel
//   - NOT_USED: the field is reserved
//   - ERROR: the field could not be interpreted (see FieldValue.Err)
//
// Problems that concern the payload as a whole, such as an unknown PGN or a
// partial repeating group, are collected in Message.Issues.
package decode
