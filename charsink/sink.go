// Package charsink implements FTL's output sinks: the string-builder,
// file and fixed-buffer destinations an echo stream or `printf` call
// writes through (spec §3 "sink").
package charsink

// Sink is a byte-level output destination.
type Sink interface {
	WriteByte(b byte) error
	WriteString(s string) (int, error)
}
