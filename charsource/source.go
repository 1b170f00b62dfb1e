// Package charsource implements FTL's character-level input sources: the
// stacked string/file readers the parser consumes bytes from (spec §3
// "source", §4.2 "Lines and sources"). Pushing a file onto a Stack (as
// an embedder does for a seed or script file) puts a new Source in front of
// whatever the parser was already reading from; reaching that source's
// end pops back to the caller, so nested includes compose naturally.
package charsource

// Source is a single character-level input, tracked with its own line
// counter for diagnostics (spec: error messages are tagged
// "<source>:<line>").
type Source interface {
	// ReadByte returns the next byte and true, or ok=false at EOF.
	ReadByte() (b byte, ok bool)
	// Unread pushes back the most recently read byte so it is returned
	// again by the next ReadByte (the parser backs up one byte at a time
	// when a primitive's lookahead doesn't match).
	Unread()
	// Name is the source's diagnostic name ("-" for stdin, a file path,
	// or a synthetic name like "<eval>").
	Name() string
	// Line is the current 1-based line number.
	Line() int
}
