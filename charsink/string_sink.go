package charsink

import "strings"

// StringSink accumulates written bytes in memory, used to capture a
// coroutine's output for later inspection (tests, `collect`-style
// command pipelines).
type StringSink struct {
	b strings.Builder
}

// NewStringSink returns an empty in-memory sink.
func NewStringSink() *StringSink { return &StringSink{} }

func (s *StringSink) WriteByte(b byte) error {
	return s.b.WriteByte(b)
}

func (s *StringSink) WriteString(str string) (int, error) {
	return s.b.WriteString(str)
}

// String returns everything written so far.
func (s *StringSink) String() string { return s.b.String() }
