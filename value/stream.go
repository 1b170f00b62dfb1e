package value

import "io"

// Stream wraps an input source or output sink plus close/delete hooks and
// read/write flags (spec §3 "stream", §4.4 "For streams"). The
// charsource/charsink packages provide the concrete character-level
// sources and sinks FTL scripts read files, strings and sockets through;
// Stream is the value-level handle scripts bind and pass around.
type Stream struct {
	Header
	r        io.Reader
	w        io.Writer
	closer   io.Closer
	readable bool
	writable bool
	name     string
	owned    bool // false after Takesource: closing the Stream won't close r/w
}

// NewSource wraps r as a readable stream.
func NewSource(l *Locals, name string, r io.Reader) *Stream {
	s := &Stream{r: r, readable: true, name: name, owned: true}
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}
	s.setKind(TStream)
	if l != nil {
		return Alloc(l, s)
	}
	return s
}

// NewSink wraps w as a writable stream.
func NewSink(l *Locals, name string, w io.Writer) *Stream {
	s := &Stream{w: w, writable: true, name: name, owned: true}
	if c, ok := w.(io.Closer); ok {
		s.closer = c
	}
	s.setKind(TStream)
	if l != nil {
		return Alloc(l, s)
	}
	return s
}

// Source returns the stream's reader, or nil if this stream isn't
// readable.
func (s *Stream) Source() io.Reader { return s.r }

// Sink returns the stream's writer, or nil if this stream isn't
// writable.
func (s *Stream) Sink() io.Writer { return s.w }

// Takesource moves ownership of the underlying reader out of s: the
// caller becomes responsible for closing it, and s.Close becomes a no-op
// (spec §4.4: "takesource (moves ownership so the stream can be deleted
// without closing the source)").
func (s *Stream) Takesource() io.Reader {
	s.owned = false
	return s.r
}

// Close releases the underlying source/sink, unless ownership was moved
// out via Takesource.
func (s *Stream) Close() error {
	if !s.owned || s.closer == nil {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}

func (s *Stream) onDelete() { _ = s.Close() }

func (s *Stream) String(root Value) string { return "<stream " + s.name + ">" }

func printStream(root, v Value) string { return v.(*Stream).String(root) }

func init() { TStream.Print = printStream }
