package charsink

import (
	"bufio"
	"os"
)

// FileSink writes to an open, buffered file — the `echo` command's
// default destination, and the sink a coroutine's error/trace output
// writes through when configured to a log file rather than stderr.
type FileSink struct {
	f *os.File
	w *bufio.Writer
}

// Create truncates (or creates) path for writing.
func Create(path string) (*FileSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &FileSink{f: f, w: bufio.NewWriter(f)}, nil
}

// Wrap adapts an already-open file (e.g. os.Stdout/os.Stderr) as a sink.
func Wrap(f *os.File) *FileSink { return &FileSink{f: f, w: bufio.NewWriter(f)} }

func (s *FileSink) WriteByte(b byte) error { return s.w.WriteByte(b) }

func (s *FileSink) WriteString(str string) (int, error) { return s.w.WriteString(str) }

// Flush pushes buffered bytes to the underlying file.
func (s *FileSink) Flush() error { return s.w.Flush() }

// Close flushes and closes the underlying file.
func (s *FileSink) Close() error {
	if err := s.w.Flush(); err != nil {
		return err
	}
	return s.f.Close()
}
