package charsource

import (
	"bufio"
	"io"
	"os"

	"github.com/fsnotify/fsnotify"
)

// FileSource reads from an open file, buffered for the common case of
// reading an entire script or rc-file byte by byte.
type FileSource struct {
	name    string
	f       *os.File
	r       *bufio.Reader
	line    int
	lastNL  bool
	watcher *fsnotify.Watcher
	changed chan struct{}
}

// Open opens path and returns a FileSource positioned at its start.
func Open(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &FileSource{name: path, f: f, r: bufio.NewReader(f), line: 1}, nil
}

// WatchForChanges starts an fsnotify watch on the source's underlying
// file. The returned channel receives a value each time the file is
// written or created; nothing in this module reloads the file in
// response, that is left to the caller. Callers must call Close to stop
// the watcher.
func (s *FileSource) WatchForChanges() (<-chan struct{}, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(s.name); err != nil {
		w.Close()
		return nil, err
	}
	s.watcher = w
	s.changed = make(chan struct{}, 1)
	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					select {
					case s.changed <- struct{}{}:
					default:
					}
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return s.changed, nil
}

func (s *FileSource) ReadByte() (byte, bool) {
	b, err := s.r.ReadByte()
	if err != nil {
		return 0, false
	}
	s.lastNL = b == '\n'
	if s.lastNL {
		s.line++
	}
	return b, true
}

// Unread backs up one byte. FileSource only supports a single
// outstanding Unread, matching the parser's one-byte-of-lookahead usage
// (spec §6: primitives either consume or leave the cursor unchanged —
// they never need to back up more than what they just peeked).
func (s *FileSource) Unread() {
	if err := s.r.UnreadByte(); err != nil {
		return
	}
	if s.lastNL {
		s.line--
	}
}

func (s *FileSource) Name() string { return s.name }
func (s *FileSource) Line() int    { return s.line }

// Close releases the underlying file and any active watcher.
func (s *FileSource) Close() error {
	if s.watcher != nil {
		s.watcher.Close()
	}
	return s.f.Close()
}

var _ io.Closer = (*FileSource)(nil)
