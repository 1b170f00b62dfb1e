// Package coroutine implements FTL's coroutine/parser-state object: the
// per-coroutine environment stack, locals list, throw/catch frame chain
// and I/O configuration the spec's "parser state" bundles together
// (spec §4.8 "Coroutines", §4.9 "Throw/catch"). State is deliberately a
// plain data holder with no grammar or evaluation logic of its own — the
// parser package embeds it and supplies Eval/Bind/Invoke, so that this
// package can depend only on value and charsink/charsource, avoiding a
// value/coroutine/parser import cycle (parser needs both value and
// coroutine; neither of those needs to know about parser).
package coroutine

import (
	"fmt"
	"sync/atomic"

	"github.com/ftl-lang/ftl/charsink"
	"github.com/ftl-lang/ftl/value"
)

// ThrowFrame is one entry of the throw/catch frame chain a `catch`
// command pushes before evaluating its body (spec §4.9): when Throw
// unwinds, it stops at the nearest frame and records the thrown value
// there rather than continuing further up the chain.
type ThrowFrame struct {
	Caught value.Value
	Hit    bool
}

var idCounter uint64

// State is one coroutine's parser state: its own environment stack,
// locals list, throw-frame chain, error counter and I/O sinks. The GC
// walks every live State's Locals and Env as additional mark roots (see
// MarkRoots), matching spec §4.3's "for every known coroutine" rule.
type State struct {
	ID     string
	Heap   *value.Heap
	Locals *value.Locals
	Root   value.Value

	Env value.EnvPos

	// Args holds the argument values bound to the native Function or
	// Command currently executing in this coroutine, for Frame.Arg.
	Args []value.Value

	Throws []*ThrowFrame

	ErrCount int
	Echo     charsink.Sink

	// Suspend is an optional hook an embedder can install for
	// cooperative scheduling across coroutines. Nothing in this module
	// calls it: the parser never polls it, so it runs only where the
	// embedder's own code invokes it.
	Suspend func() bool

	done bool
}

// New creates a coroutine sharing heap and root, with its own locals
// list and an environment stack starting at root, and registers it with
// heap as a GC root source.
func New(heap *value.Heap, root value.Value) *State {
	n := atomic.AddUint64(&idCounter, 1)
	s := &State{
		ID:     fmt.Sprintf("co-%s", value.ShortHash([]byte(fmt.Sprintf("%d", n)))),
		Heap:   heap,
		Locals: value.NewLocals(heap),
		Root:   root,
	}
	if rd, ok := root.(value.Directory); ok {
		s.Env = value.Push(nil, rd, true)
	}
	heap.Register(s)
	return s
}

// MarkRoots implements value.RootSource: every value reachable from this
// coroutine's locals list, environment stack, bound-argument list and
// pending thrown values must survive collection even though none of them
// are reachable from the process root directory.
func (s *State) MarkRoots(h *value.Heap, gen uint64) {
	if s.Locals != nil {
		s.Locals.MarkAll(h, gen)
	}
	for n := s.Env; n != nil; n = n.Next {
		if n.Dir != nil {
			h.Mark(gen, n.Dir)
		}
	}
	for _, a := range s.Args {
		h.Mark(gen, a)
	}
	for _, tf := range s.Throws {
		if tf.Hit {
			h.Mark(gen, tf.Caught)
		}
	}
}

// End unregisters the coroutine from its heap's root-source list; its
// locals and environment become eligible for collection on the next
// cycle.
func (s *State) End() {
	if s.done {
		return
	}
	s.done = true
	s.Heap.Unregister(s)
}

// PushThrow pushes a new, not-yet-hit catch frame.
func (s *State) PushThrow() *ThrowFrame {
	tf := &ThrowFrame{}
	s.Throws = append(s.Throws, tf)
	return tf
}

// PopThrow removes the top catch frame (normally the one PushThrow just
// returned, once its guarded evaluation has finished one way or
// another).
func (s *State) PopThrow() {
	if n := len(s.Throws); n > 0 {
		s.Throws = s.Throws[:n-1]
	}
}

// CoroutineID implements value.CoroutineHandle, letting a *State be
// wrapped directly as a value.Coroutine (spec §4.8's "coroutine" kind) so
// script code can hold, compare and print a reference to the coroutine
// it is running in or one it spawned.
func (s *State) CoroutineID() string { return s.ID }
