package logging

import (
	"bufio"
	"os"

	tomb "gopkg.in/tomb.v2"
)

// asyncQueueSize stands in for spec.md's "unbounded" SPSC queue: a
// buffer this generous means the producer never observes backpressure
// under any realistic replay, so the enqueue cost stays the "rare,
// effectively non-blocking" wait spec.md describes rather than a real
// bound.
const asyncQueueSize = 1 << 16

// asyncWriter drives a single dedicated background goroutine that drains
// a channel of T and hands each item to consume, until finalize closes
// the channel and the writer drains the remainder and exits. Modeled on
// the teacher's WorkerPool/tomb.Tomb idiom (internal/worker.go,
// internal/net/server.go in the reference tree), narrowed from a pool to
// exactly one writer since the engine never needs more than one.
type asyncWriter[T any] struct {
	queue chan T
	t     tomb.Tomb
	file  *os.File
	buf   *bufio.Writer
}

func newAsyncWriter[T any](path string, consume func(*bufio.Writer, T)) (*asyncWriter[T], error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := &asyncWriter[T]{
		queue: make(chan T, asyncQueueSize),
		file:  f,
		buf:   bufio.NewWriter(f),
	}
	w.t.Go(func() error {
		for item := range w.queue {
			consume(w.buf, item)
		}
		return nil
	})
	return w, nil
}

// enqueue hands an item to the writer. The hot-path cost is this single
// channel send; no lock is contended with the writer beyond the
// channel's own synchronization.
func (w *asyncWriter[T]) enqueue(item T) {
	w.queue <- item
}

// finalize signals end-of-stream, waits for the writer to drain and
// exit, then flushes and closes the file. Dropping an asyncWriter with
// outstanding messages without calling finalize would lose them — this
// must be called exactly once, at shutdown.
func (w *asyncWriter[T]) finalize() error {
	close(w.queue)
	_ = w.t.Wait() // the writer goroutine never returns a non-nil error

	flushErr := w.buf.Flush()
	closeErr := w.file.Close()
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}
