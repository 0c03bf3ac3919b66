package logging

import (
	"bufio"

	"matchbook/internal/common"
)

// asyncJob is an owning closure capturing one event's data by value; the
// writer thread runs it to format and write. One heap allocation per
// event on the producer (the closure itself), in exchange for being the
// simplest strategy to extend with a new event shape.
type asyncJob func(*bufio.Writer)

// AsyncClosure defers both formatting and writing to the background
// writer: the hot path only captures the event into a closure and
// enqueues it.
type AsyncClosure struct {
	writer *asyncWriter[asyncJob]
}

func NewAsyncClosure(path string) (*AsyncClosure, error) {
	w, err := newAsyncWriter(path, func(buf *bufio.Writer, job asyncJob) {
		job(buf)
	})
	if err != nil {
		return nil, err
	}
	return &AsyncClosure{writer: w}, nil
}

func (l *AsyncClosure) LogSubmission(o common.Order) error {
	l.writer.enqueue(func(buf *bufio.Writer) {
		_, _ = buf.WriteString(formatSubmission(o))
	})
	return nil
}

func (l *AsyncClosure) LogTrade(t common.Trade) error {
	l.writer.enqueue(func(buf *bufio.Writer) {
		_, _ = buf.WriteString(formatTrade(t))
	})
	return nil
}

func (l *AsyncClosure) LogCancel(orderID string, success bool) error {
	l.writer.enqueue(func(buf *bufio.Writer) {
		_, _ = buf.WriteString(formatCancel(orderID, success))
	})
	return nil
}

func (l *AsyncClosure) LogFilled(o common.Order) error {
	l.writer.enqueue(func(buf *bufio.Writer) {
		_, _ = buf.WriteString(formatFilled(o))
	})
	return nil
}

func (l *AsyncClosure) Finalize() error {
	return l.writer.finalize()
}
