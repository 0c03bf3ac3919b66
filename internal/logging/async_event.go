package logging

import (
	"bufio"

	"matchbook/internal/common"
)

// AsyncEvent enqueues a flat TaggedEvent value — no per-event heap
// allocation for the union itself — and defers both formatting and
// writing to the background writer. This is the production-recommended
// strategy (spec.md §9 prefers it for minimal hot-path latency).
type AsyncEvent struct {
	writer *asyncWriter[TaggedEvent]
}

func NewAsyncEvent(path string) (*AsyncEvent, error) {
	w, err := newAsyncWriter(path, func(buf *bufio.Writer, ev TaggedEvent) {
		_, _ = buf.WriteString(ev.format())
	})
	if err != nil {
		return nil, err
	}
	return &AsyncEvent{writer: w}, nil
}

func (l *AsyncEvent) LogSubmission(o common.Order) error {
	l.writer.enqueue(TaggedEvent{Kind: KindSubmission, Order: o})
	return nil
}

func (l *AsyncEvent) LogTrade(t common.Trade) error {
	l.writer.enqueue(TaggedEvent{Kind: KindTrade, Trade: t})
	return nil
}

func (l *AsyncEvent) LogCancel(orderID string, success bool) error {
	l.writer.enqueue(TaggedEvent{Kind: KindCancel, CancelID: orderID, CancelSuccess: success})
	return nil
}

func (l *AsyncEvent) LogFilled(o common.Order) error {
	l.writer.enqueue(TaggedEvent{Kind: KindFilled, Order: o})
	return nil
}

func (l *AsyncEvent) Finalize() error {
	return l.writer.finalize()
}
