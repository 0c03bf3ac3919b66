package logging

import (
	"bufio"

	"matchbook/internal/common"
)

// AsyncString formats on the hot path (so formatting cost is not
// offloaded) but hands the finished line to a background writer, so only
// the write itself moves off the hot path.
type AsyncString struct {
	writer *asyncWriter[string]
}

func NewAsyncString(path string) (*AsyncString, error) {
	w, err := newAsyncWriter(path, func(buf *bufio.Writer, line string) {
		_, _ = buf.WriteString(line) // writer-thread I/O errors are dropped
	})
	if err != nil {
		return nil, err
	}
	return &AsyncString{writer: w}, nil
}

func (l *AsyncString) LogSubmission(o common.Order) error {
	l.writer.enqueue(formatSubmission(o))
	return nil
}

func (l *AsyncString) LogTrade(t common.Trade) error {
	l.writer.enqueue(formatTrade(t))
	return nil
}

func (l *AsyncString) LogCancel(orderID string, success bool) error {
	l.writer.enqueue(formatCancel(orderID, success))
	return nil
}

func (l *AsyncString) LogFilled(o common.Order) error {
	l.writer.enqueue(formatFilled(o))
	return nil
}

func (l *AsyncString) Finalize() error {
	return l.writer.finalize()
}
