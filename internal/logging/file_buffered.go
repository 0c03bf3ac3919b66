package logging

import (
	"bufio"
	"os"

	"matchbook/internal/common"
)

// FileBuffered writes every event synchronously through a bufio.Writer,
// flushing only on Finalize. This is the realistic synchronous floor:
// formatting and the buffered write both happen on the hot path, but the
// write rarely reaches the kernel.
type FileBuffered struct {
	file *os.File
	buf  *bufio.Writer
}

func NewFileBuffered(path string) (*FileBuffered, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &FileBuffered{file: f, buf: bufio.NewWriter(f)}, nil
}

func (l *FileBuffered) LogSubmission(o common.Order) error {
	_, err := l.buf.WriteString(formatSubmission(o))
	return err
}

func (l *FileBuffered) LogTrade(t common.Trade) error {
	_, err := l.buf.WriteString(formatTrade(t))
	return err
}

func (l *FileBuffered) LogCancel(orderID string, success bool) error {
	_, err := l.buf.WriteString(formatCancel(orderID, success))
	return err
}

func (l *FileBuffered) LogFilled(o common.Order) error {
	_, err := l.buf.WriteString(formatFilled(o))
	return err
}

func (l *FileBuffered) Finalize() error {
	flushErr := l.buf.Flush()
	closeErr := l.file.Close()
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}
