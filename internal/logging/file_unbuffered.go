package logging

import (
	"os"

	"matchbook/internal/common"
)

// FileUnbuffered writes every event to disk synchronously with a plain
// per-call write — no buffering, so it is the worst-case I/O baseline:
// one syscall per logged event on the hot path.
type FileUnbuffered struct {
	file *os.File
}

func NewFileUnbuffered(path string) (*FileUnbuffered, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &FileUnbuffered{file: f}, nil
}

func (l *FileUnbuffered) LogSubmission(o common.Order) error {
	_, err := l.file.WriteString(formatSubmission(o))
	return err
}

func (l *FileUnbuffered) LogTrade(t common.Trade) error {
	_, err := l.file.WriteString(formatTrade(t))
	return err
}

func (l *FileUnbuffered) LogCancel(orderID string, success bool) error {
	_, err := l.file.WriteString(formatCancel(orderID, success))
	return err
}

func (l *FileUnbuffered) LogFilled(o common.Order) error {
	_, err := l.file.WriteString(formatFilled(o))
	return err
}

func (l *FileUnbuffered) Finalize() error {
	return l.file.Close()
}
