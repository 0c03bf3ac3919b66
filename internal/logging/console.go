package logging

import (
	"fmt"
	"os"

	"matchbook/internal/common"
)

// Console writes every event synchronously to stdout — the interactive
// debugging strategy. Both formatting and the blocking write happen on
// the hot path.
type Console struct{}

func NewConsole() *Console { return &Console{} }

func (*Console) LogSubmission(o common.Order) error {
	_, err := fmt.Fprint(os.Stdout, formatSubmission(o))
	return err
}

func (*Console) LogTrade(t common.Trade) error {
	_, err := fmt.Fprint(os.Stdout, formatTrade(t))
	return err
}

func (*Console) LogCancel(orderID string, success bool) error {
	_, err := fmt.Fprint(os.Stdout, formatCancel(orderID, success))
	return err
}

func (*Console) LogFilled(o common.Order) error {
	_, err := fmt.Fprint(os.Stdout, formatFilled(o))
	return err
}

func (*Console) Finalize() error { return nil }
