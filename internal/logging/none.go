package logging

import "matchbook/internal/common"

// Noop discards every event. It exists to measure engine-only latency
// with zero logging overhead in the mix.
type Noop struct{}

func NewNoop() *Noop { return &Noop{} }

func (*Noop) LogSubmission(common.Order) error { return nil }
func (*Noop) LogTrade(common.Trade) error      { return nil }
func (*Noop) LogCancel(string, bool) error     { return nil }
func (*Noop) LogFilled(common.Order) error     { return nil }
func (*Noop) Finalize() error                  { return nil }
