package engine

import "matchbook/internal/common"

// Logger is the pluggable sink for domain events. The engine invokes it
// synchronously from the hot path and never concurrently with itself; a
// Logger implementation must not observe partial or inconsistent state.
//
// Invocation order per Submit: LogTrade for every produced trade (match
// order), then LogFilled for every resting order fully consumed (maker
// consumption order), then LogFilled for the incoming order iff it ended
// Filled or was a MarketOrder. LogSubmission is called once, at
// acceptance, before matching begins.
type Logger interface {
	LogSubmission(order common.Order) error
	LogTrade(trade common.Trade) error
	LogCancel(orderID string, success bool) error
	LogFilled(order common.Order) error
	Finalize() error
}
