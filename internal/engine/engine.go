// Package engine implements the matching engine: a multiplexer across
// per-instrument order books, plus the order books themselves. It is the
// only place in the module that mutates book state, and it is the sole
// caller of the pluggable Logger.
package engine

import (
	"time"

	"matchbook/internal/common"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Engine routes NEW/CANCEL operations to the book registered for an
// order's instrument. It performs no matching itself — that is the
// OrderBook's job — and no input validation beyond price/type
// consistency.
type Engine struct {
	books  map[string]*OrderBook
	logger Logger
}

// New constructs an Engine. logger may be a no-op implementation; it is
// never nil in practice since every strategy in internal/logging
// implements the interface, including the baseline.
func New(logger Logger) *Engine {
	return &Engine{
		books:  make(map[string]*OrderBook),
		logger: logger,
	}
}

// RegisterMarket idempotently creates an empty book for symbol. A second
// call for an already-registered symbol is a no-op: spec.md leaves
// overwrite semantics unspecified, and silently keeping the existing
// book (rather than discarding its resting liquidity) is the safer of
// the two readings.
func (e *Engine) RegisterMarket(symbol string) {
	if _, ok := e.books[symbol]; ok {
		return
	}
	e.books[symbol] = NewOrderBook(symbol)
}

// Submit validates, routes, and matches a new order, then drives the
// logger in the required sequence. It returns the trades produced and
// the wall-clock time spent inside logger calls, so callers can split
// "processing time" from "logging time" without instrumenting the
// logger themselves.
func (e *Engine) Submit(order common.Order) ([]common.Trade, time.Duration, error) {
	if err := validatePrice(order); err != nil {
		return nil, 0, err
	}

	book, ok := e.books[order.Instrument]
	if !ok {
		return nil, 0, &MarketNotFoundError{Symbol: order.Instrument}
	}

	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.Timestamp.IsZero() {
		order.Timestamp = time.Now()
	}
	order.Status = common.New
	order.RemainingQuantity = order.OriginalQuantity

	var logTime time.Duration
	logTime += timeCall(func() error { return e.logger.LogSubmission(order) })

	result := book.Submit(order)

	for _, trade := range result.Trades {
		logTime += timeCall(func() error { return e.logger.LogTrade(trade) })
	}
	for _, filled := range result.FilledResting {
		logTime += timeCall(func() error { return e.logger.LogFilled(filled) })
	}
	if result.Incoming.Status == common.Filled || result.Incoming.Type == common.MarketOrder {
		logTime += timeCall(func() error { return e.logger.LogFilled(result.Incoming) })
	}

	return result.Trades, logTime, nil
}

// Cancel routes a cancel request to the book for symbol. An unregistered
// symbol returns MarketNotFoundError without any logger call; otherwise
// LogCancel is always invoked — success=false when the id is unknown to that book,
// which is not itself treated as an exchange-level failure (spec.md §7);
// the OrderNotFoundError returned here is for the driver's own
// bookkeeping and is recoverable.
func (e *Engine) Cancel(orderID, symbol string) (common.Order, time.Duration, error) {
	book, ok := e.books[symbol]
	if !ok {
		return common.Order{}, 0, &MarketNotFoundError{Symbol: symbol}
	}

	order, err := book.Cancel(orderID)

	var logTime time.Duration
	logTime += timeCall(func() error { return e.logger.LogCancel(orderID, err == nil) })

	if err != nil {
		return common.Order{}, logTime, err
	}
	return order, logTime, nil
}

// Snapshot returns a read-only aggregated view of symbol's book.
func (e *Engine) Snapshot(symbol string) (BookView, error) {
	book, ok := e.books[symbol]
	if !ok {
		return BookView{}, &MarketNotFoundError{Symbol: symbol}
	}
	return book.Snapshot(), nil
}

// Finalize shuts down the logger, flushing and joining any background
// writer. It must be called exactly once, after the driver is done
// submitting operations.
func (e *Engine) Finalize() error {
	return e.logger.Finalize()
}

func validatePrice(order common.Order) error {
	switch order.Type {
	case common.LimitOrder:
		if order.LimitPrice == nil {
			return ErrInvalidOrderPrice
		}
	case common.MarketOrder:
		if order.LimitPrice != nil {
			return ErrInvalidOrderPrice
		}
	}
	return nil
}

// timeCall measures a single logger invocation and logs any error at
// Error level — the logger is a pure observer with no authority over
// book state, so its failures never unwind a match or cancel.
func timeCall(f func() error) time.Duration {
	start := time.Now()
	if err := f(); err != nil {
		log.Error().Err(err).Msg("logger call failed")
	}
	return time.Since(start)
}
