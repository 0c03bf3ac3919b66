// Package common holds the value objects shared by the matching engine
// and the logging fan-out: orders, trades, and the small enums that tag
// them. Nothing here mutates once constructed except via the engine.
package common

import "github.com/shopspring/decimal"

// Decimal is the exact fixed-point type used for every price and quantity
// in the system. Binary floats are never used: prices are btree keys and
// trade prices must compare exactly against input ticks.
type Decimal = decimal.Decimal

// Side is which side of the book an order rests or trades on.
type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "Buy"
	case Sell:
		return "Sell"
	default:
		return "Unknown"
	}
}

// OrderType distinguishes resting limit orders from sweep-and-discard
// market orders.
type OrderType int

const (
	// LimitOrder may rest on the book until filled or cancelled.
	LimitOrder OrderType = iota
	// MarketOrder crosses at any available price; any unfilled remainder
	// is discarded rather than resting.
	MarketOrder
)

func (t OrderType) String() string {
	switch t {
	case LimitOrder:
		return "Limit"
	case MarketOrder:
		return "Market"
	default:
		return "Unknown"
	}
}

// OrderStatus tracks an order's lifecycle. Spelled "Cancelled" (double-l)
// throughout, resolving the source's inconsistent spelling.
type OrderStatus int

const (
	New OrderStatus = iota
	PartiallyFilled
	Filled
	Cancelled
)

func (s OrderStatus) String() string {
	switch s {
	case New:
		return "New"
	case PartiallyFilled:
		return "PartiallyFilled"
	case Filled:
		return "Filled"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}
