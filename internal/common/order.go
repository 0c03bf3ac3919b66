package common

import (
	"fmt"
	"time"
)

// Order is the exchange's record of a single limit or market order. It is
// immutable by convention: the engine and order book never hand out a
// pointer to a resting order to anything outside themselves, so every
// copy in flight (driver, logger) is a snapshot.
type Order struct {
	ID                string    // UUID, pre-assigned by the caller
	Instrument        string    // Symbol this order is routed to
	Side              Side      //
	Type              OrderType //
	Status            OrderStatus
	LimitPrice        *Decimal  // nil iff Type == MarketOrder
	OriginalQuantity  Decimal   // immutable
	RemainingQuantity Decimal   // monotonically non-increasing
	Timestamp         time.Time
}

// LimitPriceOrZero returns the order's limit price, or the zero decimal
// for market orders — used by the hot-path log line formatter, which
// always prints a price field.
func (o Order) LimitPriceOrZero() Decimal {
	if o.LimitPrice == nil {
		return Decimal{}
	}
	return *o.LimitPrice
}

func (o Order) String() string {
	return fmt.Sprintf(
		`ID:                %s
Instrument:        %s
Side:               %v
Type:               %v
Status:             %v
LimitPrice:         %v
OriginalQuantity:   %v
RemainingQuantity:  %v
Timestamp:          %v`,
		o.ID,
		o.Instrument,
		o.Side,
		o.Type,
		o.Status,
		o.LimitPriceOrZero(),
		o.OriginalQuantity,
		o.RemainingQuantity,
		o.Timestamp.Format(time.RFC3339Nano),
	)
}
