package engine

import (
	"time"

	"matchbook/internal/common"

	"github.com/google/uuid"
	"github.com/tidwall/btree"
)

// MatchResult carries everything Submit produced so the caller (Engine)
// can sequence logger calls in the exact order spec'd: trades first, then
// each fully-consumed resting order, then the incoming order's final
// state.
type MatchResult struct {
	Trades        []common.Trade
	FilledResting []common.Order
	Incoming      common.Order
}

// OrderBook is the per-instrument book: two price-ordered maps of
// PriceLevel plus an id index for O(1) resting-order lookup by id.
type OrderBook struct {
	Instrument string

	bids *btree.BTreeG[*PriceLevel] // best (highest) bid first
	asks *btree.BTreeG[*PriceLevel] // best (lowest) ask first

	index map[string]*common.Order
}

func NewOrderBook(instrument string) *OrderBook {
	bids := btree.NewBTreeG(func(a, b *PriceLevel) bool {
		return a.Price.GreaterThan(b.Price) // descending: best bid first
	})
	asks := btree.NewBTreeG(func(a, b *PriceLevel) bool {
		return a.Price.LessThan(b.Price) // ascending: best ask first
	})
	return &OrderBook{
		Instrument: instrument,
		bids:       bids,
		asks:       asks,
		index:      make(map[string]*common.Order),
	}
}

// Bids returns price levels best-first (descending price).
func (b *OrderBook) Bids() []*PriceLevel { return b.bids.Items() }

// Asks returns price levels best-first (ascending price).
func (b *OrderBook) Asks() []*PriceLevel { return b.asks.Items() }

// Submit attempts to match the incoming order against the opposite side,
// then rests any unfilled LIMIT remainder. MARKET remainders are always
// discarded. The caller (Engine) owns giving the order its ID/Timestamp
// before calling Submit.
func (b *OrderBook) Submit(order common.Order) MatchResult {
	incoming := order

	var resting *btree.BTreeG[*PriceLevel]
	if incoming.Side == common.Buy {
		resting = b.asks
	} else {
		resting = b.bids
	}

	var trades []common.Trade
	var filled []common.Order

	for incoming.RemainingQuantity.Sign() > 0 {
		level, ok := resting.MinMut()
		if !ok || !crosses(incoming, level.Price) {
			break
		}

		for len(level.Orders) > 0 && incoming.RemainingQuantity.Sign() > 0 {
			maker := level.Orders[0]

			tradeQty := incoming.RemainingQuantity
			if maker.RemainingQuantity.LessThan(tradeQty) {
				tradeQty = maker.RemainingQuantity
			}

			incoming.RemainingQuantity = incoming.RemainingQuantity.Sub(tradeQty)
			maker.RemainingQuantity = maker.RemainingQuantity.Sub(tradeQty)
			incoming.Status = statusFor(incoming.RemainingQuantity, incoming.OriginalQuantity)
			maker.Status = statusFor(maker.RemainingQuantity, maker.OriginalQuantity)

			trades = append(trades, buildTrade(incoming, *maker, level.Price, tradeQty))

			if maker.RemainingQuantity.Sign() == 0 {
				level.Orders = level.Orders[1:]
				delete(b.index, maker.ID)
				filled = append(filled, *maker)
			}
		}

		if len(level.Orders) == 0 {
			resting.Delete(level)
		}
	}

	if incoming.Type == common.LimitOrder && incoming.RemainingQuantity.Sign() > 0 {
		b.rest(incoming)
	}

	return MatchResult{Trades: trades, FilledResting: filled, Incoming: incoming}
}

// rest appends a LIMIT order's unfilled remainder to the tail of its
// (side, price) level, creating the level if this is the first order at
// that price.
func (b *OrderBook) rest(order common.Order) {
	var levels *btree.BTreeG[*PriceLevel]
	if order.Side == common.Buy {
		levels = b.bids
	} else {
		levels = b.asks
	}

	o := order
	level, ok := levels.GetMut(&PriceLevel{Price: order.LimitPriceOrZero()})
	if ok {
		level.Orders = append(level.Orders, &o)
	} else {
		levels.Set(&PriceLevel{
			Price:  order.LimitPriceOrZero(),
			Orders: []*common.Order{&o},
		})
	}
	b.index[o.ID] = &o
}

// Cancel removes a resting order by id. Returns OrderNotFoundError if the
// id is unknown to this book — either it never existed here or it was
// already matched or cancelled out.
func (b *OrderBook) Cancel(orderID string) (common.Order, error) {
	order, ok := b.index[orderID]
	if !ok {
		return common.Order{}, &OrderNotFoundError{OrderID: orderID}
	}
	delete(b.index, orderID)

	var levels *btree.BTreeG[*PriceLevel]
	if order.Side == common.Buy {
		levels = b.bids
	} else {
		levels = b.asks
	}

	level, ok := levels.GetMut(&PriceLevel{Price: order.LimitPriceOrZero()})
	if ok {
		level.removeByID(orderID)
		if len(level.Orders) == 0 {
			levels.Delete(level)
		}
	}

	cancelled := *order
	cancelled.Status = common.Cancelled
	return cancelled, nil
}

// crosses reports whether a price level at `price` is marketable against
// the incoming order: always for MARKET, and at least as good as the
// limit price for LIMIT.
func crosses(incoming common.Order, price common.Decimal) bool {
	if incoming.Type == common.MarketOrder {
		return true
	}
	limit := incoming.LimitPriceOrZero()
	if incoming.Side == common.Buy {
		return price.LessThanOrEqual(limit)
	}
	return price.GreaterThanOrEqual(limit)
}

func statusFor(remaining, original common.Decimal) common.OrderStatus {
	if remaining.Sign() == 0 {
		return common.Filled
	}
	if remaining.LessThan(original) {
		return common.PartiallyFilled
	}
	return common.New
}

func buildTrade(incoming, maker common.Order, price common.Decimal, qty common.Decimal) common.Trade {
	buyID, sellID := incoming.ID, maker.ID
	if incoming.Side == common.Sell {
		buyID, sellID = maker.ID, incoming.ID
	}
	return common.Trade{
		ID:          uuid.NewString(),
		Instrument:  incoming.Instrument,
		Price:       price,
		Quantity:    qty,
		BuyOrderID:  buyID,
		SellOrderID: sellID,
		TakerSide:   incoming.Side,
		Timestamp:   time.Now(),
	}
}
