package engine

import (
	"testing"

	"matchbook/internal/common"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Helpers ----------------------------------------------------------

func dec(s string) common.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func limitOrder(id string, side common.Side, price, qty string) common.Order {
	p := dec(price)
	return common.Order{
		ID:                id,
		Instrument:        "X",
		Side:              side,
		Type:              common.LimitOrder,
		Status:            common.New,
		LimitPrice:        &p,
		OriginalQuantity:  dec(qty),
		RemainingQuantity: dec(qty),
	}
}

func marketOrder(id string, side common.Side, qty string) common.Order {
	return common.Order{
		ID:                id,
		Instrument:        "X",
		Side:              side,
		Type:              common.MarketOrder,
		Status:            common.New,
		OriginalQuantity:  dec(qty),
		RemainingQuantity: dec(qty),
	}
}

// pv builds a PriceVolume for snapshot comparison.
func pv(price, volume string) PriceVolume {
	return PriceVolume{Price: dec(price), Volume: dec(volume)}
}

// --- S1 — resting limit -------------------------------------------------

func TestS1_RestingLimit(t *testing.T) {
	book := NewOrderBook("X")

	result := book.Submit(limitOrder("a", common.Buy, "100", "10"))
	assert.Empty(t, result.Trades)

	snap := book.Snapshot()
	assert.Equal(t, []PriceVolume{pv("100", "10")}, snap.Bids)
	assert.Empty(t, snap.Asks)
}

// --- S2 — exact cross -----------------------------------------------------

func TestS2_ExactCross(t *testing.T) {
	book := NewOrderBook("X")
	book.Submit(limitOrder("a", common.Buy, "100", "10"))

	result := book.Submit(limitOrder("b", common.Sell, "100", "10"))

	require.Len(t, result.Trades, 1)
	trade := result.Trades[0]
	assert.True(t, trade.Price.Equal(dec("100")))
	assert.True(t, trade.Quantity.Equal(dec("10")))
	assert.Equal(t, common.Sell, trade.TakerSide)

	snap := book.Snapshot()
	assert.Empty(t, snap.Bids)
	assert.Empty(t, snap.Asks)
}

// --- S3 — partial and rest --------------------------------------------

func TestS3_PartialAndRest(t *testing.T) {
	book := NewOrderBook("X")
	book.Submit(limitOrder("a", common.Sell, "200", "10"))

	result := book.Submit(limitOrder("b", common.Buy, "200", "3"))

	require.Len(t, result.Trades, 1)
	assert.True(t, result.Trades[0].Quantity.Equal(dec("3")))

	snap := book.Snapshot()
	assert.Equal(t, []PriceVolume{pv("200", "7")}, snap.Asks)
	assert.Empty(t, snap.Bids)
}

// --- S4 — walk the book -------------------------------------------------

func TestS4_WalkTheBook(t *testing.T) {
	book := NewOrderBook("X")
	book.Submit(limitOrder("a", common.Sell, "102", "10"))
	book.Submit(limitOrder("b", common.Sell, "101", "5"))

	result := book.Submit(limitOrder("c", common.Buy, "103", "12"))

	require.Len(t, result.Trades, 2)
	assert.True(t, result.Trades[0].Price.Equal(dec("101")))
	assert.True(t, result.Trades[0].Quantity.Equal(dec("5")))
	assert.True(t, result.Trades[1].Price.Equal(dec("102")))
	assert.True(t, result.Trades[1].Quantity.Equal(dec("7")))

	snap := book.Snapshot()
	assert.Equal(t, []PriceVolume{pv("102", "3")}, snap.Asks)
	assert.Empty(t, snap.Bids)
}

// --- S5 — price-time priority -------------------------------------------

func TestS5_PriceTimePriority(t *testing.T) {
	book := NewOrderBook("X")
	book.Submit(limitOrder("A", common.Sell, "100", "5"))
	book.Submit(limitOrder("B", common.Sell, "100", "5"))

	result := book.Submit(limitOrder("c", common.Buy, "100", "5"))

	require.Len(t, result.Trades, 1)
	assert.Equal(t, "A", result.Trades[0].SellOrderID)
	assert.True(t, result.Trades[0].Price.Equal(dec("100")))
	assert.True(t, result.Trades[0].Quantity.Equal(dec("5")))

	snap := book.Snapshot()
	assert.Equal(t, []PriceVolume{pv("100", "5")}, snap.Asks)
}

// --- S6 — insufficient-liquidity market ----------------------------------

func TestS6_InsufficientLiquidityMarket(t *testing.T) {
	book := NewOrderBook("X")
	book.Submit(limitOrder("a", common.Sell, "100", "5"))

	result := book.Submit(marketOrder("b", common.Buy, "10"))

	require.Len(t, result.Trades, 1)
	assert.True(t, result.Trades[0].Quantity.Equal(dec("5")))
	assert.Equal(t, common.PartiallyFilled, result.Incoming.Status)
	assert.True(t, result.Incoming.RemainingQuantity.Equal(dec("5")))

	snap := book.Snapshot()
	assert.Empty(t, snap.Bids)
	assert.Empty(t, snap.Asks)
}

// --- Invariant: no empty price level survives ----------------------------

func TestInvariant_NoEmptyPriceLevelSurvives(t *testing.T) {
	book := NewOrderBook("X")
	book.Submit(limitOrder("a", common.Sell, "100", "5"))
	book.Submit(limitOrder("b", common.Buy, "100", "5"))

	assert.Equal(t, 0, len(book.Bids()))
	assert.Equal(t, 0, len(book.Asks()))
}

// --- Invariant: cancel round trip leaves the book untouched --------------

func TestInvariant_CancelRoundTrip(t *testing.T) {
	book := NewOrderBook("X")
	book.Submit(limitOrder("a", common.Buy, "99", "10"))
	before := book.Snapshot()

	book.Submit(limitOrder("b", common.Buy, "50", "3"))
	_, err := book.Cancel("b")
	require.NoError(t, err)

	after := book.Snapshot()
	assert.Equal(t, before, after)
}

// --- Invariant: cancel of an unknown id is reported, not fatal -----------

func TestInvariant_CancelUnknownID(t *testing.T) {
	book := NewOrderBook("X")
	_, err := book.Cancel("nonexistent")
	var notFound *OrderNotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, "nonexistent", notFound.OrderID)
}

// --- Invariant: trade quantities never exceed original quantity ---------

func TestInvariant_TradeQuantityNeverExceedsOriginal(t *testing.T) {
	book := NewOrderBook("X")
	book.Submit(limitOrder("a", common.Sell, "100", "3"))
	book.Submit(limitOrder("b", common.Sell, "100", "4"))

	result := book.Submit(limitOrder("c", common.Buy, "100", "100"))

	var total common.Decimal
	for _, trade := range result.Trades {
		total = total.Add(trade.Quantity)
	}
	assert.True(t, total.Equal(dec("7")))
	assert.Equal(t, common.PartiallyFilled, result.Incoming.Status)
}

// --- Invariant: market order remainder never rests -----------------------

func TestInvariant_MarketRemainderNeverRests(t *testing.T) {
	book := NewOrderBook("X")
	result := book.Submit(marketOrder("a", common.Buy, "10"))

	assert.Empty(t, result.Trades)
	assert.Equal(t, common.New, result.Incoming.Status)
	snap := book.Snapshot()
	assert.Empty(t, snap.Bids)
	assert.Empty(t, snap.Asks)
}
