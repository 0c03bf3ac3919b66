package engine

import "matchbook/internal/common"

// PriceVolume is one level of an aggregated book snapshot: a price and
// the summed remaining quantity of every order resting there.
type PriceVolume struct {
	Price  common.Decimal
	Volume common.Decimal
}

// BookView is a read-only, aggregated view of one instrument's book:
// bids best-first (descending price), asks best-first (ascending price).
type BookView struct {
	Instrument string
	Bids       []PriceVolume
	Asks       []PriceVolume
}

// Snapshot aggregates an order book's resting liquidity into a BookView.
// Levels with zero summed volume are omitted defensively — the
// invariants guarantee this never happens, but a reader should never see
// a degenerate empty level either way.
func (b *OrderBook) Snapshot() BookView {
	view := BookView{Instrument: b.Instrument}
	for _, level := range b.Bids() {
		if vol := level.TotalRemaining(); vol.Sign() > 0 {
			view.Bids = append(view.Bids, PriceVolume{Price: level.Price, Volume: vol})
		}
	}
	for _, level := range b.Asks() {
		if vol := level.TotalRemaining(); vol.Sign() > 0 {
			view.Asks = append(view.Asks, PriceVolume{Price: level.Price, Volume: vol})
		}
	}
	return view
}
