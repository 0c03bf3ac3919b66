// Package logging implements the matching engine's Logger strategies:
// a no-op baseline, three synchronous writers, and three async writers
// that trade hot-path allocation for throughput in different ways. Every
// writing strategy emits the same one-line-per-event format.
package logging

import (
	"fmt"
	"time"

	"matchbook/internal/common"
)

const timeLayout = "2006-01-02 15:04:05.000"

func timestamp(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.Local().Format(timeLayout)
}

func formatSubmission(o common.Order) string {
	return fmt.Sprintf(
		"%s | ORDER RECEIVED: id=%s, instrument=%s, side=%v, type=%v, qty=%v, price=%v\n",
		timestamp(o.Timestamp), o.ID, o.Instrument, o.Side, o.Type, o.OriginalQuantity, o.LimitPriceOrZero(),
	)
}

func formatTrade(t common.Trade) string {
	return fmt.Sprintf(
		"%s | TRADE EXECUTED: id=%s, instrument=%s, price=%v, qty=%v, taker_side=%v, buy_order_id=%s, sell_order_id=%s\n",
		timestamp(t.Timestamp), t.ID, t.Instrument, t.Price, t.Quantity, t.TakerSide, t.BuyOrderID, t.SellOrderID,
	)
}

func formatCancel(orderID string, success bool) string {
	outcome := "successfully cancelled"
	if !success {
		outcome = "already filled"
	}
	return fmt.Sprintf("%s | ORDER CANCEL: id=%s (%s)\n", timestamp(time.Time{}), orderID, outcome)
}

func formatFilled(o common.Order) string {
	return fmt.Sprintf(
		"%s | ORDER FILLED: id=%s, instrument=%s, type=%v, final_status=%v, quantity=%v, quantity_filled=%v\n",
		timestamp(o.Timestamp), o.ID, o.Instrument, o.Type, o.Status, o.OriginalQuantity, o.OriginalQuantity.Sub(o.RemainingQuantity),
	)
}
