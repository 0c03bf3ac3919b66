package common

import (
	"fmt"
	"time"
)

// Trade is a write-once execution record. buy_order_id/sell_order_id are
// assigned by side, not by taker/maker — TakerSide carries the aggressor.
type Trade struct {
	ID          string // UUID
	Instrument  string
	Price       Decimal // always the maker's resting price
	Quantity    Decimal
	BuyOrderID  string
	SellOrderID string
	TakerSide   Side
	Timestamp   time.Time
}

func (t Trade) String() string {
	return fmt.Sprintf(
		`ID:          %s
Instrument:  %s
Price:       %v
Quantity:    %v
BuyOrderID:  %s
SellOrderID: %s
TakerSide:   %v
Timestamp:   %v`,
		t.ID,
		t.Instrument,
		t.Price,
		t.Quantity,
		t.BuyOrderID,
		t.SellOrderID,
		t.TakerSide,
		t.Timestamp.Format(time.RFC3339Nano),
	)
}
