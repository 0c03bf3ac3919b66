package engine

import "matchbook/internal/common"

// PriceLevel is the FIFO queue of orders resting at a single (side, price).
// The head (index 0) is next to match; new resting orders are appended to
// the tail. An empty PriceLevel is never kept in a book's price map — the
// map entry is removed the instant the queue empties.
type PriceLevel struct {
	Price  common.Decimal
	Orders []*common.Order
}

// TotalRemaining sums the remaining quantity of every order resting at
// this level — the volume figure shown in a book snapshot.
func (l *PriceLevel) TotalRemaining() common.Decimal {
	total := common.Decimal{}
	for _, o := range l.Orders {
		total = total.Add(o.RemainingQuantity)
	}
	return total
}

// removeByID scrubs an order out of the level by id, preserving the
// relative order of the remaining orders (FIFO is untouched by a
// cancellation elsewhere in the queue).
func (l *PriceLevel) removeByID(id string) bool {
	for i, o := range l.Orders {
		if o.ID == id {
			l.Orders = append(l.Orders[:i], l.Orders[i+1:]...)
			return true
		}
	}
	return false
}
