// Package workload synthesizes the operations.csv input spec.md §6
// describes: a configurable mix of NEW-LIMIT, NEW-MARKET, and CANCEL
// rows around a random-walking mid-price, written with pre-assigned
// order ids so the driver never has to invent one.
package workload

import (
	"math/rand"

	"matchbook/internal/common"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Config controls the shape of a generated operation stream.
type Config struct {
	Instrument string

	// Count is the total number of rows to generate, including WarmUp.
	Count int
	// WarmUp is a prefix of LIMIT-only rows (no CANCEL, no MARKET) used
	// to seed the book with resting liquidity before the mixed phase.
	WarmUp int

	MidPrice common.Decimal
	Spread   common.Decimal
	TickSize common.Decimal
	MinQty   common.Decimal
	MaxQty   common.Decimal

	// Weights for the mixed phase; CancelWeight is ignored during WarmUp.
	LimitWeight  float64
	MarketWeight float64
	CancelWeight float64

	Seed int64
}

// Row is one generated operation, already shaped the way csv.go's
// header expects it to be written.
type Row struct {
	Operation     string
	Instrument    string
	Side          string
	OrderType     string
	Quantity      common.Decimal
	Price         *common.Decimal
	OrderOrCancel string
}

// Generate produces cfg.Count rows deterministically from cfg.Seed.
func Generate(cfg Config) []Row {
	rng := rand.New(rand.NewSource(cfg.Seed))
	rows := make([]Row, 0, cfg.Count)

	mid := cfg.MidPrice
	var openLimitIDs []string

	totalWeight := cfg.LimitWeight + cfg.MarketWeight + cfg.CancelWeight

	for i := 0; i < cfg.Count; i++ {
		warmingUp := i < cfg.WarmUp
		mid = walk(mid, cfg.TickSize, rng)

		var kind string
		if warmingUp || len(openLimitIDs) == 0 {
			kind = "LIMIT"
		} else {
			kind = pickKind(rng, totalWeight, cfg.LimitWeight, cfg.MarketWeight)
		}

		switch kind {
		case "CANCEL":
			target := openLimitIDs[rng.Intn(len(openLimitIDs))]
			rows = append(rows, Row{Operation: "CANCEL", Instrument: cfg.Instrument, OrderOrCancel: target})
			openLimitIDs = remove(openLimitIDs, target)
		case "MARKET":
			rows = append(rows, newOrderRow(cfg, rng, mid, "MARKET", nil))
		default:
			price := limitPrice(mid, cfg.Spread, cfg.TickSize, rng)
			row := newOrderRow(cfg, rng, mid, "LIMIT", &price)
			rows = append(rows, row)
			openLimitIDs = append(openLimitIDs, row.OrderOrCancel)
		}
	}
	return rows
}

func pickKind(rng *rand.Rand, total, limitW, marketW float64) string {
	r := rng.Float64() * total
	switch {
	case r < limitW:
		return "LIMIT"
	case r < limitW+marketW:
		return "MARKET"
	default:
		return "CANCEL"
	}
}

func newOrderRow(cfg Config, rng *rand.Rand, mid common.Decimal, orderType string, price *common.Decimal) Row {
	side := "BUY"
	if rng.Intn(2) == 1 {
		side = "SELL"
	}
	qty := randomQty(cfg.MinQty, cfg.MaxQty, rng)
	return Row{
		Operation:     "NEW",
		Instrument:    cfg.Instrument,
		Side:          side,
		OrderType:     orderType,
		Quantity:      qty,
		Price:         price,
		OrderOrCancel: uuid.Must(uuid.NewRandomFromReader(rng)).String(),
	}
}

// walk nudges mid by 0, +tick, or -tick, never going non-positive.
func walk(mid, tick common.Decimal, rng *rand.Rand) common.Decimal {
	switch rng.Intn(3) {
	case 0:
		next := mid.Sub(tick)
		if next.Sign() > 0 {
			return next
		}
		return mid
	case 1:
		return mid.Add(tick)
	default:
		return mid
	}
}

func limitPrice(mid, spread, tick common.Decimal, rng *rand.Rand) common.Decimal {
	maxTicks := spread.Div(tick).IntPart()
	if maxTicks < 0 {
		maxTicks = 0
	}
	ticks := rng.Int63n(maxTicks + 1)
	offset := tick.Mul(decimal.NewFromInt(ticks))
	if rng.Intn(2) == 0 {
		return mid.Sub(offset)
	}
	return mid.Add(offset)
}

func randomQty(min, max common.Decimal, rng *rand.Rand) common.Decimal {
	span := max.Sub(min)
	if span.Sign() <= 0 {
		return min
	}
	frac := rng.Float64()
	return min.Add(span.Mul(decimal.NewFromFloat(frac)))
}

func remove(ids []string, target string) []string {
	for i, id := range ids {
		if id == target {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
