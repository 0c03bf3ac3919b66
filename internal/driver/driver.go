package driver

import (
	"fmt"
	"time"

	"matchbook/internal/common"
	"matchbook/internal/engine"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/rs/zerolog/log"
)

// Driver replays a parsed operation stream against an Engine, recording
// per-operation processing and logging latency separately so the two
// can be compared the way spec.md §4.6/§6 calls for.
type Driver struct {
	engine *engine.Engine

	processing *hdrhistogram.Histogram
	logging    *hdrhistogram.Histogram

	trades   int
	cancels  int
	rejected int
}

// New wraps engine for replay. The caller is responsible for having
// already called engine.RegisterMarket for every instrument the
// operation stream references.
func New(e *engine.Engine) *Driver {
	return &Driver{
		engine:     e,
		processing: newHistogram(),
		logging:    newHistogram(),
	}
}

// Replay runs every operation in order against the engine. A rejected
// operation (unknown market, bad price, unknown cancel target) is
// logged at Warn level and counted, not treated as fatal — a workload
// generator's CANCEL rows can legitimately race an already-filled
// order in a live system, and spec.md models that as routine.
func (d *Driver) Replay(ops []Operation) {
	for _, op := range ops {
		start := time.Now()
		var logTime time.Duration
		var err error

		switch op.Kind {
		case NewOp:
			logTime, err = d.submit(op)
		case CancelOp:
			logTime, err = d.cancel(op)
		}

		total := time.Since(start)
		processing := total - logTime
		if processing < 0 {
			processing = 0
		}

		d.processing.RecordValue(int64(processing))
		d.logging.RecordValue(int64(logTime))

		if err != nil {
			d.rejected++
			log.Warn().Err(err).Int("line", op.Line).Msg("operation rejected")
		}
	}
}

func (d *Driver) submit(op Operation) (time.Duration, error) {
	order := common.Order{
		ID:               op.OrderID,
		Instrument:       op.Instrument,
		Side:             op.Side,
		Type:             op.Type,
		LimitPrice:       op.Price,
		OriginalQuantity: op.Quantity,
	}
	trades, logTime, err := d.engine.Submit(order)
	d.trades += len(trades)
	return logTime, err
}

func (d *Driver) cancel(op Operation) (time.Duration, error) {
	_, logTime, err := d.engine.Cancel(op.CancelTarget, op.Instrument)
	if err == nil {
		d.cancels++
	}
	return logTime, err
}

// Summary is the final report handed to the CLI: counts plus the two
// latency breakdowns.
type Summary struct {
	Operations int
	Trades     int
	Cancels    int
	Rejected   int
	Processing LatencyReport
	Logging    LatencyReport
}

func (d *Driver) Summary(opCount int) Summary {
	return Summary{
		Operations: opCount,
		Trades:     d.trades,
		Cancels:    d.cancels,
		Rejected:   d.rejected,
		Processing: reportFor("processing", d.processing),
		Logging:    reportFor("logging", d.logging),
	}
}

func (s Summary) String() string {
	return fmt.Sprintf(
		"operations=%d trades=%d cancels=%d rejected=%d\n%s%s",
		s.Operations, s.Trades, s.Cancels, s.Rejected, s.Processing, s.Logging,
	)
}
