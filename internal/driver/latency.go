package driver

import (
	"fmt"
	"strings"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// latencyHistogramLow/High/Sig bound the nanosecond range and precision
// tracked per spec.md §6 ("mean, median, p99, p99.9"). 10 minutes is far
// beyond any single operation's expected latency but costs nothing extra
// in a log-linear histogram.
const (
	latencyHistogramLow  = 1
	latencyHistogramHigh = int64(10 * time.Minute)
	latencyHistogramSig  = 3
)

// LatencyReport is a snapshot of one histogram's percentiles, in the
// same time unit the caller recorded values in (nanoseconds here).
type LatencyReport struct {
	Label  string
	Count  int64
	Mean   time.Duration
	Median time.Duration
	P99    time.Duration
	P999   time.Duration
	Max    time.Duration
}

func newHistogram() *hdrhistogram.Histogram {
	return hdrhistogram.New(latencyHistogramLow, latencyHistogramHigh, latencyHistogramSig)
}

func reportFor(label string, h *hdrhistogram.Histogram) LatencyReport {
	return LatencyReport{
		Label:  label,
		Count:  h.TotalCount(),
		Mean:   time.Duration(h.Mean()),
		Median: time.Duration(h.ValueAtQuantile(50)),
		P99:    time.Duration(h.ValueAtQuantile(99)),
		P999:   time.Duration(h.ValueAtQuantile(99.9)),
		Max:    time.Duration(h.Max()),
	}
}

func (r LatencyReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-12s n=%-8d mean=%-12s median=%-12s p99=%-12s p99.9=%-12s max=%s\n",
		r.Label, r.Count, r.Mean, r.Median, r.P99, r.P999, r.Max)
	return b.String()
}
