// Command genworkload synthesizes an operations.csv workload for
// matchbook to replay.
package main

import (
	"fmt"
	"os"

	"matchbook/internal/workload"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func main() {
	var (
		out          string
		instrument   string
		count        int
		warmUp       int
		mid          float64
		spread       float64
		tick         float64
		minQty       float64
		maxQty       float64
		limitWeight  float64
		marketWeight float64
		cancelWeight float64
		seed         int64
	)

	root := &cobra.Command{
		Use:   "genworkload",
		Short: "Generate an operations.csv workload for matchbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := workload.Config{
				Instrument:   instrument,
				Count:        count,
				WarmUp:       warmUp,
				MidPrice:     decimal.NewFromFloat(mid),
				Spread:       decimal.NewFromFloat(spread),
				TickSize:     decimal.NewFromFloat(tick),
				MinQty:       decimal.NewFromFloat(minQty),
				MaxQty:       decimal.NewFromFloat(maxQty),
				LimitWeight:  limitWeight,
				MarketWeight: marketWeight,
				CancelWeight: cancelWeight,
				Seed:         seed,
			}
			rows := workload.Generate(cfg)
			if err := workload.WriteCSV(out, rows); err != nil {
				return err
			}
			fmt.Printf("wrote %d operations to %s\n", len(rows), out)
			return nil
		},
	}

	root.Flags().StringVar(&out, "out", "operations.csv", "output CSV path")
	root.Flags().StringVar(&instrument, "instrument", "ACME", "instrument symbol")
	root.Flags().IntVar(&count, "count", 10000, "total operations to generate")
	root.Flags().IntVar(&warmUp, "warmup", 200, "LIMIT-only warm-up prefix")
	root.Flags().Float64Var(&mid, "mid", 100.0, "starting mid price")
	root.Flags().Float64Var(&spread, "spread", 1.0, "max limit price offset from mid")
	root.Flags().Float64Var(&tick, "tick", 0.01, "tick size")
	root.Flags().Float64Var(&minQty, "min-qty", 1, "minimum order quantity")
	root.Flags().Float64Var(&maxQty, "max-qty", 100, "maximum order quantity")
	root.Flags().Float64Var(&limitWeight, "limit-weight", 0.6, "relative weight of NEW LIMIT rows")
	root.Flags().Float64Var(&marketWeight, "market-weight", 0.15, "relative weight of NEW MARKET rows")
	root.Flags().Float64Var(&cancelWeight, "cancel-weight", 0.25, "relative weight of CANCEL rows")
	root.Flags().Int64Var(&seed, "seed", 1, "PRNG seed, for reproducible workloads")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
