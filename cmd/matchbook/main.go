// Command matchbook replays a CSV operation stream against the
// matching engine under a chosen logging strategy and reports
// processing/logging latency percentiles.
package main

import (
	"fmt"
	"os"
	"strings"

	"matchbook/internal/driver"
	"matchbook/internal/engine"
	"matchbook/internal/logging"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	csvPath string
	outDir  string
	symbols string
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	root := &cobra.Command{
		Use:   "matchbook <logging-strategy>",
		Short: "Replay an operations CSV against the matching engine",
		Long: fmt.Sprintf(
			"matchbook replays operations.csv against the matching engine under\n"+
				"the named logging strategy and reports latency percentiles.\n\n"+
				"Available strategies: %s",
			strings.Join(logging.Names(), ", "),
		),
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	root.Flags().StringVar(&csvPath, "csv", "operations.csv", "path to the operations CSV")
	root.Flags().StringVar(&outDir, "out", "output_logs", "output directory for writing strategies")
	root.Flags().StringVar(&symbols, "symbols", "", "comma-separated instruments to pre-register (default: inferred from CSV)")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	strategy := args[0]

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	ops, err := driver.ReadCSV(csvPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", csvPath, err)
	}

	logger, err := logging.New(strategy, outDir)
	if err != nil {
		return err
	}

	eng := engine.New(logger)
	for _, symbol := range instruments(ops) {
		eng.RegisterMarket(symbol)
	}

	d := driver.New(eng)
	d.Replay(ops)

	if err := eng.Finalize(); err != nil {
		log.Error().Err(err).Msg("logger finalize failed")
	}

	summary := d.Summary(len(ops))
	fmt.Println(summary)

	for _, symbol := range instruments(ops) {
		view, err := eng.Snapshot(symbol)
		if err != nil {
			continue
		}
		fmt.Printf("--- %s ---\n", symbol)
		fmt.Printf("bids: %v\n", view.Bids)
		fmt.Printf("asks: %v\n", view.Asks)
	}

	return nil
}

// instruments returns the set of instruments referenced by ops, in
// first-seen order, unless --symbols was given explicitly.
func instruments(ops []driver.Operation) []string {
	if symbols != "" {
		return strings.Split(symbols, ",")
	}
	seen := make(map[string]bool)
	var order []string
	for _, op := range ops {
		if !seen[op.Instrument] {
			seen[op.Instrument] = true
			order = append(order, op.Instrument)
		}
	}
	return order
}
