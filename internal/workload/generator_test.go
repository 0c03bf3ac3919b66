package workload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Instrument:   "X",
		Count:        200,
		WarmUp:       20,
		MidPrice:     decimal.NewFromInt(100),
		Spread:       decimal.NewFromInt(2),
		TickSize:     decimal.NewFromFloat(0.01),
		MinQty:       decimal.NewFromInt(1),
		MaxQty:       decimal.NewFromInt(50),
		LimitWeight:  0.6,
		MarketWeight: 0.15,
		CancelWeight: 0.25,
		Seed:         42,
	}
}

func TestGenerate_WarmUpIsLimitOnly(t *testing.T) {
	rows := Generate(testConfig())
	require.Len(t, rows, 200)

	for _, row := range rows[:20] {
		assert.Equal(t, "NEW", row.Operation)
		assert.Equal(t, "LIMIT", row.OrderType)
	}
}

func TestGenerate_IsDeterministicForASeed(t *testing.T) {
	a := Generate(testConfig())
	b := Generate(testConfig())
	assert.Equal(t, a, b)
}

func TestGenerate_CancelTargetsAPreviouslyOpenLimitOrder(t *testing.T) {
	rows := Generate(testConfig())

	open := make(map[string]bool)
	for _, row := range rows {
		switch row.Operation {
		case "NEW":
			if row.OrderType == "LIMIT" {
				open[row.OrderOrCancel] = true
			}
		case "CANCEL":
			assert.True(t, open[row.OrderOrCancel], "cancel target must have been a previously-seen open limit id")
			delete(open, row.OrderOrCancel)
		}
	}
}

func TestWriteCSV_WritesHeaderAndOneLinePerRow(t *testing.T) {
	rows := Generate(testConfig())
	path := filepath.Join(t.TempDir(), "operations.csv")
	require.NoError(t, WriteCSV(path, rows))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Equal(t, "operation,instrument,side,order_type,quantity,price,order_to_cancel", lines[0])
	assert.Len(t, lines, len(rows)+1)
}
