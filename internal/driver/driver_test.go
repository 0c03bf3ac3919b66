package driver

import (
	"os"
	"path/filepath"
	"testing"

	"matchbook/internal/engine"
	"matchbook/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `operation,instrument,side,order_type,quantity,price,order_to_cancel
NEW,X,BUY,LIMIT,10,100,order-1
NEW,X,SELL,LIMIT,10,100,order-2
NEW,X,BUY,MARKET,5,,order-3
CANCEL,X,,,,,order-does-not-exist
this,row,is,malformed
`

func writeSampleCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "operations.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))
	return path
}

func TestReadCSV_ParsesValidRowsAndSkipsMalformed(t *testing.T) {
	path := writeSampleCSV(t)

	ops, err := ReadCSV(path)
	require.NoError(t, err)
	require.Len(t, ops, 4)

	assert.Equal(t, NewOp, ops[0].Kind)
	assert.Equal(t, "order-1", ops[0].OrderID)
	assert.Equal(t, NewOp, ops[2].Kind)
	assert.Nil(t, ops[2].Price)
	assert.Equal(t, CancelOp, ops[3].Kind)
	assert.Equal(t, "order-does-not-exist", ops[3].CancelTarget)
}

func TestDriver_ReplayProducesSummary(t *testing.T) {
	path := writeSampleCSV(t)
	ops, err := ReadCSV(path)
	require.NoError(t, err)

	logger := logging.NewNoop()
	eng := engine.New(logger)
	eng.RegisterMarket("X")

	d := New(eng)
	d.Replay(ops)
	require.NoError(t, eng.Finalize())

	summary := d.Summary(len(ops))
	assert.Equal(t, len(ops), summary.Operations)
	assert.Equal(t, 1, summary.Trades)
	assert.Equal(t, 1, summary.Rejected) // unknown cancel target
}
