// Package driver replays a CSV-encoded stream of NEW/CANCEL operations
// against a matching engine, timing each one and reporting latency
// percentiles. It is the external collaborator described by spec.md §6,
// implemented here as the module's own CLI support package.
package driver

import "matchbook/internal/common"

// OperationKind is the CSV's `operation` column.
type OperationKind int

const (
	NewOp OperationKind = iota
	CancelOp
)

// Operation is one parsed CSV row. For NEW rows, OrderID is the
// generator's pre-assigned id; for CANCEL rows it is blank and
// CancelTarget names the order to cancel.
type Operation struct {
	Kind         OperationKind
	Instrument   string
	Side         common.Side
	Type         common.OrderType
	Quantity     common.Decimal
	Price        *common.Decimal
	OrderID      string
	CancelTarget string
	Line         int // 1-based source line, for diagnostics
}
