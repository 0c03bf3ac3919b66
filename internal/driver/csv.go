package driver

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"matchbook/internal/common"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// expectedHeader is the fixed column order spec.md §6 requires.
var expectedHeader = []string{"operation", "instrument", "side", "order_type", "quantity", "price", "order_to_cancel"}

// ReadCSV parses operations.csv. Malformed rows are logged and skipped
// rather than aborting the replay (spec.md §7); a missing or wrong
// header, or an unreadable file, is returned as an error since that
// makes the whole input unusable.
func ReadCSV(path string) ([]Operation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening operations csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}
	if !headerMatches(header) {
		return nil, fmt.Errorf("unexpected csv header: %v", header)
	}

	var ops []Operation
	lineNo := 1
	for {
		record, err := r.Read()
		lineNo++
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Warn().Err(err).Int("line", lineNo).Msg("skipping malformed csv row")
			continue
		}

		op, err := parseRow(record, lineNo)
		if err != nil {
			log.Warn().Err(err).Int("line", lineNo).Msg("skipping malformed csv row")
			continue
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func headerMatches(header []string) bool {
	if len(header) != len(expectedHeader) {
		return false
	}
	for i, h := range expectedHeader {
		if strings.TrimSpace(header[i]) != h {
			return false
		}
	}
	return true
}

func parseRow(record []string, line int) (Operation, error) {
	if len(record) != len(expectedHeader) {
		return Operation{}, fmt.Errorf("expected %d columns, got %d", len(expectedHeader), len(record))
	}

	op := Operation{Line: line, Instrument: strings.TrimSpace(record[1])}
	if op.Instrument == "" {
		return Operation{}, fmt.Errorf("missing instrument")
	}

	switch strings.ToUpper(strings.TrimSpace(record[0])) {
	case "NEW":
		op.Kind = NewOp
	case "CANCEL":
		op.Kind = CancelOp
	default:
		return Operation{}, fmt.Errorf("unknown operation %q", record[0])
	}

	if op.Kind == CancelOp {
		op.CancelTarget = strings.TrimSpace(record[6])
		if op.CancelTarget == "" {
			return Operation{}, fmt.Errorf("cancel row missing order_to_cancel")
		}
		return op, nil
	}

	switch strings.ToUpper(strings.TrimSpace(record[2])) {
	case "BUY":
		op.Side = common.Buy
	case "SELL":
		op.Side = common.Sell
	default:
		return Operation{}, fmt.Errorf("unknown side %q", record[2])
	}

	switch strings.ToUpper(strings.TrimSpace(record[3])) {
	case "LIMIT":
		op.Type = common.LimitOrder
	case "MARKET":
		op.Type = common.MarketOrder
	default:
		return Operation{}, fmt.Errorf("unknown order_type %q", record[3])
	}

	qty, err := decimal.NewFromString(strings.TrimSpace(record[4]))
	if err != nil || qty.Sign() <= 0 {
		return Operation{}, fmt.Errorf("invalid quantity %q", record[4])
	}
	op.Quantity = qty

	priceStr := strings.TrimSpace(record[5])
	switch {
	case op.Type == common.LimitOrder:
		price, err := decimal.NewFromString(priceStr)
		if err != nil {
			return Operation{}, fmt.Errorf("invalid price %q for limit order", priceStr)
		}
		op.Price = &price
	case priceStr != "":
		return Operation{}, fmt.Errorf("market order must not carry a price")
	}

	op.OrderID = strings.TrimSpace(record[6])
	if op.OrderID == "" {
		return Operation{}, fmt.Errorf("new row missing pre-assigned order id")
	}

	return op, nil
}
