package workload

import (
	"encoding/csv"
	"fmt"
	"os"
)

var header = []string{"operation", "instrument", "side", "order_type", "quantity", "price", "order_to_cancel"}

// WriteCSV writes rows to path in the format internal/driver reads.
func WriteCSV(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating operations csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		priceStr := ""
		if r.Price != nil {
			priceStr = r.Price.String()
		}
		cancelStr := ""
		if r.Operation == "CANCEL" {
			cancelStr = r.OrderOrCancel
		}
		orderID := ""
		if r.Operation == "NEW" {
			orderID = r.OrderOrCancel
		}
		record := []string{r.Operation, r.Instrument, r.Side, r.OrderType, r.Quantity.String(), priceStr, pick(orderID, cancelStr)}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func pick(orderID, cancelTarget string) string {
	if orderID != "" {
		return orderID
	}
	return cancelTarget
}
