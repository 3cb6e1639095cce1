package respond

import (
	"fmt"

	"github.com/hazzsaeedharis/postgres-nl-agent/internal/intent"
)

// Message renders a query result as a short human-readable sentence.
func Message(in intent.Intent, rows []map[string]any) string {
	switch in {
	case intent.CountCustomers, intent.CountOrders:
		if n, ok := firstNumber(rows, "count"); ok {
			return fmt.Sprintf("I found %d records.", int64(n))
		}
		return "I couldn't count the records."

	case intent.RevenueInPeriod:
		if v, ok := firstNumber(rows, "revenue"); ok {
			return fmt.Sprintf("Total revenue for the period is %.2f.", v)
		}
		return "I couldn't compute the revenue."

	default:
		switch len(rows) {
		case 0:
			return "No records found."
		case 1:
			return "I found 1 record."
		default:
			return fmt.Sprintf("I found %d records.", len(rows))
		}
	}
}

// firstNumber pulls a numeric column from the first row, tolerating the
// integer/float differences between drivers.
func firstNumber(rows []map[string]any, column string) (float64, bool) {
	if len(rows) == 0 {
		return 0, false
	}
	switch v := rows[0][column].(type) {
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	case float64:
		return v, true
	case float32:
		return float64(v), true
	default:
		return 0, false
	}
}
