package intent

import (
	"strconv"
	"time"

	"github.com/hazzsaeedharis/postgres-nl-agent/internal/agenterr"
	"github.com/hazzsaeedharis/postgres-nl-agent/internal/models"
)

// Statement is a parameterized SQL statement ready for execution. Args line
// up with the '?' placeholders in SQL; entity values are only ever bound,
// never spliced into the text.
type Statement struct {
	SQL  string
	Args []any
}

const defaultLowStockThreshold = 10

// Map translates an intent and its extracted entities into a Statement.
// It fails with MissingEntityError when a required entity is absent or
// unresolvable, and with UnsupportedIntentError for anything outside the
// vocabulary. No database access happens here.
func Map(in Intent, entities Entities, now time.Time) (Statement, error) {
	switch in {
	case ListCustomers:
		return Statement{
			SQL: "SELECT id, name, email, phone, created_at FROM customers ORDER BY id",
		}, nil

	case CountCustomers:
		return Statement{
			SQL: "SELECT COUNT(*) AS count FROM customers",
		}, nil

	case FindCustomerByEmail:
		email, ok := entities.Get("email")
		if !ok {
			return Statement{}, &agenterr.MissingEntityError{Entity: "email"}
		}
		return Statement{
			SQL:  "SELECT id, name, email, phone, created_at FROM customers WHERE email = ?",
			Args: []any{email},
		}, nil

	case ListProducts:
		return Statement{
			SQL: "SELECT id, name, description, price, stock_quantity FROM products ORDER BY id",
		}, nil

	case LowStockProducts:
		threshold := defaultLowStockThreshold
		if raw, ok := entities.Get("threshold"); ok {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return Statement{}, &agenterr.MissingEntityError{Entity: "threshold"}
			}
			threshold = n
		}
		return Statement{
			SQL:  "SELECT id, name, stock_quantity, price FROM products WHERE stock_quantity < ? ORDER BY stock_quantity",
			Args: []any{threshold},
		}, nil

	case ListOrders:
		return Statement{
			SQL: "SELECT id, order_number, customer_id, total_amount, status, created_at FROM orders ORDER BY created_at DESC",
		}, nil

	case CountOrders:
		return Statement{
			SQL: "SELECT COUNT(*) AS count FROM orders",
		}, nil

	case OrdersInDateRange:
		window, err := requireInterval(entities, now)
		if err != nil {
			return Statement{}, err
		}
		return Statement{
			SQL:  "SELECT id, order_number, customer_id, total_amount, status, created_at FROM orders WHERE created_at >= ? AND created_at < ? ORDER BY created_at",
			Args: []any{window.Start, window.End},
		}, nil

	case OrdersByStatus:
		status, ok := entities.Get("status")
		if !ok {
			return Statement{}, &agenterr.MissingEntityError{Entity: "status"}
		}
		if !models.ValidOrderStatus(status) {
			return Statement{}, &agenterr.MissingEntityError{Entity: "status"}
		}
		return Statement{
			SQL:  "SELECT id, order_number, customer_id, total_amount, status, created_at FROM orders WHERE status = ? ORDER BY created_at DESC",
			Args: []any{status},
		}, nil

	case RevenueInPeriod:
		window, err := requireInterval(entities, now)
		if err != nil {
			return Statement{}, err
		}
		return Statement{
			SQL:  "SELECT COALESCE(SUM(total_amount), 0) AS revenue FROM orders WHERE created_at >= ? AND created_at < ? AND status <> 'cancelled'",
			Args: []any{window.Start, window.End},
		}, nil

	case OrderSummary:
		return Statement{
			SQL: "SELECT order_id, order_number, customer_name, item_count, total_amount, status, created_at FROM order_summary ORDER BY order_id",
		}, nil

	default:
		return Statement{}, &agenterr.UnsupportedIntentError{Label: in.String()}
	}
}

func requireInterval(entities Entities, now time.Time) (Interval, error) {
	phrase, ok := entities.Get("date_phrase")
	if !ok {
		return Interval{}, &agenterr.MissingEntityError{Entity: "date_phrase"}
	}
	window, ok := ResolveDatePhrase(phrase, now)
	if !ok {
		return Interval{}, &agenterr.MissingEntityError{Entity: "date_phrase"}
	}
	return window, nil
}
