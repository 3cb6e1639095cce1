package intent

import "strings"

// Intent is the closed vocabulary of supported query categories. Adding a
// case here without extending Map breaks the mapper's exhaustive switch.
type Intent int

const (
	Unknown Intent = iota
	ListCustomers
	CountCustomers
	FindCustomerByEmail
	ListProducts
	LowStockProducts
	ListOrders
	CountOrders
	OrdersInDateRange
	OrdersByStatus
	RevenueInPeriod
	OrderSummary
)

var labels = map[Intent]string{
	ListCustomers:       "list-customers",
	CountCustomers:      "count-customers",
	FindCustomerByEmail: "find-customer-by-email",
	ListProducts:        "list-products",
	LowStockProducts:    "low-stock-products",
	ListOrders:          "list-orders",
	CountOrders:         "count-orders",
	OrdersInDateRange:   "orders-in-date-range",
	OrdersByStatus:      "orders-by-status",
	RevenueInPeriod:     "revenue-in-period",
	OrderSummary:        "order-summary",
}

func (i Intent) String() string {
	if l, ok := labels[i]; ok {
		return l
	}
	return "unknown"
}

// Parse normalizes an intent label (kebab, snake, spaced, or a Dialogflow
// display name) into the enumeration. The second return is false when the
// label falls outside the vocabulary.
func Parse(label string) (Intent, bool) {
	norm := strings.ToLower(strings.TrimSpace(label))
	norm = strings.ReplaceAll(norm, "_", "-")
	norm = strings.ReplaceAll(norm, " ", "-")
	for i, l := range labels {
		if norm == l {
			return i, true
		}
	}
	return Unknown, false
}

// Entities carries named values extracted from the query text.
type Entities map[string]string

func (e Entities) Get(name string) (string, bool) {
	v, ok := e[name]
	return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
}
