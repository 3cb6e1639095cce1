package models

import "time"

// OrderSummaryRow maps the order_summary view maintained by the database
// (see scripts/setup_database.sql). The application never computes it.
type OrderSummaryRow struct {
	OrderID      uint
	OrderNumber  string
	CustomerName string
	ItemCount    int
	TotalAmount  float64
	Status       string
	CreatedAt    time.Time
}

func (OrderSummaryRow) TableName() string { return "order_summary" }
