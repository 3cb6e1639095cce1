package models

import "time"

// Order statuses form a small fixed vocabulary; the database holds them as
// plain strings and the mapper validates against this list before binding.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

var OrderStatuses = []string{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

func ValidOrderStatus(s string) bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type Order struct {
	ID          uint   `gorm:"primaryKey"`
	CustomerID  uint   `gorm:"index;not null"`
	Customer    Customer
	OrderNumber string  `gorm:"size:50;uniqueIndex;not null"`
	TotalAmount float64 `gorm:"not null"`
	Status      string  `gorm:"size:50;not null;default:pending"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Items []OrderItem `gorm:"foreignKey:OrderID"`
}

type OrderItem struct {
	ID        uint `gorm:"primaryKey"`
	OrderID   uint `gorm:"index;not null"`
	ProductID uint `gorm:"index;not null"`
	Product   Product
	Quantity  uint    `gorm:"not null"`
	UnitPrice float64 `gorm:"not null"`
	CreatedAt time.Time
}
