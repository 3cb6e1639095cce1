package db

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/hazzsaeedharis/postgres-nl-agent/internal/models"
)

// Seed inserts the demo dataset from scripts/setup_database.sql when the
// customers table is empty. It is a no-op on an already-populated database.
func Seed(gdb *gorm.DB) error {
	var count int64
	if err := gdb.Model(&models.Customer{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	customers := []models.Customer{
		{Name: "John Smith", Email: "john.smith@email.com", Phone: "+1-555-0101"},
		{Name: "Sarah Johnson", Email: "sarah.johnson@email.com", Phone: "+1-555-0102"},
		{Name: "Michael Brown", Email: "michael.brown@email.com", Phone: "+1-555-0103"},
		{Name: "Emily Davis", Email: "emily.davis@email.com", Phone: "+1-555-0104"},
		{Name: "David Wilson", Email: "david.wilson@email.com", Phone: "+1-555-0105"},
	}

	products := []models.Product{
		{Name: "Laptop Pro", Description: "High-performance laptop", Price: 1299.99, StockQuantity: 25},
		{Name: "Wireless Mouse", Description: "Ergonomic wireless mouse", Price: 29.99, StockQuantity: 150},
		{Name: "Mechanical Keyboard", Description: "RGB mechanical keyboard", Price: 89.99, StockQuantity: 75},
		{Name: "4K Monitor", Description: "27-inch 4K display", Price: 399.99, StockQuantity: 40},
		{Name: "USB-C Hub", Description: "7-in-1 USB-C hub", Price: 49.99, StockQuantity: 8},
		{Name: "Webcam HD", Description: "1080p webcam with microphone", Price: 59.99, StockQuantity: 60},
		{Name: "Desk Lamp", Description: "LED desk lamp", Price: 34.99, StockQuantity: 5},
		{Name: "Laptop Stand", Description: "Adjustable aluminum stand", Price: 44.99, StockQuantity: 90},
		{Name: "Noise-Cancelling Headphones", Description: "Over-ear wireless headphones", Price: 199.99, StockQuantity: 30},
		{Name: "External SSD", Description: "1TB portable SSD", Price: 119.99, StockQuantity: 55},
	}

	return gdb.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&customers).Error; err != nil {
			return err
		}
		if err := tx.Create(&products).Error; err != nil {
			return err
		}

		statuses := []string{
			models.StatusDelivered, models.StatusShipped, models.StatusProcessing,
			models.StatusPending, models.StatusDelivered, models.StatusCancelled,
			models.StatusShipped, models.StatusPending,
		}
		for i, status := range statuses {
			customer := customers[i%len(customers)]
			product := products[i%len(products)]
			order := models.Order{
				CustomerID:  customer.ID,
				OrderNumber: fmt.Sprintf("ORD-2024-%04d", i+1),
				TotalAmount: product.Price * 2,
				Status:      status,
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			item := models.OrderItem{
				OrderID:   order.ID,
				ProductID: product.ID,
				Quantity:  2,
				UnitPrice: product.Price,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}

		log.Printf("Seeded demo data: %d customers, %d products, %d orders", len(customers), len(products), len(statuses))
		return nil
	})
}
