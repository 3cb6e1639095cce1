package models

import "time"

type Product struct {
	ID            uint    `gorm:"primaryKey"`
	Name          string  `gorm:"size:200;not null"`
	Description   string  `gorm:"size:1000"`
	Price         float64 `gorm:"not null"`
	StockQuantity int     `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
