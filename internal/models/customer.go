package models

import "time"

type Customer struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:200;not null"`
	Email     string `gorm:"size:255;uniqueIndex;not null"`
	Phone     string `gorm:"size:50"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Orders []Order `gorm:"foreignKey:CustomerID"`
}
