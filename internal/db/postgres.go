package db

import (
	"context"
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	config "github.com/hazzsaeedharis/postgres-nl-agent/configs"
	"github.com/hazzsaeedharis/postgres-nl-agent/internal/agenterr"
	"github.com/hazzsaeedharis/postgres-nl-agent/internal/intent"
	"github.com/hazzsaeedharis/postgres-nl-agent/internal/models"
)

var DB *gorm.DB

func Init(settings config.Settings) error {
	var err error

	DB, err = gorm.Open(postgres.Open(settings.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to DB: %w", err)
	}

	if err := Migrate(DB); err != nil {
		return fmt.Errorf("failed to migrate DB: %w", err)
	}

	if settings.SeedDemoData {
		if err := Seed(DB); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	log.Println("Database connected and migrated successfully")
	return nil
}

// Migrate creates the tables and the order_summary view. Tests run it
// against their own database handle.
func Migrate(gdb *gorm.DB) error {
	err := gdb.AutoMigrate(
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return err
	}
	return createOrderSummaryView(gdb)
}

// Postgres has no CREATE VIEW IF NOT EXISTS and sqlite has no CREATE OR
// REPLACE VIEW, so the view is dropped and recreated on every migration.
func createOrderSummaryView(gdb *gorm.DB) error {
	view := models.OrderSummaryRow{}.TableName()

	if err := gdb.Exec("DROP VIEW IF EXISTS " + view).Error; err != nil {
		return err
	}

	ddl := `CREATE VIEW ` + view + ` AS
SELECT
    o.id AS order_id,
    o.order_number,
    c.name AS customer_name,
    COUNT(oi.id) AS item_count,
    o.total_amount,
    o.status,
    o.created_at
FROM orders o
JOIN customers c ON c.id = o.customer_id
LEFT JOIN order_items oi ON oi.order_id = o.id
GROUP BY o.id, o.order_number, c.name, o.total_amount, o.status, o.created_at`

	return gdb.Exec(ddl).Error
}

func SetTestDB(testDB *gorm.DB) {
	DB = testDB
}

// Ping reports whether the underlying connection pool is reachable.
func Ping(ctx context.Context) bool {
	if DB == nil {
		return false
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return false
	}
	return sqlDB.PingContext(ctx) == nil
}

// Exec runs a mapped statement and returns the result rows as column->value
// maps. Non-row statements never occur here: the intent vocabulary is
// read-only.
func Exec(ctx context.Context, stmt intent.Statement) ([]map[string]any, error) {
	if DB == nil {
		return nil, &agenterr.DatabaseError{Err: fmt.Errorf("database not connected")}
	}

	rows := []map[string]any{}
	if err := DB.WithContext(ctx).Raw(stmt.SQL, stmt.Args...).Scan(&rows).Error; err != nil {
		return nil, &agenterr.DatabaseError{Err: err}
	}
	return rows, nil
}
