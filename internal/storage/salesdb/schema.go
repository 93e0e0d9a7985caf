package salesdb

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
)

// The reporting side never writes to sales.db. These migrations exist to
// build fixture and demo databases with the same table and views.
//
//go:embed migrations/*.sql
var migrationsFS embed.FS

// insertBatch keeps each multi-row insert under SQLite's bound variable limit.
const insertBatch = 1000

const insertOrder = `INSERT INTO order_details
	(OrderID, Product, QuantityOrdered, PriceEach, OrderDate, PurchaseAddress, City, State)
	VALUES (:OrderID, :Product, :QuantityOrdered, :PriceEach, :OrderDate, :PurchaseAddress, :City, :State)`

// Order is one line of order_details.
type Order struct {
	OrderID         int64   `db:"OrderID"`
	Product         string  `db:"Product"`
	QuantityOrdered int     `db:"QuantityOrdered"`
	PriceEach       float64 `db:"PriceEach"`
	OrderDate       string  `db:"OrderDate"` // "2006-01-02 15:04:05"
	PurchaseAddress string  `db:"PurchaseAddress"`
	City            string  `db:"City"`
	State           string  `db:"State"`
}

// Create builds the order_details table and the analysis views at path,
// creating the file if needed.
func Create(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open(driverName, path)
	if err != nil {
		return fmt.Errorf("open migration database: %w", err)
	}
	defer db.Close()

	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite driver: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// Seed appends orders to the order_details table at path in one transaction.
func Seed(ctx context.Context, path string, orders []Order) error {
	db, err := sqlx.Open(driverName, path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	for start := 0; start < len(orders); start += insertBatch {
		end := min(start+insertBatch, len(orders))
		if _, err := tx.NamedExecContext(ctx, insertOrder, orders[start:end]); err != nil {
			return fmt.Errorf("insert orders %d-%d: %w", start, end, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}
	return nil
}
