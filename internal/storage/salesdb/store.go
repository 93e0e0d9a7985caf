package salesdb

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	logging "sales-report/internal/infra/log"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

// ErrDatabaseNotFound is returned by Open when the database file is missing.
var ErrDatabaseNotFound = errors.New("sales database not found")

// View names one of the fixed relations the reports read from.
type View string

const (
	OrderDetails View = "order_details"
	ByCity       View = "analysis_by_city"
	ByMonth      View = "analysis_by_month"
	ByState      View = "analysis_by_state"
	ByProduct    View = "analysis_by_product"
	December     View = "analysis_of_december"
)

// Views lists every relation Query accepts.
var Views = []View{OrderDetails, ByCity, ByMonth, ByState, ByProduct, December}

func (v View) Valid() bool {
	for _, known := range Views {
		if v == known {
			return true
		}
	}
	return false
}

// Store is a read-only handle on sales.db.
type Store struct {
	db *sqlx.DB
}

// Open opens path read-only. The file must already exist.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDatabaseNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat database: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?mode=ro", filepath.ToSlash(path))
	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logging.LogDebug("Opened sales database", zap.String("path", path))
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Query returns every row of view with no filtering, sorting or paging.
func (s *Store) Query(ctx context.Context, view View) (*RowSet, error) {
	if !view.Valid() {
		return nil, fmt.Errorf("unknown view %q", view)
	}

	start := time.Now()
	rows, err := s.db.QueryxContext(ctx, fmt.Sprintf("SELECT * FROM %s;", view))
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", view, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", view, err)
	}

	rs := &RowSet{Columns: columns}
	for rows.Next() {
		row := make(Row, len(columns))
		if err := rows.MapScan(row); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", view, err)
		}
		for k, v := range row {
			if b, ok := v.([]byte); ok {
				row[k] = string(b)
			}
		}
		rs.Rows = append(rs.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", view, err)
	}

	logging.LogInfo("Query completed",
		zap.String("view", string(view)),
		zap.Int("rows", rs.Len()),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()))

	return rs, nil
}
