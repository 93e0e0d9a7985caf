package salesdb

import (
	"fmt"
	"strconv"
	"strings"
)

// Row is one result row keyed by column name.
type Row map[string]any

// RowSet is a query result: column names in select order plus the rows.
type RowSet struct {
	Columns []string
	Rows    []Row
}

func (rs *RowSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.Rows)
}

// Require reports the columns of cols that rs does not have.
func (rs *RowSet) Require(cols ...string) error {
	var missing []string
	for _, c := range cols {
		if !rs.has(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing columns %s (have %s)",
			strings.Join(missing, ", "), strings.Join(rs.Columns, ", "))
	}
	return nil
}

func (rs *RowSet) has(col string) bool {
	for _, c := range rs.Columns {
		if c == col {
			return true
		}
	}
	return false
}

// String formats the value at row i, column col. NULL becomes "".
func (rs *RowSet) String(i int, col string) string {
	switch v := rs.Rows[i][col].(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Float reads a numeric value at row i, column col.
func (rs *RowSet) Float(i int, col string) (float64, error) {
	switch v := rs.Rows[i][col].(type) {
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	case string:
		return parseNumeric(i, col, v)
	case []byte:
		return parseNumeric(i, col, string(v))
	case nil:
		return 0, fmt.Errorf("row %d column %s: value is NULL", i, col)
	default:
		return 0, fmt.Errorf("row %d column %s: unsupported type %T", i, col, v)
	}
}

// AddColumn derives a new column from each row, in row order. An existing
// column with the same name is overwritten in place.
func (rs *RowSet) AddColumn(name string, fn func(i int) any) {
	for i := range rs.Rows {
		rs.Rows[i][name] = fn(i)
	}
	if !rs.has(name) {
		rs.Columns = append(rs.Columns, name)
	}
}

// Head returns a RowSet sharing the first n rows.
func (rs *RowSet) Head(n int) *RowSet {
	if n < 0 {
		n = 0
	}
	if n > len(rs.Rows) {
		n = len(rs.Rows)
	}
	return &RowSet{Columns: rs.Columns, Rows: rs.Rows[:n]}
}

func parseNumeric(i int, col, v string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, fmt.Errorf("row %d column %s: %q is not numeric", i, col, v)
	}
	return f, nil
}
