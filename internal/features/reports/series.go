package reports

import (
	"fmt"

	"sales-report/internal/storage/salesdb"
)

const yearMonthColumn = "YearMonth"

// AddYearMonth derives YearMonth = Year + "-" + Month on every row, keeping
// row order (Year=2024, Month="01" gives "2024-01").
func AddYearMonth(rs *salesdb.RowSet) error {
	if err := rs.Require("Year", "Month"); err != nil {
		return fmt.Errorf("monthly trend: %w", err)
	}
	rs.AddColumn(yearMonthColumn, func(i int) any {
		return rs.String(i, "Year") + "-" + rs.String(i, "Month")
	})
	return nil
}

// series is the plotted form of a row set.
type series struct {
	labels []string
	xs     []float64
	ys     []float64
}

func (s series) len() int { return len(s.ys) }

func buildSeries(spec chartSpec, rs *salesdb.RowSet, m Metric) (series, error) {
	if spec.xColumn == yearMonthColumn {
		if err := AddYearMonth(rs); err != nil {
			return series{}, err
		}
	}
	if err := rs.Require(spec.xColumn, m.Column()); err != nil {
		return series{}, fmt.Errorf("%s: %w", spec.view, err)
	}

	s := series{
		labels: make([]string, rs.Len()),
		xs:     make([]float64, rs.Len()),
		ys:     make([]float64, rs.Len()),
	}
	for i := range rs.Rows {
		s.labels[i] = rs.String(i, spec.xColumn)

		y, err := rs.Float(i, m.Column())
		if err != nil {
			return series{}, fmt.Errorf("%s: %w", spec.view, err)
		}
		s.ys[i] = y

		s.xs[i] = float64(i)
		if spec.numericX {
			x, err := rs.Float(i, spec.xColumn)
			if err != nil {
				return series{}, fmt.Errorf("%s: %w", spec.view, err)
			}
			s.xs[i] = x
		}
	}
	return s, nil
}
