package reports

import (
	"context"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"sales-report/internal/storage/salesdb"
)

func cityRows() *salesdb.RowSet {
	return &salesdb.RowSet{
		Columns: []string{"City", "TotalSales", "TotalOrders"},
		Rows: []salesdb.Row{
			{"City": "San Francisco", "TotalSales": 8262203.91, "TotalOrders": int64(44732)},
			{"City": "Los Angeles", "TotalSales": 5452570.8, "TotalOrders": int64(29605)},
			{"City": "New York City", "TotalSales": 4664317.43, "TotalOrders": int64(24876)},
			{"City": "Boston", "TotalSales": 3661642.01, "TotalOrders": int64(19934)},
		},
	}
}

func monthRows() *salesdb.RowSet {
	return &salesdb.RowSet{
		Columns: []string{"Year", "Month", "TotalSales", "TotalOrders"},
		Rows: []salesdb.Row{
			{"Year": int64(2019), "Month": "11", "TotalSales": 3199603.2, "TotalOrders": int64(17573)},
			{"Year": int64(2019), "Month": "12", "TotalSales": 4613443.34, "TotalOrders": int64(24984)},
			{"Year": int64(2020), "Month": "01", "TotalSales": 8670.29, "TotalOrders": int64(31)},
		},
	}
}

func stateRows() *salesdb.RowSet {
	return &salesdb.RowSet{
		Columns: []string{"State", "TotalSales", "TotalOrders"},
		Rows: []salesdb.Row{
			{"State": "CA", "TotalSales": 13714774.71, "TotalOrders": int64(74337)},
			{"State": "NY", "TotalSales": 4664317.43, "TotalOrders": int64(24876)},
			{"State": "TX", "TotalSales": 4587557.15, "TotalOrders": int64(24725)},
		},
	}
}

func productRows() *salesdb.RowSet {
	return &salesdb.RowSet{
		Columns: []string{"ProductName", "TotalSales", "TotalOrders"},
		Rows: []salesdb.Row{
			{"ProductName": "Macbook Pro Laptop", "TotalSales": 8037600.0, "TotalOrders": int64(4724)},
			{"ProductName": "iPhone", "TotalSales": 4794300.0, "TotalOrders": int64(6842)},
			{"ProductName": "ThinkPad Laptop", "TotalSales": 4129958.7, "TotalOrders": int64(4128)},
		},
	}
}

// decemberRows deliberately sits outside [125000, 175000].
func decemberRows() *salesdb.RowSet {
	rs := &salesdb.RowSet{Columns: []string{"DayOfMonth", "TotalSales", "TotalOrders"}}
	for d := 1; d <= 31; d++ {
		rs.Rows = append(rs.Rows, salesdb.Row{
			"DayOfMonth":  int64(d),
			"TotalSales":  float64(d) * 20000,
			"TotalOrders": int64(700 + d),
		})
	}
	return rs
}

func emptyRows(cols ...string) *salesdb.RowSet {
	return &salesdb.RowSet{Columns: cols}
}

func rowsFor(kind Kind) *salesdb.RowSet {
	switch kind {
	case ByCity:
		return cityRows()
	case ByMonth:
		return monthRows()
	case ByState:
		return stateRows()
	case ByProduct:
		return productRows()
	default:
		return decemberRows()
	}
}

// fakeStore serves canned row sets and counts queries per view.
type fakeStore struct {
	sets    map[salesdb.View]*salesdb.RowSet
	queries map[salesdb.View]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		sets: map[salesdb.View]*salesdb.RowSet{
			salesdb.ByCity:    cityRows(),
			salesdb.ByMonth:   monthRows(),
			salesdb.ByState:   stateRows(),
			salesdb.ByProduct: productRows(),
			salesdb.December:  decemberRows(),
			salesdb.OrderDetails: {
				Columns: []string{"OrderID", "Product", "PriceEach"},
				Rows: []salesdb.Row{
					{"OrderID": int64(176558), "Product": "USB-C Charging Cable", "PriceEach": 11.95},
					{"OrderID": int64(176559), "Product": "Bose SoundSport Headphones", "PriceEach": 99.99},
				},
			},
		},
		queries: map[salesdb.View]int{},
	}
}

func (f *fakeStore) Query(_ context.Context, view salesdb.View) (*salesdb.RowSet, error) {
	f.queries[view]++
	rs, ok := f.sets[view]
	if !ok {
		return nil, fmt.Errorf("no such table: %s", view)
	}
	return rs, nil
}

type fakeViewer struct {
	opened []string
	err    error
}

func (v *fakeViewer) Open(_ context.Context, path string) error {
	v.opened = append(v.opened, path)
	return v.err
}

func decodeSize(t *testing.T, path string) image.Point {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	require.NoError(t, err)
	require.Equal(t, "png", format)
	return image.Pt(cfg.Width, cfg.Height)
}
