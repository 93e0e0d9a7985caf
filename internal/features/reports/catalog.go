package reports

import (
	"fmt"
	"strings"

	"sales-report/internal/storage/salesdb"

	"gonum.org/v1/plot/vg"
)

// Metric is the measured column a chart plots on the y axis.
type Metric string

const (
	Sales  Metric = "TotalSales"
	Orders Metric = "TotalOrders"
)

// ParseMetric accepts "sales"/"orders" in any case or the column names.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sales", "totalsales":
		return Sales, nil
	case "orders", "totalorders":
		return Orders, nil
	}
	return "", fmt.Errorf("unknown metric %q (want sales or orders)", s)
}

func (m Metric) Column() string { return string(m) }

// Noun is the word used in chart titles.
func (m Metric) Noun() string {
	if m == Orders {
		return "Orders"
	}
	return "Sales"
}

// filePrefix keeps the historical output names: sales_by_city.png but Orders_by_city.png.
func (m Metric) filePrefix() string {
	if m == Orders {
		return "Orders"
	}
	return "sales"
}

// DashboardFile is the composite image name for m.
func DashboardFile(m Metric) string {
	if m == Orders {
		return "Orders_dashboard.png"
	}
	return "dashboard.png"
}

// Kind selects one of the five fixed charts.
type Kind int

const (
	ByCity Kind = iota
	ByMonth
	ByState
	ByProduct
	InDecember
)

// Kinds is the menu order.
var Kinds = []Kind{ByCity, ByMonth, ByState, ByProduct, InDecember}

type style int

const (
	barStyle style = iota
	lineStyle
)

type chartSpec struct {
	name     string
	view     salesdb.View
	xColumn  string
	numericX bool
	style    style
	width    vg.Length
	height   vg.Length
	title    string // %s is the metric noun
	file     string // %s is the metric file prefix
}

var specs = map[Kind]chartSpec{
	ByCity: {
		name: "city", view: salesdb.ByCity, xColumn: "City", style: barStyle,
		width: 10 * vg.Inch, height: 6 * vg.Inch,
		title: "Total %s by City", file: "%s_by_city.png",
	},
	ByMonth: {
		name: "month", view: salesdb.ByMonth, xColumn: yearMonthColumn, style: lineStyle,
		width: 12 * vg.Inch, height: 6 * vg.Inch,
		title: "Monthly %s Trend", file: "%s_by_month.png",
	},
	ByState: {
		name: "state", view: salesdb.ByState, xColumn: "State", style: barStyle,
		width: 10 * vg.Inch, height: 6 * vg.Inch,
		title: "Total %s by State", file: "%s_by_state.png",
	},
	ByProduct: {
		name: "product", view: salesdb.ByProduct, xColumn: "ProductName", style: barStyle,
		width: 12 * vg.Inch, height: 6 * vg.Inch,
		title: "Top 10 Products by %s", file: "%s_by_product.png",
	},
	InDecember: {
		name: "december", view: salesdb.December, xColumn: "DayOfMonth", numericX: true, style: lineStyle,
		width: 10 * vg.Inch, height: 6 * vg.Inch,
		title: "Total %s in December", file: "%s_in_december.png",
	},
}

func (k Kind) spec() chartSpec { return specs[k] }

func (k Kind) String() string { return specs[k].name }

// Title is the chart heading for metric m.
func (k Kind) Title(m Metric) string { return fmt.Sprintf(specs[k].title, m.Noun()) }

// File is the output PNG name for metric m.
func (k Kind) File(m Metric) string { return fmt.Sprintf(specs[k].file, m.filePrefix()) }

// ParseKind maps a CLI name such as "city" or "december" to a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds {
		if specs[k].name == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown chart %q (want city, month, state, product or december)", s)
}
