package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMetric(t *testing.T) {
	for in, want := range map[string]Metric{
		"sales": Sales, "Sales": Sales, "TotalSales": Sales,
		"orders": Orders, " ORDERS ": Orders, "TotalOrders": Orders,
	} {
		got, err := ParseMetric(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseMetric("revenue")
	assert.Error(t, err)
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseKind("region")
	assert.Error(t, err)
}

func TestChartTitlesAndFiles(t *testing.T) {
	tests := []struct {
		kind   Kind
		metric Metric
		title  string
		file   string
	}{
		{ByCity, Sales, "Total Sales by City", "sales_by_city.png"},
		{ByMonth, Sales, "Monthly Sales Trend", "sales_by_month.png"},
		{ByState, Sales, "Total Sales by State", "sales_by_state.png"},
		{ByProduct, Sales, "Top 10 Products by Sales", "sales_by_product.png"},
		{InDecember, Sales, "Total Sales in December", "sales_in_december.png"},
		{ByCity, Orders, "Total Orders by City", "Orders_by_city.png"},
		{ByMonth, Orders, "Monthly Orders Trend", "Orders_by_month.png"},
		{ByState, Orders, "Total Orders by State", "Orders_by_state.png"},
		{ByProduct, Orders, "Top 10 Products by Orders", "Orders_by_product.png"},
		{InDecember, Orders, "Total Orders in December", "Orders_in_december.png"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			assert.Equal(t, tt.title, tt.kind.Title(tt.metric))
			assert.Equal(t, tt.file, tt.kind.File(tt.metric))
		})
	}

	assert.Equal(t, "dashboard.png", DashboardFile(Sales))
	assert.Equal(t, "Orders_dashboard.png", DashboardFile(Orders))
}
