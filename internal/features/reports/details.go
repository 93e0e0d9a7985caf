package reports

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"sales-report/internal/storage/salesdb"
)

// DefaultDetailRows is how many order_details rows the menu prints.
const DefaultDetailRows = 5

// WriteTable prints the first n rows of rs as a text table with the raw
// column names as headers.
func WriteTable(w io.Writer, rs *salesdb.RowSet, n int) {
	head := rs.Head(n)

	table := tablewriter.NewWriter(w)
	table.SetHeader(rs.Columns)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	for i := range head.Rows {
		cells := make([]string, len(head.Columns))
		for c, col := range head.Columns {
			cells[c] = head.String(i, col)
		}
		table.Append(cells)
	}
	table.Render()

	fmt.Fprintf(w, "showing %d of %d rows\n", head.Len(), rs.Len())
}
