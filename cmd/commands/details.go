package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sales-report/internal/features/reports"
)

var detailRows int

var detailsCmd = &cobra.Command{
	Use:   "details",
	Short: "Print the first rows of order_details",
	Args:  cobra.NoArgs,
	RunE:  runDetails,
}

func runDetails(cmd *cobra.Command, args []string) error {
	if detailRows <= 0 {
		return fmt.Errorf("--rows must be positive, got %d", detailRows)
	}

	ctx, cancel := signalContext()
	defer cancel()

	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	return svc.OrderDetails(ctx, cmd.OutOrStdout(), detailRows)
}

func init() {
	detailsCmd.Flags().IntVar(&detailRows, "rows", reports.DefaultDetailRows, "Number of rows to print")
}
