package commands

// One-shot chart and dashboard rendering without the menu

import (
	"fmt"

	"github.com/spf13/cobra"

	"sales-report/internal/features/reports"
)

var (
	chartMetric     string
	dashboardMetric string
)

var chartCmd = &cobra.Command{
	Use:       "chart <city|month|state|product|december>",
	Short:     "Render one chart to PNG",
	Long:      `Render a single bar or line chart for the chosen metric and save it under the output directory.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"city", "month", "state", "product", "december"},
	RunE:      runChart,
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Render the 3x2 dashboard to PNG",
	Args:  cobra.NoArgs,
	RunE:  runDashboard,
}

func runChart(cmd *cobra.Command, args []string) error {
	kind, err := reports.ParseKind(args[0])
	if err != nil {
		return err
	}
	metric, err := parseMetricFlag(chartMetric)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	path, err := svc.Chart(ctx, kind, metric)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func runDashboard(cmd *cobra.Command, args []string) error {
	metric, err := parseMetricFlag(dashboardMetric)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	svc, closeFn, err := openService()
	if err != nil {
		return err
	}
	defer closeFn()

	path, err := svc.Dashboard(ctx, metric)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func init() {
	chartCmd.Flags().StringVar(&chartMetric, "metric", "sales", "Metric to plot: sales or orders")
	dashboardCmd.Flags().StringVar(&dashboardMetric, "metric", "sales", "Metric to plot: sales or orders")
}
