package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"sales-report/internal/features/reports"
	executil "sales-report/internal/infra/exec"
	"sales-report/internal/infra/log"
	"sales-report/internal/storage/salesdb"
)

// signalContext is cancelled on Ctrl+C or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// openService opens the database read-only and wires the report service.
// The returned close func releases the database handle.
func openService() (*reports.Service, func(), error) {
	store, err := salesdb.Open(cfg.Database.Path)
	if err != nil {
		return nil, nil, err
	}
	log.LogInfo("Database opened", zap.String("path", cfg.Database.Path))

	renderer := reports.NewRenderer(reports.Options{
		DPI:          cfg.Chart.DPI,
		DecemberYMin: cfg.Chart.DecemberYMin,
		DecemberYMax: cfg.Chart.DecemberYMax,
	})

	// a nil *Viewer inside the interface would not compare equal to nil
	var viewer reports.Displayer
	if cfg.Output.Show {
		viewer = executil.NewViewer(cfg.Output.Viewer, cfg.Output.ViewerTimeout)
	}

	svc := reports.NewService(store, renderer, cfg.Output.Dir, viewer)
	closeFn := func() {
		if err := store.Close(); err != nil {
			log.LogWarn("Failed to close database", zap.Error(err))
		}
	}
	return svc, closeFn, nil
}

func parseMetricFlag(value string) (reports.Metric, error) {
	m, err := reports.ParseMetric(value)
	if err != nil {
		return "", fmt.Errorf("invalid --metric: %w", err)
	}
	return m, nil
}
