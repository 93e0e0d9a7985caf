package reports

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"sales-report/internal/infra/fs"
	logging "sales-report/internal/infra/log"
	"sales-report/internal/storage/salesdb"
)

// Querier is the read side of salesdb.Store.
type Querier interface {
	Query(ctx context.Context, view salesdb.View) (*salesdb.RowSet, error)
}

// Displayer shows a saved image to the user.
type Displayer interface {
	Open(ctx context.Context, path string) error
}

// Service runs a query, renders the result and shows it.
type Service struct {
	store    Querier
	renderer *Renderer
	viewer   Displayer
	outDir   string
}

// NewService wires the pieces together. A nil viewer disables display.
func NewService(store Querier, renderer *Renderer, outDir string, viewer Displayer) *Service {
	return &Service{
		store:    store,
		renderer: renderer,
		viewer:   viewer,
		outDir:   outDir,
	}
}

// OrderDetails prints the first n rows of order_details to w.
func (s *Service) OrderDetails(ctx context.Context, w io.Writer, n int) error {
	rs, err := s.store.Query(ctx, salesdb.OrderDetails)
	if err != nil {
		return err
	}
	WriteTable(w, rs, n)
	return nil
}

// Chart renders one chart and returns the path it was written to.
func (s *Service) Chart(ctx context.Context, kind Kind, m Metric) (string, error) {
	start := time.Now()

	rs, err := s.store.Query(ctx, kind.spec().view)
	if err != nil {
		return "", err
	}

	path, err := fs.OutputPath(s.outDir, kind.File(m))
	if err != nil {
		return "", err
	}
	if err := s.renderer.Chart(kind, rs, m, path); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", kind.Title(m), err)
	}

	if err := s.finish(ctx, path, kind.Title(m), start); err != nil {
		return "", err
	}
	return path, nil
}

// Dashboard loads all five views and renders the composite image.
func (s *Service) Dashboard(ctx context.Context, m Metric) (string, error) {
	start := time.Now()

	sets := make(map[Kind]*salesdb.RowSet, len(Kinds))
	for _, k := range Kinds {
		rs, err := s.store.Query(ctx, k.spec().view)
		if err != nil {
			return "", err
		}
		if rs.Len() == 0 {
			logging.LogWarn("Dashboard panel has no rows", zap.String("view", string(k.spec().view)))
		}
		sets[k] = rs
	}

	path, err := fs.OutputPath(s.outDir, DashboardFile(m))
	if err != nil {
		return "", err
	}
	if err := s.renderer.Dashboard(sets, m, path); err != nil {
		return "", fmt.Errorf("failed to render %s dashboard: %w", m.Noun(), err)
	}

	if err := s.finish(ctx, path, m.Noun()+" dashboard", start); err != nil {
		return "", err
	}
	return path, nil
}

func (s *Service) finish(ctx context.Context, path, what string, start time.Time) error {
	size, err := fs.VerifyNonEmpty(path)
	if err != nil {
		logging.LogError("Chart file is empty after rendering", zap.String("file", path))
		return err
	}

	logging.LogSuccess(fmt.Sprintf("%s saved to %s (%s)", what, path, humanize.Bytes(uint64(size))),
		zap.String("file", path),
		zap.Int64("size", size),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()))

	if s.viewer == nil {
		return nil
	}
	if err := s.viewer.Open(ctx, path); err != nil {
		logging.LogWarn("Failed to open image viewer", zap.String("file", path), zap.Error(err))
	}
	return nil
}
