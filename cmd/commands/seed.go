package commands

// Command to build a demo sales database
// Creates the order_details table and analysis views, then fills one
// generated year of orders

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sales-report/internal/infra/log"
	"sales-report/internal/storage/salesdb"
)

var (
	seedYear   int
	seedValue  int64
	seedPerDay int
	seedForce  bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a demo sales database",
	Long: `Create the order_details table and the analysis views at --db and fill them with a
deterministic year of generated orders. An existing file is kept unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, args []string) error {
	if seedPerDay <= 0 {
		return fmt.Errorf("--per-day must be positive, got %d", seedPerDay)
	}

	path := cfg.Database.Path
	if _, err := os.Stat(path); err == nil {
		if !seedForce {
			return fmt.Errorf("%s already exists, use --force to replace it", path)
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
		log.LogWarn("Existing database removed", zap.String("path", path))
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	ctx, cancel := signalContext()
	defer cancel()

	start := time.Now()
	if err := salesdb.Create(path); err != nil {
		return err
	}

	orders := salesdb.GenerateOrders(seedYear, seedValue, seedPerDay)
	if err := salesdb.Seed(ctx, path, orders); err != nil {
		return err
	}

	var size uint64
	if info, err := os.Stat(path); err == nil {
		size = uint64(info.Size())
	}
	log.LogSuccess("Demo database created",
		zap.String("path", path),
		zap.Int("rows", len(orders)),
		zap.String("size", humanize.Bytes(size)),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()))
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s order lines\n", path, humanize.Comma(int64(len(orders))))
	return nil
}

func init() {
	seedCmd.Flags().IntVar(&seedYear, "year", 2019, "Calendar year of the generated orders")
	seedCmd.Flags().Int64Var(&seedValue, "seed", 1, "Random seed")
	seedCmd.Flags().IntVar(&seedPerDay, "per-day", 50, "Average orders per day")
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "Replace an existing database")
}
