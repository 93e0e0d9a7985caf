package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(newFlags(t))
	require.NoError(t, err)

	assert.Equal(t, "sales.db", cfg.Database.Path)
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.True(t, cfg.Output.Show)
	assert.Empty(t, cfg.Output.Viewer)
	assert.Equal(t, 10*time.Second, cfg.Output.ViewerTimeout)
	assert.Equal(t, 100, cfg.Chart.DPI)
	assert.Equal(t, 125000.0, cfg.Chart.DecemberYMin)
	assert.Equal(t, 175000.0, cfg.Chart.DecemberYMax)
	assert.Equal(t, "logs", cfg.App.LogsDir)
}

func TestLoadEnvironmentOverridesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SALES_REPORT_DATABASE_PATH", "/data/archive.db")
	t.Setenv("SALES_REPORT_CHART_DPI", "150")
	t.Setenv("SALES_REPORT_OUTPUT_SHOW", "false")

	cfg, err := Load(newFlags(t))
	require.NoError(t, err)

	assert.Equal(t, "/data/archive.db", cfg.Database.Path)
	assert.Equal(t, 150, cfg.Chart.DPI)
	assert.False(t, cfg.Output.Show)
}

func TestLoadFlagsOverrideEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SALES_REPORT_DATABASE_PATH", "/data/archive.db")

	cfg, err := Load(newFlags(t, "--db", "fixture.db", "--show=false", "--out", "charts"))
	require.NoError(t, err)

	assert.Equal(t, "fixture.db", cfg.Database.Path)
	assert.Equal(t, "charts", cfg.Output.Dir)
	assert.False(t, cfg.Output.Show)
}

func TestLoadReadsConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())
	yaml := "chart:\n  december_y_min: 0\n  december_y_max: 500\noutput:\n  viewer: feh\n"
	require.NoError(t, os.WriteFile("config.yaml", []byte(yaml), 0644))

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 0.0, cfg.Chart.DecemberYMin)
	assert.Equal(t, 500.0, cfg.Chart.DecemberYMax)
	assert.Equal(t, "feh", cfg.Output.Viewer)
}

func TestLoadRejectsInvertedDecemberRange(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SALES_REPORT_CHART_DECEMBER_Y_MIN", "200000")

	_, err := Load(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "december_y_min")
}
