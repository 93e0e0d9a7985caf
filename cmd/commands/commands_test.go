package commands

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-report/internal/storage/salesdb"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSeedRenderAndMenu(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	db := filepath.Join(dir, "data", "sales.db")
	common := []string{"--db", db, "--out", filepath.Join(dir, "out"), "--show=false", "--logs-dir", filepath.Join(dir, "logs")}

	out, err := execute(t, "", append([]string{"seed", "--per-day", "5"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "order lines")

	_, err = execute(t, "", append([]string{"seed"}, common...)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	out, err = execute(t, "", append([]string{"chart", "city", "--metric", "orders"}, common...)...)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out", "Orders_by_city.png"), strings.TrimSpace(out))
	assert.FileExists(t, filepath.Join(dir, "out", "Orders_by_city.png"))

	_, err = execute(t, "", append([]string{"dashboard", "--metric", "sales"}, common...)...)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "out", "dashboard.png"))

	out, err = execute(t, "", append([]string{"details", "--rows", "3"}, common...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "OrderID")
	assert.Contains(t, out, "showing 3 of")

	out, err = execute(t, "3\n5\n4\n", common...)
	require.NoError(t, err)
	assert.Contains(t, out, "Exiting program...")
	assert.FileExists(t, filepath.Join(dir, "out", "sales_in_december.png"))
	assert.FileExists(t, filepath.Join(dir, "logs", "app.log"))
}

func TestCommandErrors(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	common := []string{"--db", filepath.Join(dir, "missing.db"), "--show=false", "--logs-dir", filepath.Join(dir, "logs")}

	_, err := execute(t, "", append([]string{"chart", "city", "--metric", "sales"}, common...)...)
	require.ErrorIs(t, err, salesdb.ErrDatabaseNotFound)

	_, err = execute(t, "", append([]string{"chart", "weekday", "--metric", "sales"}, common...)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown chart")

	_, err = execute(t, "", append([]string{"dashboard", "--metric", "profit"}, common...)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --metric")
}

func TestSeedRejectsFlagsBeforeReplacing(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	db := filepath.Join(dir, "sales.db")
	common := []string{"--db", db, "--show=false", "--logs-dir", filepath.Join(dir, "logs")}
	t.Cleanup(func() {
		seedForce = false
		seedPerDay = 50
	})

	_, err := execute(t, "", append([]string{"seed", "--per-day", "2"}, common...)...)
	require.NoError(t, err)

	_, err = execute(t, "", append([]string{"seed", "--force", "--per-day", "0"}, common...)...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--per-day must be positive")
	assert.FileExists(t, db)

	store, err := salesdb.Open(db)
	require.NoError(t, err)
	defer store.Close()
	rs, err := store.Query(context.Background(), salesdb.OrderDetails)
	require.NoError(t, err)
	assert.Positive(t, rs.Len())
}
