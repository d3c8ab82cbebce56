package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("REDIS_ADDRESS", "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func TestBillsEmpty(t *testing.T) {
	out, err := runCLI(t, "bills", "--user", "u1", "--locale", "en-US")
	require.NoError(t, err)
	assert.Contains(t, out, "No recurring bills.")
}

func TestSummaryEmpty(t *testing.T) {
	out, err := runCLI(t, "summary", "--user", "u1", "--view", "week")
	require.NoError(t, err)
	assert.Contains(t, out, "Balance")
	assert.Contains(t, out, "0.00")
	assert.Contains(t, out, "No expenses this week.")
}

func TestSummaryRejectsUnknownView(t *testing.T) {
	_, err := runCLI(t, "summary", "--user", "u1", "--view", "year")
	assert.Error(t, err)
}

func TestExportWritesHeaderToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tx.csv")

	out, err := runCLI(t, "export", "--user", "u1", "--locale", "en-US", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ID,Description,Amount,Date,Type,Category,Recurring,Due Date\r\n", string(data))
}

func TestMigrateDownFlagDefault(t *testing.T) {
	cmd, _, err := rootCmd.Find([]string{"migrate", "down"})
	require.NoError(t, err)
	assert.Equal(t, "1", cmd.Flags().Lookup("steps").DefValue)
}
