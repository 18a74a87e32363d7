package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"go-bank-ledger/app"
	"go-bank-ledger/config"
	"go-bank-ledger/logger"
	"go-bank-ledger/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newTestApp() *app.App {
	return app.NewWithBackend(repository.NewMemoryStore().Backend(), nil, config.LedgerConfig{DailyWithdrawalLimit: 5000})
}

func TestExecute_LedgerCommands(t *testing.T) {
	ctx := context.Background()
	a := newTestApp()
	var out bytes.Buffer

	steps := [][]string{
		{"create-account", "-name", "Ann", "-job", "Pilot", "-email", "ann@example.com", "-address", "1 Main St"},
		{"create-account", "-name", "Bob", "-job", "Chef", "-email", "bob@example.com", "-address", "2 Main St"},
		{"create-atm", "-location", "Harbour"},
		{"deposit", "-account", "1", "-amount", "1000", "-atm", "1"},
		{"withdraw", "-account", "1", "-amount", "100.50"},
		{"transfer", "-from", "1", "-to", "2", "-amount", "300"},
	}
	for _, step := range steps {
		require.NoError(t, execute(ctx, a, step[0], step[1:], &out), step)
	}

	out.Reset()
	require.NoError(t, execute(ctx, a, "accounts", nil, &out))
	assert.Contains(t, out.String(), "ann@example.com")
	assert.Contains(t, out.String(), "599.50")
	assert.Contains(t, out.String(), "300.00")

	out.Reset()
	require.NoError(t, execute(ctx, a, "transactions", []string{"-account", "1"}, &out))
	assert.Contains(t, out.String(), "transfer_out")
	assert.Contains(t, out.String(), "withdraw")

	out.Reset()
	require.NoError(t, execute(ctx, a, "atms", nil, &out))
	assert.Contains(t, out.String(), "Harbour")
	assert.Contains(t, out.String(), "1000.00")
}

func TestExecute_Errors(t *testing.T) {
	ctx := context.Background()
	a := newTestApp()
	var out bytes.Buffer

	assert.Error(t, execute(ctx, a, "bogus", nil, &out))
	assert.ErrorIs(t, execute(ctx, a, "deposit", []string{"-account", "1"}, &out), errUsage)
	assert.ErrorIs(t, execute(ctx, a, "deposit", []string{"-account", "1", "-amount", "ten"}, &out), errUsage)
	assert.Error(t, execute(ctx, a, "create-account", []string{"-name", "NoEmail"}, &out))

	err := execute(ctx, a, "withdraw", []string{"-account", "7", "-amount", "5"}, &out)
	assert.EqualError(t, err, "account not found")

	err = execute(ctx, a, "deposit", []string{"-account", "1", "-amount", "0.005"}, &out)
	assert.EqualError(t, err, "amount must be positive with at most 2 decimal places")
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("storage:\n  driver: memory\n"), 0o600))

	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, run([]string{"-config", dir, "accounts"}, &stdout, &stderr), stderr.String())
	assert.Contains(t, stderr.String(), "changes are discarded when ledgerctl exits")

	stdout.Reset()
	stderr.Reset()
	assert.Equal(t, 1, run([]string{"-config", dir, "transfer", "-from", "1", "-to", "1", "-amount", "5"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "cannot transfer money to the same account")

	assert.Equal(t, 2, run(nil, &stdout, &stderr))
}
