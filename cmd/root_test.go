package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body = strings.ReplaceAll(body, "{{dir}}", dir)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
ledger:
  account_seed: 200
  lenient_open: true
display:
  statement_style: plain
`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, int64(200), cfg.Ledger.AccountSeed)
	assert.True(t, cfg.Ledger.LenientOpen)
	assert.Equal(t, "plain", cfg.Display.StatementStyle)
	assert.Equal(t, "2006-01-02 15:04:05", cfg.Display.TimeFormat)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, path, cfg.ConfigPath)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := writeConfig(t, "ledger:\n  account_seed: 200\n")
	t.Setenv("BANKBOOK_LEDGER_ACCOUNT_SEED", "900")

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, int64(900), cfg.Ledger.AccountSeed)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func runRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	state := &appState{}
	defer state.close()

	root := NewRootCmd(state)
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestRunCommandFromStdin(t *testing.T) {
	path := writeConfig(t, "ledger:\n  account_seed: 7\nlog:\n  file: {{dir}}/bankbook.log\n")

	out, err := runRoot(t, "open 50\nwithdraw 30\nbalance\n", "--config", path, "run", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Created: Account #7")
	assert.Contains(t, out, "Withdrew: 30.00")
	assert.Contains(t, out, "Current Balance: 20.00")
}

func TestRunCommandFromFile(t *testing.T) {
	path := writeConfig(t, "log:\n  file: {{dir}}/bankbook.log\n")
	scriptPath := filepath.Join(filepath.Dir(path), "session.txt")
	require.NoError(t, os.WriteFile(scriptPath, []byte("open\ndeposit 10\nstatement\n"), 0644))

	out, err := runRoot(t, "", "--config", path, "run", scriptPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Account Statement for Account #100001:")
	assert.Contains(t, out, "Type: Deposit    | Amount:      10.00 | Balance:      10.00")
}

func TestRunCommandStopsOnError(t *testing.T) {
	path := writeConfig(t, "log:\n  file: {{dir}}/bankbook.log\n")

	_, err := runRoot(t, "open 50\nwithdraw 80\n", "--config", path, "run", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "50.00")
}

func TestRunCommandKeepGoing(t *testing.T) {
	path := writeConfig(t, "log:\n  file: {{dir}}/bankbook.log\n")

	out, err := runRoot(t, "open\ndeposit -1\ndeposit 1\n", "--config", path, "run", "-", "--keep-going")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 command(s) failed")
	assert.Contains(t, out, "Deposited: 1.00")
}

func TestRunCommandInvalidConfig(t *testing.T) {
	path := writeConfig(t, "ledger:\n  account_seed: 0\n")

	_, err := runRoot(t, "", "--config", path, "run", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AccountSeed")
}
