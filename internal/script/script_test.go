package script

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hance08/bankbook/internal/config"
	"github.com/hance08/bankbook/internal/ledger"
	"github.com/hance08/bankbook/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRunner(t *testing.T, opts Options, mutate func(*config.Config)) (*Runner, *bytes.Buffer) {
	t.Helper()
	cfg := config.NewDefault()
	if mutate != nil {
		mutate(cfg)
	}
	ts := time.Date(2025, 4, 29, 10, 0, 0, 0, time.Local)
	session := service.NewSession(
		ledger.NewRegistry(cfg.Ledger.AccountSeed),
		cfg,
		zap.NewNop(),
		ledger.WithClock(func() time.Time { return ts }),
	)
	out := &bytes.Buffer{}
	return NewRunner(session, out, opts), out
}

func TestRunFullScript(t *testing.T) {
	r, out := newRunner(t, Options{}, nil)

	src := `
# open a zero-balance account and work with it
open
deposit 50.00
withdraw 30
balance
open 100
accounts
use 100001
statement
`
	res, err := r.Run(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 8, res.Executed)
	assert.Empty(t, res.Failed)

	want := "Created: Account #100001\n" +
		"Deposited: 50.00\n" +
		"Withdrew: 30.00\n" +
		"Account #100001\nCurrent Balance: 20.00\n" +
		"Created: Account #100002\n" +
		"  Account #100001      20.00\n" +
		"* Account #100002     100.00\n" +
		"Selected: Account #100001\n" +
		"Account Statement for Account #100001:\n" +
		"2025-04-29 10:00:00 | Type: Account opened | Amount:       0.00 | Balance:       0.00\n" +
		"2025-04-29 10:00:00 | Type: Deposit    | Amount:      50.00 | Balance:      50.00\n" +
		"2025-04-29 10:00:00 | Type: Withdrawal | Amount:      30.00 | Balance:      20.00\n"
	assert.Equal(t, want, out.String())
}

func TestRunStopsAtFirstError(t *testing.T) {
	r, out := newRunner(t, Options{}, nil)

	res, err := r.Run(strings.NewReader("open 50\nwithdraw 30\nwithdraw 25\ndeposit 1\n"))
	require.Error(t, err)

	var lineErr *LineError
	require.True(t, errors.As(err, &lineErr))
	assert.Equal(t, 3, lineErr.Line)
	assert.Equal(t, "withdraw 25", lineErr.Command)
	assert.True(t, errors.Is(err, ledger.ErrInsufficientFunds))
	assert.Contains(t, err.Error(), "20.00")
	assert.Equal(t, 2, res.Executed)
	assert.NotContains(t, out.String(), "Deposited")
}

func TestRunKeepGoing(t *testing.T) {
	r, out := newRunner(t, Options{KeepGoing: true}, nil)

	res, err := r.Run(strings.NewReader("deposit 5\nopen -10\nopen\ndeposit -5\ndeposit 5\nfly away\nbalance extra\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Executed)
	require.Len(t, res.Failed, 5)

	assert.True(t, errors.Is(res.Failed[0], service.ErrNoAccountSelected))
	assert.True(t, errors.Is(res.Failed[1], ledger.ErrInvalidAmount))
	assert.True(t, errors.Is(res.Failed[2], ledger.ErrInvalidAmount))
	assert.True(t, errors.Is(res.Failed[3], ErrUnknownCommand))
	assert.True(t, errors.Is(res.Failed[4], ErrUsage))
	assert.Contains(t, out.String(), "! line 2 (open -10)")
	assert.Contains(t, out.String(), "Created: Account #100001")
}

func TestRunLenientOpen(t *testing.T) {
	r, out := newRunner(t, Options{}, func(c *config.Config) { c.Ledger.LenientOpen = true })

	_, err := r.Run(strings.NewReader("open -10\nbalance\n"))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Initial balance cannot be negative. Setting balance to 0.")
	assert.Contains(t, out.String(), "Current Balance: 0.00")
}

func TestRunUseUnknownAccount(t *testing.T) {
	r, _ := newRunner(t, Options{}, nil)

	_, err := r.Run(strings.NewReader("open\nuse #999\n"))
	assert.True(t, errors.Is(err, service.ErrAccountNotFound))

	r, _ = newRunner(t, Options{}, nil)
	_, err = r.Run(strings.NewReader("use abc\n"))
	assert.Error(t, err)
}
