package cmd

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/hance08/bankbook/internal/app"
	"github.com/hance08/bankbook/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShell(t *testing.T, answer bool, answerErr error) (*shellRunner, *[]string) {
	t.Helper()
	cfg := config.NewDefault()
	cfg.Log.File = filepath.Join(t.TempDir(), "shell.log")

	application, cleanup, err := app.NewApp(cfg)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	var asked []string
	runner := newShellRunner(application)
	runner.confirm = func(message string, defaultValue bool) (bool, error) {
		assert.False(t, defaultValue)
		asked = append(asked, message)
		return answer, answerErr
	}
	return runner, &asked
}

func TestConfirmExitWithoutAccounts(t *testing.T) {
	runner, asked := newTestShell(t, false, nil)

	leave, err := runner.confirmExit()
	require.NoError(t, err)
	assert.True(t, leave)
	assert.Empty(t, *asked)
}

func TestConfirmExitAsksWhenAccountsExist(t *testing.T) {
	runner, asked := newTestShell(t, false, nil)
	_, _, err := runner.app.Session.CreateAccount("10")
	require.NoError(t, err)

	leave, err := runner.confirmExit()
	require.NoError(t, err)
	assert.False(t, leave)
	require.Len(t, *asked, 1)
	assert.Contains(t, (*asked)[0], "discard 1 account(s)")
}

func TestConfirmExitAccepted(t *testing.T) {
	runner, _ := newTestShell(t, true, nil)
	_, _, err := runner.app.Session.CreateAccount("")
	require.NoError(t, err)

	leave, err := runner.confirmExit()
	require.NoError(t, err)
	assert.True(t, leave)
}

func TestConfirmExitPropagatesPromptError(t *testing.T) {
	boom := errors.New("no terminal")
	runner, _ := newTestShell(t, true, boom)
	_, _, err := runner.app.Session.CreateAccount("")
	require.NoError(t, err)

	_, err = runner.confirmExit()
	assert.ErrorIs(t, err, boom)
}
