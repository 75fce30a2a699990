package errhandler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
)

func TestIsCancelled(t *testing.T) {
	assert.False(t, IsCancelled(nil))
	assert.True(t, IsCancelled(terminal.InterruptErr))
	assert.True(t, IsCancelled(fmt.Errorf("prompt: %w", huh.ErrUserAborted)))
	assert.False(t, IsCancelled(errors.New("insufficient funds: current balance 20.00")))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Deposit amount must be positive", Message(errors.New("deposit amount must be positive")))
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "Ärger", Capitalize("ärger"))
}
