package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// AmountError reports a rejected amount. It matches ErrInvalidAmount.
type AmountError struct {
	Reason string
	Amount decimal.Decimal
}

func (e *AmountError) Error() string {
	return e.Reason
}

func (e *AmountError) Is(target error) bool {
	return target == ErrInvalidAmount
}

// InsufficientFundsError reports a withdrawal larger than the balance.
// It matches ErrInsufficientFunds.
type InsufficientFundsError struct {
	Balance   decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: current balance %s", e.Balance.StringFixed(2))
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

func invalidAmount(reason string, amount decimal.Decimal) error {
	return &AmountError{Reason: reason, Amount: amount}
}
