package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrNotANumber      = errors.New("invalid amount entered, please enter a number")
	ErrTooManyDecimals = errors.New("amount can have at most two decimal places")
	ErrAmountTooLarge  = errors.New("amount is too large")
)

const (
	// MaxDecimalPlaces is the finest unit an amount may carry (cents).
	MaxDecimalPlaces = 2
	// MaxIntegerDigits bounds amounts below 10^15.
	MaxIntegerDigits = 15
)

// ParseAmount turns user text into a decimal. Sign checks are left to the
// ledger so that the user sees the ledger's own message.
func ParseAmount(input string) (decimal.Decimal, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return decimal.Zero, ErrNotANumber
	}

	amount, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrNotANumber, input)
	}
	if err := checkBounds(amount); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", err, input)
	}
	return amount, nil
}

// checkBounds looks only at the coefficient and exponent, so inputs like
// 1e20000000 are rejected without ever being expanded.
func checkBounds(amount decimal.Decimal) error {
	if amount.IsZero() {
		return nil
	}

	exp := int64(amount.Exponent())
	if int64(amount.NumDigits())+exp > MaxIntegerDigits {
		return ErrAmountTooLarge
	}

	if exp < -MaxDecimalPlaces {
		// 12.340 is fine, 12.345 is not.
		if exp < -(MaxIntegerDigits+MaxDecimalPlaces) || !amount.Equal(amount.Truncate(MaxDecimalPlaces)) {
			return ErrTooManyDecimals
		}
	}
	return nil
}

// ValidateAmount is the prompt validator for deposit and withdrawal input.
func ValidateAmount(input string) error {
	amount, err := ParseAmount(input)
	if err != nil {
		return err
	}
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}
	return nil
}

// ValidateInitialBalance validates initial balance input.
// Empty input means zero. Accepts any for survey compatibility.
func ValidateInitialBalance(val any) error {
	input, ok := val.(string)
	if !ok {
		return fmt.Errorf("balance must be a string")
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}

	amount, err := ParseAmount(input)
	if err != nil {
		return err
	}
	if amount.IsNegative() {
		return fmt.Errorf("initial balance can't be negative")
	}
	return nil
}

// ParseInitialBalance is ParseAmount with empty input treated as zero.
func ParseInitialBalance(input string) (decimal.Decimal, error) {
	if strings.TrimSpace(input) == "" {
		return decimal.Zero, nil
	}
	return ParseAmount(input)
}
