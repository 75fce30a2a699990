package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/hance08/bankbook/internal/ledger"
)

const DefaultTimeFormat = "2006-01-02 15:04:05"

type Config struct {
	Ledger     LedgerConfig  `mapstructure:"ledger"`
	Display    DisplayConfig `mapstructure:"display"`
	Log        LogConfig     `mapstructure:"log"`
	ConfigPath string        `mapstructure:"-"`
}

type LedgerConfig struct {
	AccountSeed int64 `mapstructure:"account_seed" validate:"gt=0"`
	LenientOpen bool  `mapstructure:"lenient_open"`
}

type DisplayConfig struct {
	TimeFormat     string `mapstructure:"time_format" validate:"required"`
	StatementStyle string `mapstructure:"statement_style" validate:"oneof=table plain"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	File  string `mapstructure:"file"`
}

func NewDefault() *Config {
	return &Config{
		Ledger:  LedgerConfig{AccountSeed: ledger.DefaultSeed},
		Display: DisplayConfig{TimeFormat: DefaultTimeFormat, StatementStyle: "table"},
		Log:     LogConfig{Level: "info"},
	}
}

// Validate checks field constraints after the config has been decoded.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("invalid config: %w", err)
	}

	fe := fieldErrs[0]
	return fmt.Errorf("invalid config value for %s: failed '%s' check (got %v)", fe.Namespace(), fe.Tag(), fe.Value())
}
