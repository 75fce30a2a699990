package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/bankbook/internal/app"
	"github.com/hance08/bankbook/internal/config"
	"github.com/hance08/bankbook/internal/constants"
	"github.com/hance08/bankbook/internal/errhandler"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// appState is filled in by the root command before any subcommand runs.
type appState struct {
	app     *app.App
	cleanup func()
}

func (s *appState) close() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func Execute() {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	state := &appState{}
	rootCmd := NewRootCmd(state)

	err := rootCmd.Execute()
	state.close()

	if err != nil {
		errhandler.HandleError(err)
		os.Exit(1)
	}
}

func NewRootCmd(state *appState) *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   constants.AppName,
		Short: "bankbook is a console bank-account ledger",
		Long: `bankbook keeps bank accounts in memory for one session: open accounts,
deposit, withdraw, check balances and print statements.

Without a subcommand it starts the interactive shell.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgFile)
			if err != nil {
				return err
			}

			application, cleanup, err := app.NewApp(cfg)
			if err != nil {
				return err
			}
			state.app = application
			state.cleanup = cleanup
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return newShellRunner(state.app).Run()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")

	rootCmd.AddCommand(NewShellCmd(state))
	rootCmd.AddCommand(NewRunCmd(state))
	rootCmd.AddCommand(NewInfoCmd(state))

	return rootCmd
}

func loadConfig(cfgFile string) (*config.Config, error) {
	v := viper.New()
	setDefaults(v, config.NewDefault())

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		appDir, err := getAppDataDir()
		if err != nil {
			return nil, fmt.Errorf("error getting app dir: %w", err)
		}

		v.AddConfigPath(appDir)
		v.SetConfigName(constants.ConfigName)
		v.SetConfigType(constants.ConfigType)

		if err := createDefaultConfig(v, appDir); err != nil {
			return nil, fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv() // allow using environment variables to override

	if err := v.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("config file error: %w", err)
		}
	}

	cfg := config.NewDefault()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = v.ConfigFileUsed()

	return cfg, nil
}

func setDefaults(v *viper.Viper, def *config.Config) {
	v.SetDefault("ledger.account_seed", def.Ledger.AccountSeed)
	v.SetDefault("ledger.lenient_open", def.Ledger.LenientOpen)
	v.SetDefault("display.time_format", def.Display.TimeFormat)
	v.SetDefault("display.statement_style", def.Display.StatementStyle)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.file", def.Log.File)
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, constants.FallbackAppDir), nil
	}

	return filepath.Join(configDir, constants.AppName), nil
}

func createDefaultConfig(v *viper.Viper, appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, constants.ConfigName+"."+constants.ConfigType)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := v.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
