package cmd

import (
	"github.com/hance08/bankbook/internal/app"
	"github.com/hance08/bankbook/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	app *app.App
}

func NewInfoCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, account numbering and logging details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				app: state.app,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.app.Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	items := views.SystemInfoItem{
		ConfigPath:     configPath,
		AccountSeed:    cfg.Ledger.AccountSeed,
		NextAccountID:  r.app.Session.NextAccountID(),
		OpenMode:       r.app.OpenMode(),
		TimeFormat:     cfg.Display.TimeFormat,
		StatementStyle: cfg.Display.StatementStyle,
		LogLevel:       cfg.Log.Level,
		LogDestination: r.app.LogDestination(),
	}

	return views.RenderSystemInfo(items)
}
