package app

import (
	"fmt"
	"os"

	"github.com/hance08/bankbook/internal/config"
	"github.com/hance08/bankbook/internal/ledger"
	"github.com/hance08/bankbook/internal/logger"
	"github.com/hance08/bankbook/internal/service"
	"go.uber.org/zap"
)

type App struct {
	Config   *config.Config
	Registry *ledger.Registry
	Session  *service.Session
	Logger   *zap.Logger
}

// NewApp validates config, builds the logger, the account registry and the
// session, then returns the App together with its cleanup function.
func NewApp(cfg *config.Config, opts ...ledger.Option) (*App, func(), error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	appLogger, err := logger.New(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	reg := ledger.NewRegistry(cfg.Ledger.AccountSeed)
	session := service.NewSession(reg, cfg, appLogger.With(zap.String("component", "Session")), opts...)

	appLogger.Debug("application initialized",
		zap.Int64("account_seed", cfg.Ledger.AccountSeed),
		zap.Bool("lenient_open", cfg.Ledger.LenientOpen),
		zap.String("config", cfg.ConfigPath))

	cleanup := func() {
		// Sync on stderr returns EINVAL/ENOTTY on some platforms; ignore it there.
		if err := appLogger.Sync(); err != nil && cfg.Log.File != "" {
			fmt.Fprintf(os.Stderr, "Error flushing log: %v\n", err)
		}
	}

	return &App{
		Config:   cfg,
		Registry: reg,
		Session:  session,
		Logger:   appLogger,
	}, cleanup, nil
}

// OpenMode names the configured account opening behaviour.
func (a *App) OpenMode() string {
	if a.Config.Ledger.LenientOpen {
		return "lenient"
	}
	return "strict"
}

// LogDestination is where structured logs are written.
func (a *App) LogDestination() string {
	if a.Config.Log.File == "" {
		return "stderr"
	}
	return a.Config.Log.File
}
