// Package cli provides common CLI initialization utilities: environment
// loading, logging setup and wiring the ledger service onto the configured
// storage backend.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/joho/godotenv"

	"budgethub/internal/backend"
	"budgethub/internal/config"
	"budgethub/internal/ledger"
	applog "budgethub/internal/log"
	"budgethub/internal/services"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile(filenames ...string) {
	_ = godotenv.Load(filenames...)
}

// SetupLogger initializes structured logging at the configured level and
// sets it as the default logger.
func SetupLogger(out io.Writer, level string) (*applog.Logger, error) {
	lvl, err := applog.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := applog.DefaultConfig()
	cfg.Level = lvl
	cfg.Component = applog.ComponentCLI
	cfg.Output = out

	logger := applog.New(cfg)
	applog.SetDefault(logger)
	return logger, nil
}

// LoadAndValidateConfig loads configuration from the environment and
// validates it.
func LoadAndValidateConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// App bundles what a command needs to run.
type App struct {
	Service *services.LedgerService
	Logger  *applog.Logger
	backend *backend.BackendResult
}

// Close releases the storage backend.
func (a *App) Close() error {
	if err := a.backend.Close(); err != nil {
		return err
	}
	a.Logger.Debug("Backend closed", applog.FieldOperation, applog.OpShutdown)
	return nil
}

// NewApp opens the configured backend and builds the ledger service on top
// of it.
func NewApp(ctx context.Context, cfg *config.Config, logger *applog.Logger, opts ...services.Option) (*App, error) {
	bcfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		fields := applog.NewFields().
			WithOperation(applog.OpStartup).
			WithError(err)
		fields[applog.FieldErrorType] = applog.ErrorTypeConfiguration
		logger.ErrorContext(ctx, "Invalid backend configuration", fields.ToSlice()...)
		return nil, err
	}

	res, err := backend.NewFactory(logger).CreateBackend(ctx, bcfg)
	if err != nil {
		fields := applog.NewFields().
			WithOperation(applog.OpStartup).
			WithError(err)
		fields[applog.FieldBackend] = bcfg.Type.String()
		fields[applog.FieldErrorType] = applog.ErrorTypeStorage
		logger.ErrorContext(ctx, "Failed to open backend", fields.ToSlice()...)
		return nil, fmt.Errorf("open %s backend: %w", bcfg.Type, err)
	}

	repo := ledger.NewRepository(res.Store, cfg.LedgerKey, logger)
	logger.DebugContext(ctx, "Ledger ready",
		applog.FieldOperation, applog.OpStartup,
		applog.FieldBackend, bcfg.Type.String(),
		applog.FieldKey, repo.Key())
	return &App{
		Service: services.NewLedgerService(repo, logger, opts...),
		Logger:  logger,
		backend: res,
	}, nil
}
