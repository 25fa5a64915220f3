package main

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"budgethub/internal/cli"
	applog "budgethub/internal/log"
)

// Globals holds options shared by every command
type Globals struct {
	EnvFile string `name:"env-file" default:".env" help:"Optional dotenv file to load before reading configuration."`
}

var app struct {
	Globals Globals `embed:""`

	Contribute contributeCmd `cmd:"" help:"Record money put toward the shared goal."`
	Spend      spendCmd      `cmd:"" help:"Record an expense."`
	Delete     deleteCmd     `cmd:"" help:"Delete a transaction by id."`
	Goal       goalCmd       `cmd:"" help:"Set the shared savings goal."`
	Dashboard  dashboardCmd  `cmd:"" help:"Show totals, goal progress, this month and categories."`
	List       listCmd       `cmd:"" help:"List transactions, newest first."`
}

// runContext is bound into every command's Run method
type runContext struct {
	App *cli.App
	Ctx context.Context
	Out io.Writer
}

func main() {
	kctx := kong.Parse(&app,
		kong.Name("budgethub"),
		kong.Description("Shared household budget tracker."),
		kong.UsageOnError(),
	)

	cli.LoadEnvFile(app.Globals.EnvFile)

	cfg, err := cli.LoadAndValidateConfig()
	kctx.FatalIfErrorf(err)

	logger, err := cli.SetupLogger(os.Stderr, cfg.LogLevel)
	kctx.FatalIfErrorf(err)

	ctx := applog.WithContext(context.Background(), logger.With(applog.FieldCommand, kctx.Command()))
	a, err := cli.NewApp(ctx, cfg, logger)
	kctx.FatalIfErrorf(err)

	runErr := kctx.Run(&runContext{App: a, Ctx: ctx, Out: os.Stdout})
	if err := a.Close(); err != nil {
		applog.FromContext(ctx).Error("Failed to close backend", applog.FieldError, err)
	}
	kctx.FatalIfErrorf(runErr)
}
