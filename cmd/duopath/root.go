package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/duopath/config"
	"github.com/katalvlaran/duopath/logging"
	"github.com/katalvlaran/duopath/telemetry"
)

// app is the state shared by the subcommands once the root has run.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg      config.Config
	logger   *slog.Logger
	shutdown func(context.Context) error
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "duopath",
		Short:         "Two-agent shortest coordinated paths under a distance constraint",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if a.shutdown == nil {
				return nil
			}
			return a.shutdown(cmd.Context())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text or json")

	root.AddCommand(newSolveCmd(a), newBatchCmd(a), newGenerateCmd(a))

	return root
}

// setup loads the configuration, applies the global flag overrides and
// installs logging and tracing.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Logging.Format = a.logFormat
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.New(cfg.Logging, cmd.ErrOrStderr())

	a.shutdown, err = telemetry.Init(cfg.Telemetry, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.logger.Debug("configuration loaded", "path", a.configPath, "tracing", cfg.Telemetry.Tracing)

	return nil
}
