package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/sports-catalog-service/internal/catalog"
	"github.com/preston-bernstein/sports-catalog-service/internal/config"
	"github.com/preston-bernstein/sports-catalog-service/internal/logging"
	"github.com/preston-bernstein/sports-catalog-service/internal/server"
)

// lister is the slice of the Navigator the CLI needs.
type lister interface {
	List(ctx context.Context, q catalog.Query) catalog.Result
}

// navigatorFactory builds a lister and a func releasing its resources.
type navigatorFactory func(cfg config.Config, logger *slog.Logger) (lister, func() error)

func defaultNavigator(cfg config.Config, logger *slog.Logger) (lister, func() error) {
	return server.NewNavigator(cfg, logger)
}

func newRootCmd(factory navigatorFactory) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Browse the sports catalog from the command line",
		Long:          "Browse the league > date > game > feed > quality catalog in-process, using the same environment configuration as the service.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log upstream activity to stderr")

	newLogger := func(cmd *cobra.Command, cfg config.Config) *slog.Logger {
		if !verbose {
			return slog.New(slog.NewTextHandler(io.Discard, nil))
		}
		return logging.NewLogger(logging.Config{
			Level:   "debug",
			Format:  cfg.Logging.Format,
			Service: "catalogctl",
			Output:  cmd.ErrOrStderr(),
		})
	}

	root.AddCommand(newListCmd(factory, newLogger))
	return root
}
