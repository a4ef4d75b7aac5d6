package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/sports-catalog-service/internal/catalog"
	"github.com/preston-bernstein/sports-catalog-service/internal/config"
	"github.com/preston-bernstein/sports-catalog-service/internal/logging"
)

type listOptions struct {
	start  int
	limit  int
	asJSON bool
}

func newListCmd(factory navigatorFactory, newLogger func(*cobra.Command, config.Config) *slog.Logger) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list [token]",
		Short: "List the children of a catalog node",
		Long:  "List the children of the catalog node identified by token. Without a token the root (leagues) is listed.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.start < 0 || opts.limit < 0 {
				return fmt.Errorf("start and limit must be non-negative")
			}
			token := ""
			if len(args) == 1 {
				token = args[0]
			}

			cfg := config.Load()
			logger := newLogger(cmd, cfg)
			nav, closeFn := factory(cfg, logger)
			defer func() {
				if err := closeFn(); err != nil {
					logging.Warn(logger, "close catalog", logging.FieldError, err)
				}
			}()

			res := nav.List(cmd.Context(), catalog.Query{Token: token, StartIndex: opts.start, Limit: opts.limit})
			if opts.asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			return printTable(cmd, res)
		},
	}

	cmd.Flags().IntVar(&opts.start, "start", 0, "Index of the first item to return")
	cmd.Flags().IntVar(&opts.limit, "limit", catalog.MaxPageSize, "Maximum number of items to return")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print the raw listing as JSON")
	return cmd
}

func printTable(cmd *cobra.Command, res catalog.Result) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tNAME\tID")
	for _, item := range res.Items {
		kind := string(item.Kind)
		if item.Playable() {
			kind = "stream"
			if item.IsLiveStream {
				kind = "live"
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", kind, item.Name, item.ID)
		for _, src := range item.MediaSources {
			fmt.Fprintf(w, "\t  %d kbps\t%s\n", src.Bitrate/1000, src.Path)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%d of %d items\n", len(res.Items), res.TotalRecordCount)
	return err
}
