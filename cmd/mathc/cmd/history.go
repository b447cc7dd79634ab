package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/graeme-hill/mathc-go/lib"
	"github.com/spf13/cobra"
)

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	limit := 20

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recent evaluations from the journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.cfgFile)
			if err != nil {
				return err
			}

			logger := lib.NewLogger(cfg.Logging, cmd.ErrOrStderr())
			j, err := openJournal(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			if j == nil {
				return errors.New("journal is not configured, set [journal] driver and dsn")
			}
			defer j.Close()

			entries, err := j.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-12s  %s\n",
					e.EvaluatedAt.Format(time.RFC3339),
					formatValue(e.Result),
					strings.Join(strings.Fields(e.Source), " "))
			}
			return nil
		},
	}

	historyCmd.Flags().IntVarP(&limit, "limit", "n", limit, "number of entries to show")
	return historyCmd
}
