package cmd

import (
	"errors"
	"fmt"

	"github.com/graeme-hill/mathc-go/lib"
	"github.com/spf13/cobra"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the journal schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.cfgFile)
			if err != nil {
				return err
			}
			if cfg.Journal.Driver == "" {
				return errors.New("journal is not configured, set [journal] driver and dsn")
			}

			j, err := lib.OpenJournal(cmd.Context(), cfg.Journal.Driver, cfg.Journal.DSN)
			if err != nil {
				return err
			}
			defer j.Close()

			ran, err := j.Migrate(cmd.Context())
			if err != nil {
				return err
			}
			if len(ran) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "journal is up to date")
			}
			for _, name := range ran {
				fmt.Fprintf(cmd.OutOrStdout(), "applied %s\n", name)
			}
			return nil
		},
	}
}
