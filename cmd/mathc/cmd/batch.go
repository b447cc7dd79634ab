package cmd

import (
	"fmt"

	"github.com/graeme-hill/mathc-go/lib"
	"github.com/spf13/cobra"
)

func newBatchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <dir>",
		Short: "Evaluate every expression file in a directory",
		Long: `Evaluates each file in a directory as one expression and prints
"<name>\t<value>" per file. Files that fail are reported on stderr and the
remaining files are still evaluated.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd, opts, args[0])
		},
	}
}

func runBatch(cmd *cobra.Command, opts *rootOptions, dir string) error {
	cfg, err := loadConfig(opts.cfgFile)
	if err != nil {
		return err
	}

	sources, err := lib.ReadSourcesFromDir(dir)
	if err != nil {
		return err
	}

	c := lib.NewCompiler(cfg, cmd.ErrOrStderr(), cmd.ErrOrStderr())
	ctx := cmd.Context()

	j, err := openJournal(ctx, cfg, c.Logger())
	if err != nil {
		return err
	}
	if j != nil {
		defer j.Close()
	}

	failed := 0
	for _, src := range sources {
		res, err := c.Compile(src)
		if err != nil {
			failed++
			continue
		}
		if res.Empty() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t-\n", src.Name())
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", src.Name(), formatValue(res.Value))

		if j == nil {
			continue
		}
		entry := lib.Entry{Filename: src.Filename, Source: string(src.Text), Result: res.Value}
		if _, err := j.Record(ctx, entry); err != nil {
			return err
		}
	}

	if failed > 0 {
		c.Logger().Error("batch finished with failures", "failed", failed, "total", len(sources))
		return errReported
	}
	return nil
}
