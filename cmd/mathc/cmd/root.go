package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/graeme-hill/mathc-go/lib"
	"github.com/spf13/cobra"
)

// errReported means the failure was already written to stderr as
// diagnostics.
var errReported = errors.New("compilation failed")

type rootOptions struct {
	cfgFile     string
	inputFile   string
	inputString string
	outputFile  string
	emit        string
	format      string
}

func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintf(root.ErrOrStderr(), "ERROR: %v\n", err)
	}
	return err
}

func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "mathc",
		Short: "Arithmetic expression compiler",
		Long: `mathc lexes, parses and evaluates arithmetic expressions.

Numbers are decimal with an optional fraction. Operators are + - * / % ^
and parentheses. *, /, % and ^ share one precedence level and group to the
left, so 2 ^ 3 ^ 2 is 64. A minus written directly before a digit is part of
the number: write 3 - 4, not 3-4.

Examples:
  mathc -s "(3 + 4) * 2"
  mathc -i expr.txt --emit tokens
  mathc -s "2 ^ 3 ^ 2" --emit ast --format yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (TOML)")

	flags := root.Flags()
	flags.StringVarP(&opts.inputFile, "input", "i", "", "input file name")
	flags.StringVarP(&opts.inputString, "string", "s", "", "input as string")
	flags.StringVarP(&opts.outputFile, "output", "o", "", "output file name (reserved, code generation is not implemented)")
	flags.StringVar(&opts.emit, "emit", emitValue, "what to print: value, tokens, ast or check")
	flags.StringVar(&opts.format, "format", formatText, "ast format: text, infix or yaml")
	root.MarkFlagsMutuallyExclusive("input", "string")
	root.MarkFlagsOneRequired("input", "string")

	root.AddCommand(newBatchCmd(opts))
	root.AddCommand(newHistoryCmd(opts))
	root.AddCommand(newMigrateCmd(opts))

	return root
}

const (
	emitValue  = "value"
	emitTokens = "tokens"
	emitAST    = "ast"
	emitCheck  = "check"

	formatText  = "text"
	formatInfix = "infix"
	formatYAML  = "yaml"
)

func loadConfig(path string) (lib.Config, error) {
	cfg, err := lib.LoadConfig(path)
	if err != nil {
		return lib.Config{}, err
	}
	cfg.ApplyEnv(os.Getenv)
	return cfg, nil
}

// openJournal returns nil when no journal is configured.
func openJournal(ctx context.Context, cfg lib.Config, logger *log.Logger) (*lib.Journal, error) {
	if cfg.Journal.Driver == "" {
		return nil, nil
	}
	j, err := lib.OpenJournal(ctx, cfg.Journal.Driver, cfg.Journal.DSN)
	if err != nil {
		return nil, err
	}
	ran, err := j.Migrate(ctx)
	if err != nil {
		j.Close()
		return nil, err
	}
	for _, name := range ran {
		logger.Info("applied journal migration", "name", name)
	}
	return j, nil
}

func runRoot(cmd *cobra.Command, opts *rootOptions) error {
	switch opts.emit {
	case emitValue, emitTokens, emitAST, emitCheck:
	default:
		return fmt.Errorf("invalid --emit '%s'", opts.emit)
	}
	switch opts.format {
	case formatText, formatInfix, formatYAML:
	default:
		return fmt.Errorf("invalid --format '%s'", opts.format)
	}

	cfg, err := loadConfig(opts.cfgFile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	c := lib.NewCompiler(cfg, cmd.ErrOrStderr(), cmd.ErrOrStderr())

	if cmd.Flags().Changed("output") {
		c.Logger().Warn("code generation is not implemented, ignoring output file", "file", opts.outputFile)
	}

	src := lib.StringSource(opts.inputString)
	if opts.inputFile != "" {
		src, err = lib.ReadSourceFile(opts.inputFile)
		if err != nil {
			return fmt.Errorf("could not read %s: %w", opts.inputFile, err)
		}
	}

	switch opts.emit {
	case emitTokens:
		tokens, err := c.Tokenize(src)
		if err != nil {
			return errReported
		}
		for _, tok := range tokens {
			fmt.Fprintln(out, tok)
		}
		return nil
	case emitAST, emitCheck:
		res, err := c.Parse(src)
		if err != nil {
			return errReported
		}
		if opts.emit == emitCheck || res.Empty() {
			return nil
		}
		return writeAST(out, res.Expr, opts.format)
	}

	res, err := c.Compile(src)
	if err != nil {
		return errReported
	}
	if res.Empty() {
		return nil
	}
	fmt.Fprintln(out, formatValue(res.Value))

	ctx := cmd.Context()
	j, err := openJournal(ctx, cfg, c.Logger())
	if err != nil || j == nil {
		return err
	}
	defer j.Close()

	_, err = j.Record(ctx, lib.Entry{Filename: src.Filename, Source: string(src.Text), Result: res.Value})
	return err
}

func writeAST(w io.Writer, expr lib.Expression, format string) error {
	switch format {
	case formatYAML:
		out, err := lib.MarshalYAML(expr)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	case formatInfix:
		_, err := fmt.Fprintln(w, lib.FormatInfix(expr))
		return err
	default:
		return lib.WriteTree(w, expr)
	}
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
