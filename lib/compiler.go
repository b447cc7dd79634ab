package lib

import (
	"io"

	"github.com/charmbracelet/log"
)

// Compiler runs the lexer, parser and evaluator over a source, logging as it
// goes and writing diagnostics to its reporter. A Compiler is not safe for
// concurrent use.
type Compiler struct {
	config   Config
	logger   *log.Logger
	reporter *Reporter
}

// Result is the outcome of a successful compile. Expr is nil when the source
// held no tokens, in which case there is nothing to evaluate.
type Result struct {
	Tokens []Token
	Expr   Expression
	Value  float64
}

func (r Result) Empty() bool {
	return r.Expr == nil
}

// NewCompiler builds a compiler. Diagnostics go to diag and log records to
// logOut when logging is enabled.
func NewCompiler(cfg Config, diag io.Writer, logOut io.Writer) *Compiler {
	return &Compiler{
		config:   cfg,
		logger:   NewLogger(cfg.Logging, logOut),
		reporter: NewReporter(diag, cfg.Diagnostics.Color),
	}
}

// NewLogger returns a logger for cfg. Disabled logging discards everything.
func NewLogger(cfg LoggingConfig, w io.Writer) *log.Logger {
	if !cfg.Enabled || w == nil {
		return log.New(io.Discard)
	}
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "mathc",
		Level:  level,
	})
}

func (c *Compiler) Logger() *log.Logger {
	return c.logger
}

func (c *Compiler) Reporter() *Reporter {
	return c.reporter
}

// Tokenize lexes src, reporting every lexical error as it is found.
func (c *Compiler) Tokenize(src Source) ([]Token, error) {
	c.logger.Info("compiling math", "file", src.Filename, "bytes", len(src.Text))

	tokens, err := lex(src.Filename, src.Text, c.reporter.Report)
	if err != nil {
		c.logger.Debug("lexing failed", "errors", err.(*LexError).ErrorCount())
		return nil, err
	}
	if len(tokens) == 0 {
		c.logger.Info("there are no tokens")
	} else {
		c.logger.Debug("lexed", "tokens", len(tokens))
	}
	return tokens, nil
}

// Parse lexes and parses src.
func (c *Compiler) Parse(src Source) (Result, error) {
	tokens, err := c.Tokenize(src)
	if err != nil {
		return Result{}, err
	}

	expr, err := ParseTokens(src.Filename, tokens)
	if err != nil {
		c.reporter.ReportError(err)
		return Result{}, err
	}
	if expr != nil {
		c.logger.Debug("parsed", "expr", FormatInfix(expr))
	}
	return Result{Tokens: tokens, Expr: expr}, nil
}

// Compile lexes, parses and evaluates src.
func (c *Compiler) Compile(src Source) (Result, error) {
	res, err := c.Parse(src)
	if err != nil || res.Empty() {
		return res, err
	}

	res.Value = Evaluate(res.Expr)
	c.logger.Debug("evaluated", "value", res.Value)
	return res, nil
}
