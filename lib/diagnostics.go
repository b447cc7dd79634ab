package lib

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

type ErrorKind int

const (
	ErrorKindUnrecognizedSymbol ErrorKind = iota
	ErrorKindInvalidFloat
	ErrorKindSyntax
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindUnrecognizedSymbol:
		return "unrecognized symbol"
	case ErrorKindInvalidFloat:
		return "invalid floating number"
	case ErrorKindSyntax:
		return "syntax error"
	default:
		return "unknown error"
	}
}

// Diagnostic is a single error found in the source.
type Diagnostic struct {
	Kind     ErrorKind
	Filename string
	Location Location
	Fragment string
	Message  string
}

func (d Diagnostic) Error() string {
	return d.prefix() + "error " + d.Message
}

func (d Diagnostic) prefix() string {
	if d.Filename == "" {
		return fmt.Sprintf("%d:%d: ", d.Location.Line, d.Location.Col)
	}
	return fmt.Sprintf("%s:%d:%d: ", d.Filename, d.Location.Line, d.Location.Col)
}

// LexError is returned by Tokenize when one or more lexical errors occurred.
type LexError struct {
	Diagnostics []Diagnostic
}

func (e *LexError) Error() string {
	if len(e.Diagnostics) == 1 {
		return e.Diagnostics[0].Error()
	}
	lines := make([]string, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		lines[i] = d.Error()
	}
	return fmt.Sprintf("%d lexical errors:\n%s", len(e.Diagnostics), strings.Join(lines, "\n"))
}

func (e *LexError) ErrorCount() int {
	return len(e.Diagnostics)
}

func (e *LexError) Unwrap() []error {
	errs := make([]error, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		errs[i] = d
	}
	return errs
}

// SyntaxError is returned by the parser. No partial tree accompanies it.
type SyntaxError struct {
	Diagnostic
}

func newSyntaxError(filename string, loc Location, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Diagnostic{
		Kind:     ErrorKindSyntax,
		Filename: filename,
		Location: loc,
		Message:  fmt.Sprintf(format, args...),
	}}
}

func (e *SyntaxError) Unwrap() error {
	return e.Diagnostic
}

// Color modes accepted by DiagnosticsConfig.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Reporter writes diagnostics to a stream.
type Reporter struct {
	w          io.Writer
	errorStyle lipgloss.Style
	color      bool
}

func NewReporter(w io.Writer, colorMode string) *Reporter {
	color := useColor(w, colorMode)
	profile := termenv.Ascii
	if color {
		profile = termenv.ANSI
	}
	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(profile)
	return &Reporter{
		w:          w,
		errorStyle: renderer.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		color:      color,
	}
}

func useColor(w io.Writer, mode string) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (r *Reporter) Report(d Diagnostic) {
	label := "error"
	if r.color {
		label = r.errorStyle.Render(label)
	}
	fmt.Fprintf(r.w, "%s%s %s\n", d.prefix(), label, d.Message)
}

// ReportError writes every diagnostic carried by err. Errors that carry no
// diagnostics are written verbatim.
func (r *Reporter) ReportError(err error) {
	switch e := err.(type) {
	case *LexError:
		for _, d := range e.Diagnostics {
			r.Report(d)
		}
	case *SyntaxError:
		r.Report(e.Diagnostic)
	default:
		fmt.Fprintf(r.w, "%s\n", err)
	}
}
