// Package logging builds the logr.Logger used by the janitor CLI.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/mattn/go-isatty"
)

// Format selects how log lines are rendered.
type Format string

const (
	// FormatAuto renders text on a terminal and JSON otherwise.
	FormatAuto Format = "auto"
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a --log-format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown log format %q (want auto, text or json)", s)
	}
}

// New returns a logger writing to w. Verbosity enables V(n) lines up to n.
func New(w io.Writer, format Format, verbosity int) logr.Logger {
	if format == FormatAuto {
		format = FormatText
		if !IsTerminal(w) {
			format = FormatJSON
		}
	}

	write := func(prefix, args string) {
		if prefix != "" {
			_, _ = fmt.Fprintf(w, "%s: %s\n", prefix, args)
			return
		}
		_, _ = fmt.Fprintln(w, args)
	}

	opts := funcr.Options{
		LogTimestamp: true,
		Verbosity:    verbosity,
	}

	if format == FormatJSON {
		return funcr.NewJSON(func(obj string) { write("", obj) }, opts)
	}
	return funcr.New(write, opts)
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
