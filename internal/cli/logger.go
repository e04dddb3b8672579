package cli

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// newLogger returns the CLI logger. Verbose enables debug output, quiet
// discards everything, and the default only shows warnings and errors.
func newLogger(w io.Writer, verbose, quiet bool) hclog.Logger {
	if quiet {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "swatch",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	}

	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "swatch",
		Output: w,
		Level:  level,
	})
}
