// Package ui renders password strength assessments in a terminal.
package ui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// OutputMode determines how output should be formatted.
type OutputMode int

const (
	// OutputModeInteractive enables colors and unicode icons.
	OutputModeInteractive OutputMode = iota
	// OutputModePlain disables colors for piped output.
	OutputModePlain
	// OutputModeJSON outputs JSON only.
	OutputModeJSON
	// OutputModeYAML outputs YAML only.
	OutputModeYAML
)

// UI bundles the writers and styles of one command invocation.
type UI struct {
	Mode   OutputMode
	Writer io.Writer
	Styles *Styles
}

// New creates a UI, detecting whether w is a terminal.
func New(w io.Writer, format string) *UI {
	mode := detectMode(w, format)
	return &UI{
		Mode:   mode,
		Writer: w,
		Styles: NewStyles(mode == OutputModeInteractive),
	}
}

func detectMode(w io.Writer, format string) OutputMode {
	switch format {
	case "json":
		return OutputModeJSON
	case "yaml":
		return OutputModeYAML
	}

	if IsTerminal(w) {
		return OutputModeInteractive
	}
	return OutputModePlain
}

// IsTerminal reports whether v is an *os.File attached to a terminal.
func IsTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
