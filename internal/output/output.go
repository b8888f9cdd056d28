// Package output provides styled terminal output for the Petrel CLI.
//
// Unlike a package-level verbose switch, the Printer is an explicit value
// threaded through every component entry point, so behavior never depends
// on global state.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Printer writes styled messages to its output streams.
type Printer struct {
	verbose bool
	out     io.Writer
	errOut  io.Writer
}

// New creates a Printer writing to stdout/stderr.
func New(verbose bool) *Printer {
	return NewWithWriters(verbose, os.Stdout, os.Stderr)
}

// NewWithWriters creates a Printer with explicit streams, mainly for tests.
func NewWithWriters(verbose bool, out, errOut io.Writer) *Printer {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Printer{verbose: verbose, out: out, errOut: errOut}
}

// IsVerbose reports whether diagnostic output is enabled.
func (p *Printer) IsVerbose() bool {
	return p.verbose
}

// Out returns the standard output stream of this printer.
func (p *Printer) Out() io.Writer {
	return p.out
}

// ErrOut returns the diagnostic stream of this printer.
func (p *Printer) ErrOut() io.Writer {
	return p.errOut
}

// Success prints a completed-operation message.
func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.out, successStyle.Render("✔ "+msg))
}

// Error prints a failure that needs user attention.
func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.errOut, errorStyle.Render("✖ "+msg))
}

// Warn prints a recoverable problem. Degraded fallbacks always announce
// themselves through here; they are never silent.
func (p *Printer) Warn(msg string) {
	fmt.Fprintln(p.errOut, warnStyle.Render("⚠ "+msg))
}

// Info prints a status update or explanation.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.out, infoStyle.Render("ℹ "+msg))
}

// Step prints an indented actionable sub-item.
func (p *Printer) Step(msg string) {
	fmt.Fprintln(p.out, stepStyle.Render("   "+msg))
}

// Verbose prints a diagnostic message to the error stream when verbose
// mode is enabled.
func (p *Printer) Verbose(msg string) {
	if p.verbose {
		fmt.Fprintln(p.errOut, stepStyle.Render("· "+msg))
	}
}
