// Package commands wires the Petrel CLI. Each mode is its own cobra
// command, matched once at the top level; shared flags live in Options
// and are threaded explicitly instead of through package globals.
package commands

import (
	"errors"

	"github.com/spf13/cobra"

	petrel "github.com/petrelhq/petrel"
	"github.com/petrelhq/petrel/internal/output"
)

// ErrInvalidInput marks bad invocations: missing project path, path not
// a directory, malformed arguments. Mapped to exit code 2.
var ErrInvalidInput = errors.New("invalid input")

// ErrIssuesFound is returned by analyze after reporting, so the process
// exits non-zero when the project has findings. Mapped to exit code 1.
var ErrIssuesFound = errors.New("issues found")

// Options carries the process-wide flag values. Built once by the root
// command and passed to every component entry point.
type Options struct {
	JSON      bool
	Verbose   bool
	OutputDir string

	Printer *output.Printer
}

// RootCmd creates and returns the root command for the Petrel CLI.
func RootCmd(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "petrel",
		Short: "Gradle build-health analyzer and migration recipe generator",
		Long: `Petrel analyzes Gradle projects for build anti-patterns and produces
an ordered remediation plan plus OpenRewrite migration recipes.

Petrel helps you:
• Detect deprecated configurations, legacy plugin usage, and repository rot
• Classify project complexity and pick a remediation strategy
• Generate declarative migration recipes you can apply with OpenRewrite

It never modifies your build outside explicit 'run' invocations.`,
		Version:       petrel.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.Printer = output.New(opts.Verbose)
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.JSON, "json", false, "Emit structured JSON instead of console text")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable diagnostic output on stderr")
	cmd.PersistentFlags().StringVar(&opts.OutputDir, "output-dir", "", `Directory for generated recipe documents (default ".rewrite")`)

	return cmd
}

// Execute builds the command tree, runs it, and maps errors to process
// exit codes: 0 clean, 1 issues or failure, 2 invalid input.
func Execute() int {
	opts := &Options{}

	root := RootCmd(opts)
	root.AddCommand(ListCmd(opts))
	root.AddCommand(SuggestCmd(opts))
	root.AddCommand(AnalyzeCmd(opts))
	root.AddCommand(GenerateCmd(opts))
	root.AddCommand(RunCmd(opts))

	err := root.Execute()
	if err == nil {
		return 0
	}

	if opts.Printer == nil {
		opts.Printer = output.New(false)
	}

	switch {
	case errors.Is(err, ErrIssuesFound):
		// Already reported by the command; the error only carries the code.
		return 1
	case errors.Is(err, ErrInvalidInput):
		opts.Printer.Error(err.Error())
		return 2
	default:
		opts.Printer.Error(err.Error())
		return 1
	}
}
