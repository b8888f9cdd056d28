package commands

import (
	"github.com/spf13/cobra"
)

// AnalyzeCmd creates the 'analyze' command: the full report.
func AnalyzeCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [path]",
		Short: "Run the full build-health analysis",
		Long: `Analyze a Gradle project: environment metadata, anti-pattern
findings, complexity classification, strategy, and migration plan.

Exits 0 when the project is clean and 1 when issues were found.

Examples:
  petrel analyze
  petrel analyze ../legacy-service --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveRoot(args)
			if err != nil {
				return err
			}

			result, err := analyzeProject(cmd.Context(), root, opts)
			if err != nil {
				return err
			}
			rep := result.Report

			if opts.JSON {
				if err := rep.WriteJSON(cmd.OutOrStdout()); err != nil {
					return err
				}
			} else {
				if err := rep.WriteConsole(cmd.OutOrStdout()); err != nil {
					return err
				}
			}

			if rep.TotalIssues > 0 {
				return ErrIssuesFound
			}
			return nil
		},
	}
}
