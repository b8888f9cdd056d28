package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// SuggestCmd creates the 'suggest' command: strategy recommendation and
// migration plan without the full findings listing.
func SuggestCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest [path]",
		Short: "Recommend a remediation strategy and migration plan",
		Long: `Analyze a Gradle project and print the recommended remediation
strategy with an ordered migration plan.

Examples:
  petrel suggest
  petrel suggest ../legacy-service --json`,
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
				view := struct {
					Strategy   string `json:"strategy"`
					Complexity string `json:"complexity"`
					Issues     int    `json:"total_issues"`
					Plan       any    `json:"migration_plan"`
				}{
					Strategy:   string(rep.Strategy),
					Complexity: string(rep.Tier),
					Issues:     rep.TotalIssues,
					Plan:       rep.Steps,
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(view)
			}

			opts.Printer.Info(fmt.Sprintf("Complexity: %s, issues: %d", rep.Tier, rep.TotalIssues))
			opts.Printer.Info("Recommended strategy: " + string(rep.Strategy))
			for _, step := range rep.Steps {
				opts.Printer.Step(fmt.Sprintf("%d. %s [%s, %s]", step.Order, step.Description, step.Engine, step.Effort))
			}
			return nil
		},
	}
}
