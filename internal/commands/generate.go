package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petrelhq/petrel/internal/recipe"
)

// GenerateCmd creates the 'generate' command, which synthesizes the
// OpenRewrite recipe document from detected patterns.
func GenerateCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "generate [path]",
		Short: "Generate an OpenRewrite recipe from detected patterns",
		Long: `Analyze a Gradle project and write a declarative migration recipe
to <output-dir>/generated-migrations.yml.

Automatable findings are deduplicated into recipe entries; findings
without an automated fix are rendered as review comments.

Examples:
  petrel generate
  petrel generate ../legacy-service --output-dir .rewrite`,
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

			gen := recipe.NewGenerator(result.OutputDir)
			path, _, err := gen.Generate(result.Result.Findings)
			if err != nil {
				// Render failures are fatal for this mode.
				return err
			}
			rep.RecipePath = path

			if opts.JSON {
				return rep.WriteJSON(cmd.OutOrStdout())
			}

			groups, manual := recipe.Dedupe(result.Result.Findings)
			opts.Printer.Success("Recipe written: " + path)
			opts.Printer.Step(fmt.Sprintf("%d automated transformation(s), %d manual review item(s)", len(groups), len(manual)))
			opts.Printer.Step("Apply with: petrel run --recipe " + recipe.RecipeName)
			return nil
		},
	}
}
