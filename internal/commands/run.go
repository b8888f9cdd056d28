package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petrelhq/petrel/internal/runner"
)

// RunCmd creates the 'run' command, which applies recipes through the
// OpenRewrite Gradle plugin.
func RunCmd(opts *Options) *cobra.Command {
	var recipes []string
	var additionalDeps []string
	var dryRun, failOnDryRun bool

	cmd := &cobra.Command{
		Use:   "run [path]",
		Short: "Apply migration recipes to a project",
		Long: `Apply one or more OpenRewrite recipes to a Gradle project.

Petrel renders an init script into the output directory and invokes the
rewrite task through the project's Gradle entry point. With --dry-run the
plugin only reports what would change; project files are left untouched.

Examples:
  petrel run --recipe dev.petrel.GeneratedMigrations
  petrel run ../legacy-service --recipe dev.petrel.GeneratedMigrations --dry-run
  petrel run --recipe dev.petrel.GeneratedMigrations --dry-run --fail-on-dry-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(recipes) == 0 {
				return fmt.Errorf("%w: at least one --recipe is required", ErrInvalidInput)
			}

			root, err := resolveRoot(args)
			if err != nil {
				return err
			}

			result, err := analyzeProject(cmd.Context(), root, opts)
			if err != nil {
				return err
			}

			r := runner.New(opts.Printer, result.OutputDir)
			err = r.Run(cmd.Context(), root, runner.Options{
				Recipes:        recipes,
				DryRun:         dryRun,
				AdditionalDeps: additionalDeps,
				FailOnDryRun:   failOnDryRun,
			})
			if errors.Is(err, runner.ErrChangesPending) {
				opts.Printer.Warn("dry run reports pending changes")
				return ErrIssuesFound
			}
			return err
		},
	}

	cmd.Flags().StringSliceVar(&recipes, "recipe", nil, "Recipe identifier to activate (repeatable)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report would-be changes without modifying files")
	cmd.Flags().StringSliceVar(&additionalDeps, "additional-deps", nil, "Extra classpath entries for the rewrite resolver")
	cmd.Flags().BoolVar(&failOnDryRun, "fail-on-dry-run", false, "Exit non-zero if a dry run would produce changes")

	return cmd
}
