package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/petrelhq/petrel/internal/patterns"
)

// patternView is the serializable projection of a pattern definition.
type patternView struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
	Fix         string `json:"fix"`
	Recipe      string `json:"recipe"`
	Automated   bool   `json:"automated"`
}

// ListCmd creates the 'list' command, which prints the pattern registry.
func ListCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "list [filter]",
		Short: "List detectable patterns, optionally filtered by category or ID",
		Long: `List every pattern Petrel can detect.

An optional filter narrows the listing to patterns whose ID or category
contains the given substring.

Examples:
  petrel list
  petrel list deprecated-configuration
  petrel list jcenter --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := ""
			if len(args) > 0 {
				filter = strings.ToLower(args[0])
			}

			registry := patterns.NewRegistry()
			defs := registry.Find(func(d patterns.Definition) bool {
				if filter == "" {
					return true
				}
				return strings.Contains(strings.ToLower(d.ID), filter) ||
					strings.Contains(strings.ToLower(d.Category), filter)
			})

			if len(defs) == 0 {
				return fmt.Errorf("%w: no patterns match filter %q", ErrInvalidInput, filter)
			}

			if opts.JSON {
				views := make([]patternView, 0, len(defs))
				for _, d := range defs {
					views = append(views, patternView{
						ID:          d.ID,
						Category:    d.Category,
						Severity:    string(d.Severity),
						Description: d.Description,
						Fix:         d.Fix,
						Recipe:      d.RecipeType,
						Automated:   d.Automated(),
					})
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(views)
			}

			for _, d := range defs {
				marker := "manual"
				if d.Automated() {
					marker = "automated"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-38s %-26s %-8s %s\n", d.ID, d.Category, d.Severity, marker)
				opts.Printer.Step(d.Description)
			}
			return nil
		},
	}
}
