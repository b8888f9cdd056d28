package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	dividerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
)

const divider = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// WriteConsole renders the report in a fixed human-readable layout:
// project snapshot, category breakdown, strategy, and the migration plan
// as a table.
func (r *Report) WriteConsole(w io.Writer) error {
	line := func(format string, args ...any) {
		fmt.Fprintf(w, format+"\n", args...)
	}

	line("%s", dividerStyle.Render(divider))
	line("%s", titleStyle.Render("Project"))
	line("  Gradle version:  %s", r.Snapshot.GradleVersion)
	if r.Snapshot.JavaRuntime != "" {
		line("  Java runtime:    %s", r.Snapshot.JavaRuntime)
	}
	line("  Modules:         %d", r.Snapshot.ModuleCount)
	line("  Build files:     %d (%d Groovy, %d Kotlin)",
		r.Snapshot.FileCount(), r.Snapshot.GroovyFileCount, r.Snapshot.KotlinFileCount)
	line("  Config lines:    %d", r.Snapshot.TotalLines)
	line("  Complexity:      %s", r.Tier)

	line("")
	line("%s", titleStyle.Render("Issues"))
	if r.TotalIssues == 0 {
		line("  none detected")
	} else {
		for _, cat := range r.sortedCategories() {
			line("  %-28s %d", cat, r.CategoryCounts[cat])
		}
		line("  %-28s %d", "total", r.TotalIssues)
	}

	line("")
	line("%s %s", titleStyle.Render("Strategy:"), labelStyle.Render(string(r.Strategy)))

	line("")
	line("%s", titleStyle.Render("Migration plan"))
	line("  %-4s %-58s %-12s %s", "#", "Step", "Engine", "Effort")
	for _, step := range r.Steps {
		line("  %-4d %-58s %-12s %s", step.Order, step.Description, step.Engine, step.Effort)
	}

	if r.RecipePath != "" {
		line("")
		line("%s %s", titleStyle.Render("Recipe:"), r.RecipePath)
	}

	for _, warning := range r.Warnings {
		line("")
		line("  ⚠ %s", warning)
	}

	line("%s", dividerStyle.Render(divider))
	return nil
}
