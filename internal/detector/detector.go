// Package detector applies the pattern registry to scanned configuration
// files and collects findings with file/line provenance.
package detector

import (
	"strings"

	"github.com/petrelhq/petrel/internal/patterns"
	"github.com/petrelhq/petrel/internal/scanner"
)

// Finding is a single detected occurrence of a known pattern.
type Finding struct {
	File        string            `json:"file"`
	Line        int               `json:"line"`
	PatternID   string            `json:"pattern"`
	Category    string            `json:"category"`
	Severity    patterns.Severity `json:"severity"`
	Match       string            `json:"match"`
	Description string            `json:"description"`
	Fix         string            `json:"fix"`
	RecipeType  string            `json:"-"`
	Config      map[string]string `json:"-"`

	// Count starts at 1 and is only ever incremented by recipe
	// deduplication, never during detection.
	Count int `json:"count"`
}

// Result holds all findings plus per-category tallies.
type Result struct {
	Findings       []Finding
	CategoryCounts map[string]int
}

// Total returns the sum of all per-category counts.
func (r *Result) Total() int {
	total := 0
	for _, n := range r.CategoryCounts {
		total += n
	}
	return total
}

// HasCategory reports whether any finding landed in the given category.
func (r *Result) HasCategory(category string) bool {
	return r.CategoryCounts[category] > 0
}

// ManualCount returns how many findings lack an automated fix.
func (r *Result) ManualCount() int {
	n := 0
	for _, f := range r.Findings {
		if f.RecipeType == patterns.RecipeManual {
			n++
		}
	}
	return n
}

// Detect applies every registered pattern to every scanned file, in
// registration order within file order. Findings are never deduplicated
// here: the raw counts feed the per-category statistics.
func Detect(files []scanner.File, registry *patterns.Registry) *Result {
	result := &Result{
		Findings:       make([]Finding, 0, 32),
		CategoryCounts: make(map[string]int),
	}

	for _, file := range files {
		for _, def := range registry.Definitions() {
			for _, loc := range def.Matcher.FindAllStringIndex(file.Content, -1) {
				match := strings.TrimSpace(file.Content[loc[0]:loc[1]])

				finding := Finding{
					File:        file.Rel,
					Line:        lineAt(file.Content, loc[0]),
					PatternID:   def.ID,
					Category:    def.Category,
					Severity:    def.Severity,
					Match:       match,
					Description: def.Description,
					Fix:         def.Fix,
					RecipeType:  def.RecipeType,
					Count:       1,
				}
				if def.Config != nil {
					finding.Config = def.Config(match)
				}

				result.Findings = append(result.Findings, finding)
				result.CategoryCounts[def.Category]++
			}
		}
	}

	return result
}

// lineAt converts a byte offset into a 1-based line number.
func lineAt(content string, offset int) int {
	return 1 + strings.Count(content[:offset], "\n")
}
