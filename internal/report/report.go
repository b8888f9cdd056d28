// Package report assembles and renders the final analysis result.
// Rendering is a pure projection; nothing here mutates the report.
package report

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/petrelhq/petrel/internal/analysis"
	"github.com/petrelhq/petrel/internal/detector"
)

// Report aggregates everything one invocation produced. It is assembled
// once, serialized, and discarded; there is no cross-invocation state.
type Report struct {
	Snapshot       analysis.Snapshot  `json:"project"`
	CategoryCounts map[string]int     `json:"issue_counts"`
	TotalIssues    int                `json:"total_issues"`
	Tier           analysis.Tier      `json:"complexity"`
	Strategy       analysis.Strategy  `json:"strategy"`
	Steps          []analysis.Step    `json:"migration_plan"`
	Findings       []detector.Finding `json:"findings,omitempty"`
	RecipePath     string             `json:"recipe_path,omitempty"`
	Warnings       []string           `json:"warnings,omitempty"`
}

// New assembles a report from the pipeline outputs.
func New(snapshot analysis.Snapshot, result *detector.Result, tier analysis.Tier, strategy analysis.Strategy, steps []analysis.Step) *Report {
	return &Report{
		Snapshot:       snapshot,
		CategoryCounts: result.CategoryCounts,
		TotalIssues:    result.Total(),
		Tier:           tier,
		Strategy:       strategy,
		Steps:          steps,
		Findings:       result.Findings,
	}
}

// WriteJSON serializes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// sortedCategories returns the category names in stable order for
// deterministic console output.
func (r *Report) sortedCategories() []string {
	cats := make([]string, 0, len(r.CategoryCounts))
	for c := range r.CategoryCounts {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}
