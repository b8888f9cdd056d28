// Package recipe turns findings into a declarative OpenRewrite recipe
// document.
package recipe

import (
	"fmt"
	"sort"
	"strings"

	"github.com/petrelhq/petrel/internal/detector"
	"github.com/petrelhq/petrel/internal/patterns"
)

// RecipeName is the fully qualified name of the generated recipe.
const RecipeName = "dev.petrel.GeneratedMigrations"

// Group is one deduplicated transformation: the canonical finding plus
// how often the identical transformation was detected.
type Group struct {
	RecipeType string
	Config     map[string]string
	Count      int
	Canonical  detector.Finding
}

// Dedupe collapses findings into unique transformations keyed by
// (recipe type, generated configuration). The first finding of each key
// is kept as the canonical representative; later identical findings only
// bump its occurrence count. Manual findings are returned separately, in
// detection order, untouched.
//
// The grouping is idempotent: the same finding slice always produces the
// same groups in the same order.
func Dedupe(findings []detector.Finding) (groups []*Group, manual []detector.Finding) {
	index := make(map[string]*Group)

	for _, f := range findings {
		if f.RecipeType == patterns.RecipeManual {
			manual = append(manual, f)
			continue
		}

		key := groupKey(f.RecipeType, f.Config)
		if g, ok := index[key]; ok {
			g.Count++
			continue
		}

		g := &Group{
			RecipeType: f.RecipeType,
			Config:     f.Config,
			Count:      1,
			Canonical:  f,
		}
		index[key] = g
		groups = append(groups, g)
	}

	return groups, manual
}

// groupKey canonicalizes a config map into a stable string key.
func groupKey(recipeType string, config map[string]string) string {
	keys := make([]string, 0, len(config))
	for k := range config {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(recipeType)
	for _, k := range keys {
		fmt.Fprintf(&b, "|%s=%s", k, config[k])
	}
	return b.String()
}
