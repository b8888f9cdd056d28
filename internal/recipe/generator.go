package recipe

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/petrelhq/petrel/internal/detector"
)

// DocumentName is the file the rendered recipe is written to, inside the
// output directory.
const DocumentName = "generated-migrations.yml"

// RenderError reports a failure writing the recipe document to disk.
type RenderError struct {
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("cannot write recipe document %s: %v", e.Path, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Generator renders and writes recipe documents.
type Generator struct {
	outputDir string
}

// NewGenerator creates a Generator targeting the given output directory.
func NewGenerator(outputDir string) *Generator {
	return &Generator{outputDir: outputDir}
}

// Render produces the recipe document for a finding list. Deliberately
// deterministic: rendering the same findings twice yields identical
// bytes.
func Render(findings []detector.Finding) ([]byte, error) {
	groups, manual := Dedupe(findings)

	root := &yaml.Node{Kind: yaml.MappingNode}
	root.HeadComment = headerComment(len(groups), len(manual))

	appendScalarPair(root, "type", "specs.openrewrite.org/v1beta/recipe")
	appendScalarPair(root, "name", RecipeName)
	appendScalarPair(root, "displayName", "Petrel generated migrations")
	appendScalarPair(root, "description", "Automated Gradle build migrations synthesized from detected anti-patterns.")

	list := &yaml.Node{Kind: yaml.SequenceNode}
	for _, g := range byRecipeType(groups) {
		list.Content = append(list.Content, groupNode(g))
	}

	listKey := scalarNode("recipeList")
	root.Content = append(root.Content, listKey, list)

	if len(manual) > 0 {
		root.FootComment = manualComment(manual)
	}

	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}

	var b strings.Builder
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

// Generate renders the document and writes it into the output directory,
// creating it if needed. Returns the written path.
func (g *Generator) Generate(findings []detector.Finding) (string, []byte, error) {
	doc, err := Render(findings)
	if err != nil {
		return "", nil, err
	}

	path := filepath.Join(g.outputDir, DocumentName)
	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return "", nil, &RenderError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, doc, 0644); err != nil {
		return "", nil, &RenderError{Path: path, Err: err}
	}
	return path, doc, nil
}

// byRecipeType orders groups so transformations of the same type sit
// together. Within a type, insertion (detection) order is preserved.
func byRecipeType(groups []*Group) []*Group {
	ordered := make([]*Group, len(groups))
	copy(ordered, groups)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].RecipeType < ordered[j].RecipeType
	})
	return ordered
}

// groupNode renders one deduplicated transformation as a recipeList
// entry.
func groupNode(g *Group) *yaml.Node {
	// Recipes without options render as a bare string entry.
	if len(g.Config) == 0 {
		node := scalarNode(g.RecipeType)
		if g.Count > 1 {
			node.HeadComment = fmt.Sprintf("%d occurrences", g.Count)
		}
		return node
	}

	typeKey := scalarNode(g.RecipeType)
	if g.Count > 1 {
		typeKey.HeadComment = fmt.Sprintf("%d occurrences", g.Count)
	}

	config := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range sortedKeys(g.Config) {
		appendScalarPair(config, k, g.Config[k])
	}

	entry := &yaml.Node{Kind: yaml.MappingNode}
	entry.Content = append(entry.Content, typeKey, config)
	return entry
}

// headerComment is the comment block at the top of the document.
func headerComment(automated, manual int) string {
	return strings.Join([]string{
		"Generated by Petrel. Review before applying.",
		fmt.Sprintf("Automated transformations: %d", automated),
		fmt.Sprintf("Manual review items: %d", manual),
		"Apply with: gradle rewriteRun (OpenRewrite Gradle plugin required)",
	}, "\n")
}

// manualComment renders manual-review findings as a trailing comment
// block, kept apart from the executable transformation list.
func manualComment(manual []detector.Finding) string {
	lines := []string{"Manual review required (no automated migration):"}
	for _, f := range manual {
		lines = append(lines, fmt.Sprintf("  %s:%d  %q  -> %s", f.File, f.Line, f.Match, f.Fix))
	}
	return strings.Join(lines, "\n")
}

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: value}
}

func appendScalarPair(m *yaml.Node, key, value string) {
	m.Content = append(m.Content, scalarNode(key), scalarNode(value))
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
