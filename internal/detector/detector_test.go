package detector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrelhq/petrel/internal/patterns"
	"github.com/petrelhq/petrel/internal/scanner"
)

const legacyBuildScript = `apply plugin: 'java'
apply plugin: 'maven'

repositories {
    jcenter()
}

dependencies {
    compile 'org.slf4j:slf4j-api:1.7.30'
    compile 'com.google.guava:guava:29.+'
    testCompile 'junit:junit:4.13'
}

task deploy {
}
`

func fixtureFiles() []scanner.File {
	return []scanner.File{
		{Path: "/p/build.gradle", Rel: "build.gradle", Content: legacyBuildScript, Lines: 16},
		{Path: "/p/app/build.gradle", Rel: "app/build.gradle", Content: "dependencies {\n    compile 'a:b:1.0'\n}\n", Lines: 3},
	}
}

func TestDetectFindings(t *testing.T) {
	result := Detect(fixtureFiles(), patterns.NewRegistry())

	// compile x3 (two in root, one in app) + testCompile x1
	assert.Equal(t, 4, result.CategoryCounts[patterns.CategoryDeprecatedConfiguration])
	// apply plugin: java + maven both hit the legacy pattern
	assert.Equal(t, 2, result.CategoryCounts[patterns.CategoryLegacyPlugin])
	assert.Equal(t, 1, result.CategoryCounts[patterns.CategoryDeprecatedPlugin])
	assert.Equal(t, 1, result.CategoryCounts[patterns.CategoryRepositoryHygiene])
	assert.Equal(t, 1, result.CategoryCounts[patterns.CategoryDynamicVersion])
	assert.Equal(t, 1, result.CategoryCounts[patterns.CategoryEagerTask])

	assert.Equal(t, 10, result.Total())
	assert.True(t, result.HasCategory(patterns.CategoryLegacyPlugin))
	assert.False(t, result.HasCategory("nonexistent"))
}

// The sum of per-category counts must equal the hits of each pattern
// applied in isolation.
func TestCategoryCountsMatchIsolatedScans(t *testing.T) {
	files := fixtureFiles()
	full := Detect(files, patterns.NewRegistry())

	isolatedTotal := 0
	for _, def := range patterns.NewRegistry().Definitions() {
		single := patterns.NewEmptyRegistry()
		single.Register(def)
		isolatedTotal += Detect(files, single).Total()
	}

	assert.Equal(t, isolatedTotal, full.Total())
}

func TestFindingProvenance(t *testing.T) {
	files := []scanner.File{{
		Rel:     "build.gradle",
		Content: "plugins { id 'java' }\n\ndependencies {\n    compile 'a:b:1.0'\n}\n",
	}}

	result := Detect(files, patterns.NewRegistry())
	require.Len(t, result.Findings, 1)

	f := result.Findings[0]
	assert.Equal(t, "build.gradle", f.File)
	assert.Equal(t, 4, f.Line, "line numbers are 1-based")
	assert.Equal(t, "deprecated-configuration-compile", f.PatternID)
	assert.Equal(t, 1, f.Count, "detection never deduplicates")
	assert.Contains(t, f.Match, "compile")
	require.NotNil(t, f.Config)
	assert.Equal(t, "implementation", f.Config["newConfiguration"])
}

func TestManualCount(t *testing.T) {
	result := Detect(fixtureFiles(), patterns.NewRegistry())
	// legacy-apply x2, maven-plugin x1, dynamic x1, eager-task x1
	assert.Equal(t, 5, result.ManualCount())
}

func TestDetectEmptyInput(t *testing.T) {
	result := Detect(nil, patterns.NewRegistry())
	assert.Empty(t, result.Findings)
	assert.Zero(t, result.Total())
}
