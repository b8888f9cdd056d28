// Package patterns holds the static table of detectable Gradle
// anti-patterns. Adding an entry here is all it takes to teach the
// detector, the plan builder, and the recipe generator a new category.
package patterns

import "regexp"

// Severity grades how urgent a finding is.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// RecipeManual tags patterns that have no automated transformation.
// Their findings surface as review annotations, never as recipe entries.
const RecipeManual = "manual"

// Well-known category tags shared with the plan builder.
const (
	CategoryDeprecatedConfiguration = "deprecated-configuration"
	CategoryLegacyPlugin            = "legacy-plugin"
	CategoryRepositoryHygiene       = "repository-hygiene"
	CategoryDynamicVersion          = "dynamic-version"
	CategoryEagerTask               = "eager-task"
	CategoryDeprecatedPlugin        = "deprecated-plugin"
)

// Definition describes one detectable pattern: how to find it, how bad it
// is, and how to fix it.
type Definition struct {
	ID          string
	Category    string
	Matcher     *regexp.Regexp
	Severity    Severity
	Description string
	Fix         string

	// RecipeType is the OpenRewrite recipe able to fix the pattern, or
	// RecipeManual when none exists.
	RecipeType string

	// Config generates the recipe configuration for one matched literal.
	// Nil for manual patterns.
	Config func(match string) map[string]string
}

// Automated reports whether the pattern has a recipe-backed fix.
func (d Definition) Automated() bool {
	return d.RecipeType != RecipeManual
}

// configurationRename builds a Config func for the deprecated dependency
// configuration renames, which all share one recipe type.
func configurationRename(from, to string) func(string) map[string]string {
	return func(string) map[string]string {
		return map[string]string{
			"oldConfiguration": from,
			"newConfiguration": to,
		}
	}
}

// DefaultPatterns returns the built-in pattern table in a fixed order.
func DefaultPatterns() []Definition {
	return []Definition{
		{
			ID:          "deprecated-configuration-compile",
			Category:    CategoryDeprecatedConfiguration,
			Matcher:     regexp.MustCompile(`\bcompile\s*[('"]`),
			Severity:    SeverityError,
			Description: "The 'compile' dependency configuration was removed in Gradle 7",
			Fix:         "Replace 'compile' with 'implementation' (or 'api' when consumers need the dependency)",
			RecipeType:  "org.openrewrite.gradle.ChangeDependencyConfiguration",
			Config:      configurationRename("compile", "implementation"),
		},
		{
			ID:          "deprecated-configuration-runtime",
			Category:    CategoryDeprecatedConfiguration,
			Matcher:     regexp.MustCompile(`\bruntime\s*[('"]`),
			Severity:    SeverityError,
			Description: "The 'runtime' dependency configuration was removed in Gradle 7",
			Fix:         "Replace 'runtime' with 'runtimeOnly'",
			RecipeType:  "org.openrewrite.gradle.ChangeDependencyConfiguration",
			Config:      configurationRename("runtime", "runtimeOnly"),
		},
		{
			ID:          "deprecated-configuration-testcompile",
			Category:    CategoryDeprecatedConfiguration,
			Matcher:     regexp.MustCompile(`\btestCompile\s*[('"]`),
			Severity:    SeverityError,
			Description: "The 'testCompile' dependency configuration was removed in Gradle 7",
			Fix:         "Replace 'testCompile' with 'testImplementation'",
			RecipeType:  "org.openrewrite.gradle.ChangeDependencyConfiguration",
			Config:      configurationRename("testCompile", "testImplementation"),
		},
		{
			ID:          "deprecated-configuration-testruntime",
			Category:    CategoryDeprecatedConfiguration,
			Matcher:     regexp.MustCompile(`\btestRuntime\s*[('"]`),
			Severity:    SeverityError,
			Description: "The 'testRuntime' dependency configuration was removed in Gradle 7",
			Fix:         "Replace 'testRuntime' with 'testRuntimeOnly'",
			RecipeType:  "org.openrewrite.gradle.ChangeDependencyConfiguration",
			Config:      configurationRename("testRuntime", "testRuntimeOnly"),
		},
		{
			ID:          "repository-jcenter",
			Category:    CategoryRepositoryHygiene,
			Matcher:     regexp.MustCompile(`\bjcenter\(\)`),
			Severity:    SeverityWarning,
			Description: "JCenter was sunset in 2021 and serves stale artifacts",
			Fix:         "Replace jcenter() with mavenCentral()",
			RecipeType:  "org.openrewrite.gradle.MigrateJCenterToMavenCentral",
			Config: func(string) map[string]string {
				return map[string]string{}
			},
		},
		{
			ID:          "legacy-apply-plugin",
			Category:    CategoryLegacyPlugin,
			Matcher:     regexp.MustCompile(`apply\s+plugin:\s*['"][\w.\-]+['"]`),
			Severity:    SeverityWarning,
			Description: "Legacy 'apply plugin:' script application predates the plugins DSL",
			Fix:         "Declare the plugin in a plugins { } block so Gradle can resolve it at configuration time",
			RecipeType:  RecipeManual,
		},
		{
			ID:          "deprecated-maven-plugin",
			Category:    CategoryDeprecatedPlugin,
			Matcher:     regexp.MustCompile(`apply\s+plugin:\s*['"]maven['"]`),
			Severity:    SeverityError,
			Description: "The 'maven' plugin was removed in Gradle 7",
			Fix:         "Migrate publishing to the 'maven-publish' plugin",
			RecipeType:  RecipeManual,
		},
		{
			ID:          "dynamic-version",
			Category:    CategoryDynamicVersion,
			Matcher:     regexp.MustCompile(`['"][\w.\-]+:[\w.\-]+:[\w.\-]*\+['"]`),
			Severity:    SeverityWarning,
			Description: "Dynamic '+' versions make builds non-reproducible",
			Fix:         "Pin the dependency to an explicit version (or use a version catalog)",
			RecipeType:  RecipeManual,
		},
		{
			ID:          "eager-task-creation",
			Category:    CategoryEagerTask,
			Matcher:     regexp.MustCompile(`(?m)^\s*task\s+\w+`),
			Severity:    SeverityInfo,
			Description: "Eager 'task foo {}' creation configures tasks even when they never run",
			Fix:         "Use tasks.register(\"foo\") for configuration avoidance",
			RecipeType:  RecipeManual,
		},
	}
}
