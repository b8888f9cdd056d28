package analysis

import (
	"fmt"

	"github.com/petrelhq/petrel/internal/gradle"
	"github.com/petrelhq/petrel/internal/patterns"
)

// Engine tags name which tool is responsible for a migration step.
const (
	EngineGit         = "git"
	EngineOpenRewrite = "openrewrite"
	EngineAssistant   = "assistant"
	EngineGradle      = "gradle"
)

// Step is one ordered entry in the migration plan.
type Step struct {
	Order       int    `json:"order"`
	Description string `json:"description"`
	Engine      string `json:"engine"`
	Effort      string `json:"effort"`
}

// PlanInput carries everything the plan builder conditions on.
type PlanInput struct {
	DetectedVersion string
	TargetVersion   string
	GroovyFileCount int
	CategoryCounts  map[string]int
	ManualCount     int
}

// BuildPlan emits the ordered remediation steps. Order numbers are
// assigned as steps are appended; nothing reorders them afterwards.
func BuildPlan(in PlanInput) []Step {
	target := in.TargetVersion
	if target == "" {
		target = gradle.TargetVersion
	}

	var steps []Step
	add := func(description, engine, effort string) {
		steps = append(steps, Step{
			Order:       len(steps) + 1,
			Description: description,
			Engine:      engine,
			Effort:      effort,
		})
	}

	// The plan always starts from a recoverable state.
	add("Create a recovery checkpoint (commit or branch the current build configuration)", EngineGit, "2 minutes")

	appendVersionSteps(add, in.DetectedVersion, target)

	if in.CategoryCounts[patterns.CategoryLegacyPlugin] > 0 {
		add("Migrate legacy 'apply plugin:' usages to the plugins { } block", EngineOpenRewrite, "15 minutes")
	}

	if in.GroovyFileCount > 0 {
		add(fmt.Sprintf("Optional: migrate %d Groovy DSL file(s) to the Kotlin DSL", in.GroovyFileCount), EngineAssistant, "1-2 hours")
	}

	if in.ManualCount > 0 {
		add(fmt.Sprintf("Review and fix %d issue(s) without an automated migration", in.ManualCount), EngineAssistant, "varies")
	}

	add("Verify the build ('gradle build')", EngineGradle, "5 minutes")
	add("Run the test suite ('gradle test')", EngineGradle, "varies")

	return steps
}

// appendVersionSteps adds wrapper-update and API-migration steps when the
// detected version trails the target by more than one major release. An
// unknown version is treated as older than any target, so it always
// qualifies; it gets a single full-audit step instead of one per major.
func appendVersionSteps(add func(description, engine, effort string), detected, target string) {
	if gradle.Compare(detected, target) >= 0 {
		return
	}

	if detected == gradle.VersionUnknown || gradle.Major(detected) == 0 {
		add(fmt.Sprintf("Update the pinned Gradle version to %s", target), EngineOpenRewrite, "10 minutes")
		add("Audit and migrate deprecated APIs (starting version unknown, assuming a full migration)", EngineOpenRewrite, "30+ minutes")
		return
	}

	gap := gradle.MajorGap(detected, target)
	if gap <= 1 {
		return
	}

	add(fmt.Sprintf("Update the pinned Gradle version to %s", target), EngineOpenRewrite, "10 minutes")
	for major := gradle.Major(detected) + 1; major <= gradle.Major(target); major++ {
		add(fmt.Sprintf("Migrate APIs deprecated before Gradle %d", major), EngineOpenRewrite, "30 minutes")
	}
}
