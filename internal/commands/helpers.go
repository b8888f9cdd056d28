package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/petrelhq/petrel/internal/analysis"
	"github.com/petrelhq/petrel/internal/config"
	"github.com/petrelhq/petrel/internal/detector"
	"github.com/petrelhq/petrel/internal/gradle"
	"github.com/petrelhq/petrel/internal/output"
	"github.com/petrelhq/petrel/internal/patterns"
	"github.com/petrelhq/petrel/internal/report"
	"github.com/petrelhq/petrel/internal/scanner"
)

// resolveRoot validates the positional project path argument.
func resolveRoot(args []string) (string, error) {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: cannot resolve %s: %v", ErrInvalidInput, path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%w: project path %s does not exist", ErrInvalidInput, abs)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrInvalidInput, abs)
	}
	return abs, nil
}

// analysisContext bundles one invocation's pipeline output.
type analysisContext struct {
	Root      string
	Config    *config.Config
	Report    *report.Report
	Result    *detector.Result
	OutputDir string
}

// analyzeProject runs the shared pipeline: config, connector (with the
// degraded fallback), scanner, detector, classifier, recommender, plan.
func analyzeProject(ctx context.Context, root string, opts *Options) (*analysisContext, error) {
	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}

	registry := patterns.NewRegistry().WithoutIDs(cfg.DisabledPatterns)

	var warnings []string
	env := gradle.Environment{GradleVersion: cfg.GradleVersion}
	moduleCount := 0
	if env.GradleVersion == "" {
		env, moduleCount, warnings = detectEnvironment(ctx, root, opts.Printer)
	} else {
		opts.Printer.Verbose("gradle version pinned by petrel.yml: " + env.GradleVersion)
		moduleCount = gradle.CountModules(root)
	}

	files, err := scanner.New(cfg.Workers).Scan(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	opts.Printer.Verbose(fmt.Sprintf("scanned %d configuration file(s)", len(files)))

	result := detector.Detect(files, registry)

	snapshot := buildSnapshot(env, moduleCount, files)
	tier := analysis.Classify(snapshot.ModuleCount, snapshot.FileCount())
	strategy := analysis.Recommend(tier, result.Total())

	steps := analysis.BuildPlan(analysis.PlanInput{
		DetectedVersion: snapshot.GradleVersion,
		TargetVersion:   cfg.TargetVersion,
		GroovyFileCount: snapshot.GroovyFileCount,
		CategoryCounts:  result.CategoryCounts,
		ManualCount:     result.ManualCount(),
	})

	rep := report.New(snapshot, result, tier, strategy, steps)
	rep.Warnings = warnings

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}
	if !filepath.IsAbs(outputDir) {
		outputDir = filepath.Join(root, outputDir)
	}

	return &analysisContext{
		Root:      root,
		Config:    cfg,
		Report:    rep,
		Result:    result,
		OutputDir: outputDir,
	}, nil
}

// detectEnvironment queries the Gradle model, falling back to the
// wrapper marker file exactly once on connection failure. Every degraded
// path produces a warning; none are silent, none retry.
func detectEnvironment(ctx context.Context, root string, printer *output.Printer) (gradle.Environment, int, []string) {
	var warnings []string
	warn := func(msg string) {
		printer.Warn(msg)
		warnings = append(warnings, msg)
	}

	session, err := gradle.Connect(ctx, root)
	if err != nil {
		warn("model query unavailable: " + err.Error())
		env, moduleCount := fallbackEnvironment(root, warn)
		return env, moduleCount, warnings
	}
	defer session.Close()

	env, err := session.Environment(ctx)
	if err != nil {
		warn("model query failed: " + err.Error())
		env, moduleCount := fallbackEnvironment(root, warn)
		return env, moduleCount, warnings
	}

	moduleCount, err := session.ModuleCount(ctx)
	if err != nil {
		warn("project list query failed, counting settings includes instead: " + err.Error())
		moduleCount = gradle.CountModules(root)
	}

	return env, moduleCount, warnings
}

// fallbackEnvironment is the degraded detection path: wrapper properties
// for the version, settings includes for the module count.
func fallbackEnvironment(root string, warn func(string)) (gradle.Environment, int) {
	version, err := gradle.DetectWrapperVersion(root)
	if err != nil {
		warn(fmt.Sprintf("Gradle version undetectable (%v); treating it as older than any target, so upgrade steps are assumed required", err))
		version = gradle.VersionUnknown
	} else {
		warn("using pinned wrapper version " + version + " from gradle-wrapper.properties")
	}
	return gradle.Environment{GradleVersion: version}, gradle.CountModules(root)
}

func buildSnapshot(env gradle.Environment, moduleCount int, files []scanner.File) analysis.Snapshot {
	snapshot := analysis.Snapshot{
		GradleVersion: env.GradleVersion,
		JavaRuntime:   env.JavaRuntime,
		ModuleCount:   moduleCount,
	}
	for _, f := range files {
		if f.IsKotlinDSL() {
			snapshot.KotlinFileCount++
		} else {
			snapshot.GroovyFileCount++
		}
		snapshot.TotalLines += f.Lines
	}
	return snapshot
}
