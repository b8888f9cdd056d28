// Package runner executes generated recipes against a project through
// the OpenRewrite Gradle plugin.
package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/petrelhq/petrel/internal/execx"
	"github.com/petrelhq/petrel/internal/output"
)

// ErrChangesPending is returned when --fail-on-dry-run is set and a dry
// run reports that applying the recipes would modify files.
var ErrChangesPending = fmt.Errorf("dry run would produce changes")

// rewritePluginVersion pins the OpenRewrite Gradle plugin wired into the
// generated init script.
const rewritePluginVersion = "6.8.1"

// Options configures one recipe execution.
type Options struct {
	Recipes        []string // active recipe names, required
	DryRun         bool     // rewriteDryRun instead of rewriteRun
	AdditionalDeps []string // extra resolver classpath entries
	FailOnDryRun   bool
}

// Runner shells out to Gradle to apply recipes. The init script it
// renders is the only file it writes, and only inside the output dir.
type Runner struct {
	exec      *execx.Executor
	printer   *output.Printer
	outputDir string
}

// New creates a Runner.
func New(printer *output.Printer, outputDir string) *Runner {
	return &Runner{
		exec:      execx.NewExecutor(&execx.Options{Stderr: printer.ErrOut()}),
		printer:   printer,
		outputDir: outputDir,
	}
}

// Executor exposes the underlying executor for tests.
func (r *Runner) Executor() *execx.Executor {
	return r.exec
}

// Run renders the init script and invokes the rewrite task. Dry runs
// never touch project files: the plugin writes its diff to a patch file
// under the build directory instead.
func (r *Runner) Run(ctx context.Context, root string, opts Options) error {
	if len(opts.Recipes) == 0 {
		return fmt.Errorf("no recipes selected")
	}

	scriptPath, err := r.writeInitScript(root, opts)
	if err != nil {
		return err
	}
	r.printer.Verbose("init script: " + scriptPath)

	task := "rewriteRun"
	if opts.DryRun {
		task = "rewriteDryRun"
	}

	bin := gradleBinary(root)
	message := fmt.Sprintf("Applying %d recipe(s) via %s", len(opts.Recipes), task)
	runErr := r.exec.RunWithSpinner(ctx, message, bin, "--project-dir", root, "--init-script", scriptPath, task, "--quiet")
	if runErr != nil {
		return fmt.Errorf("rewrite execution failed: %w", runErr)
	}

	if opts.DryRun && opts.FailOnDryRun && r.dryRunHasChanges(root) {
		return ErrChangesPending
	}

	if opts.DryRun {
		r.printer.Info("Dry run complete; no files were modified")
	} else {
		r.printer.Success("Recipes applied")
	}
	return nil
}

// writeInitScript renders the Gradle init script wiring the rewrite
// plugin, the active recipes, and any additional resolver dependencies.
func (r *Runner) writeInitScript(root string, opts Options) (string, error) {
	var b strings.Builder

	b.WriteString("initscript {\n")
	b.WriteString("    repositories { mavenCentral() }\n")
	b.WriteString("    dependencies {\n")
	fmt.Fprintf(&b, "        classpath(\"org.openrewrite:plugin:%s\")\n", rewritePluginVersion)
	for _, dep := range opts.AdditionalDeps {
		fmt.Fprintf(&b, "        classpath(%q)\n", dep)
	}
	b.WriteString("    }\n")
	b.WriteString("}\n\n")

	b.WriteString("rootProject {\n")
	b.WriteString("    plugins.apply(org.openrewrite.gradle.RewritePlugin)\n")
	b.WriteString("    rewrite {\n")
	for _, recipe := range opts.Recipes {
		fmt.Fprintf(&b, "        activeRecipe(%q)\n", recipe)
	}
	fmt.Fprintf(&b, "        configFile = file(%q)\n", filepath.Join(r.outputDir, "generated-migrations.yml"))
	b.WriteString("    }\n")
	b.WriteString("}\n")

	dir := r.outputDir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, "init.gradle")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// dryRunHasChanges checks the patch the rewrite plugin leaves behind
// after a dry run.
func (r *Runner) dryRunHasChanges(root string) bool {
	patch := filepath.Join(root, "build", "reports", "rewrite", "rewrite.patch")
	info, err := os.Stat(patch)
	return err == nil && info.Size() > 0
}

func gradleBinary(root string) string {
	wrapper := filepath.Join(root, "gradlew")
	if info, err := os.Stat(wrapper); err == nil && !info.IsDir() {
		return wrapper
	}
	return "gradle"
}
