package gradle

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

var (
	wrapperVersionRe = regexp.MustCompile(`gradle-(\d+\.\d+(?:\.\d+)*)-(?:bin|all)\.zip`)
	includeRe        = regexp.MustCompile(`(?m)^\s*include\b(.*)$`)
	includeItemRe    = regexp.MustCompile(`['"]:?[\w.\-:]+['"]`)
)

// DetectWrapperVersion reads the pinned distribution version out of
// gradle/wrapper/gradle-wrapper.properties. This is the degraded path
// used when a model-query session cannot be established.
func DetectWrapperVersion(root string) (string, error) {
	path := filepath.Join(root, "gradle", "wrapper", "gradle-wrapper.properties")
	data, err := os.ReadFile(path)
	if err != nil {
		return VersionUnknown, fmt.Errorf("no wrapper properties at %s: %w", path, err)
	}

	m := wrapperVersionRe.FindSubmatch(data)
	if m == nil {
		return VersionUnknown, &VersionParseError{Raw: "distributionUrl"}
	}
	return string(m[1]), nil
}

// CountModules estimates the module count from include directives in the
// settings file, root project included. Used when the project list model
// query is unavailable.
func CountModules(root string) int {
	for _, name := range []string{"settings.gradle", "settings.gradle.kts"} {
		data, err := os.ReadFile(filepath.Join(root, name))
		if err != nil {
			continue
		}
		count := 0
		for _, stmt := range includeRe.FindAllSubmatch(data, -1) {
			count += len(includeItemRe.FindAll(stmt[1], -1))
		}
		return count + 1
	}
	return 1
}
