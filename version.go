// Package petrel analyzes Gradle projects for build-health issues and
// generates OpenRewrite migration recipes from what it finds.
package petrel

// Version is the current Petrel release.
const Version = "0.3.0"
