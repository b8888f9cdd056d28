// Package analysis classifies project scale, recommends a remediation
// strategy, and builds the ordered migration plan.
package analysis

// Snapshot captures the project's shape at analysis time. Assembled once
// from connector and scanner output, immutable afterwards.
type Snapshot struct {
	GradleVersion   string `json:"gradle_version"`
	JavaRuntime     string `json:"java_runtime,omitempty"`
	ModuleCount     int    `json:"module_count"`
	GroovyFileCount int    `json:"groovy_file_count"`
	KotlinFileCount int    `json:"kotlin_file_count"`
	TotalLines      int    `json:"total_lines"`
}

// FileCount returns the total number of configuration files.
func (s Snapshot) FileCount() int {
	return s.GroovyFileCount + s.KotlinFileCount
}

// Tier is the coarse complexity classification.
type Tier string

const (
	TierSmall  Tier = "small"
	TierMedium Tier = "medium"
	TierLarge  Tier = "large"
)

// Classify derives the complexity tier from module and file counts.
// Thresholds are checked largest first; the first match wins, which keeps
// the classification monotonic in both inputs.
func Classify(moduleCount, fileCount int) Tier {
	switch {
	case moduleCount > 50 || fileCount > 100:
		return TierLarge
	case moduleCount > 10 || fileCount > 15:
		return TierMedium
	default:
		return TierSmall
	}
}

// Strategy is the recommended balance between automated and assisted
// remediation.
type Strategy string

const (
	// StrategyAutomated: bulk recipe application dominates at scale.
	StrategyAutomated Strategy = "primary-automated"
	// StrategyAssisted: human review is cheap on small projects.
	StrategyAssisted Strategy = "primary-assisted"
	// StrategyHybrid: automate the bulk, review the rest.
	StrategyHybrid Strategy = "hybrid"
)

// Recommend maps complexity tier and total issue volume to a strategy.
func Recommend(tier Tier, totalIssues int) Strategy {
	switch {
	case tier == TierLarge:
		return StrategyAutomated
	case tier == TierSmall && totalIssues < 20:
		return StrategyAssisted
	default:
		return StrategyHybrid
	}
}
