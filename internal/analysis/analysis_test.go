package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		moduleCount int
		fileCount   int
		expected    Tier
	}{
		{"tiny", 1, 1, TierSmall},
		{"at small boundary", 10, 15, TierSmall},
		{"modules push medium", 11, 1, TierMedium},
		{"files push medium", 1, 16, TierMedium},
		{"at medium boundary", 50, 100, TierMedium},
		{"modules push large", 51, 1, TierLarge},
		{"files push large", 1, 101, TierLarge},
		{"both huge", 200, 500, TierLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.moduleCount, tt.fileCount))
		})
	}
}

// Increasing either input can only move the tier up, never down.
func TestClassifyMonotonic(t *testing.T) {
	rank := map[Tier]int{TierSmall: 0, TierMedium: 1, TierLarge: 2}

	assert.Equal(t, TierSmall, Classify(5, 5))
	assert.Equal(t, TierMedium, Classify(15, 5))
	assert.Equal(t, TierLarge, Classify(60, 5))

	fileCounts := []int{0, 5, 16, 50, 101, 300}
	moduleCounts := []int{0, 5, 11, 50, 51, 200}

	for _, files := range fileCounts {
		prev := -1
		for _, modules := range moduleCounts {
			tier := rank[Classify(modules, files)]
			assert.GreaterOrEqual(t, tier, prev, "modules=%d files=%d", modules, files)
			prev = tier
		}
	}
	for _, modules := range moduleCounts {
		prev := -1
		for _, files := range fileCounts {
			tier := rank[Classify(modules, files)]
			assert.GreaterOrEqual(t, tier, prev, "modules=%d files=%d", modules, files)
			prev = tier
		}
	}
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		name     string
		tier     Tier
		issues   int
		expected Strategy
	}{
		{"large always automated", TierLarge, 0, StrategyAutomated},
		{"large with many issues", TierLarge, 500, StrategyAutomated},
		{"small few issues", TierSmall, 0, StrategyAssisted},
		{"small under threshold", TierSmall, 19, StrategyAssisted},
		{"small at threshold", TierSmall, 20, StrategyHybrid},
		{"medium", TierMedium, 5, StrategyHybrid},
		{"medium many issues", TierMedium, 100, StrategyHybrid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Recommend(tt.tier, tt.issues))
		})
	}
}

func TestSnapshotFileCount(t *testing.T) {
	s := Snapshot{GroovyFileCount: 3, KotlinFileCount: 2}
	assert.Equal(t, 5, s.FileCount())
}
