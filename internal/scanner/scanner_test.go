package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestCollectPathsFiltering(t *testing.T) {
	root := t.TempDir()

	// Included
	writeFile(t, root, "build.gradle", "plugins {}\n")
	writeFile(t, root, "settings.gradle", "include ':app'\n")
	writeFile(t, root, "app/build.gradle.kts", "plugins {}\n")

	// Excluded: generated output, tool caches, near-matching names
	writeFile(t, root, "build/generated/build.gradle", "generated\n")
	writeFile(t, root, ".gradle/8.0/build.gradle", "cached\n")
	writeFile(t, root, ".toolcache/8.0/build.gradle", "cached\n")
	writeFile(t, root, "app/build/tmp/settings.gradle", "generated\n")
	writeFile(t, root, "my-build.gradle", "nope\n")
	writeFile(t, root, "build.gradle.bak", "nope\n")
	writeFile(t, root, "app/src/main/java/Main.java", "class Main {}\n")

	paths, err := New(1).CollectPaths(root)
	require.NoError(t, err)

	rels := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(root, p)
		require.NoError(t, err)
		rels = append(rels, filepath.ToSlash(rel))
	}

	assert.Equal(t, []string{"app/build.gradle.kts", "build.gradle", "settings.gradle"}, rels)
}

func TestRootBuildFileAlwaysIncluded(t *testing.T) {
	// Regression: the file name shares a substring with the excluded
	// directory name; segment-based filtering must not reject it.
	root := t.TempDir()
	writeFile(t, root, "build.gradle", "plugins {}\n")

	paths, err := New(1).CollectPaths(root)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, "build.gradle", filepath.Base(paths[0]))
}

func TestScanDeterministicOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "zeta/build.gradle", "z\n")
	writeFile(t, root, "alpha/build.gradle", "a\n")
	writeFile(t, root, "build.gradle", "root\n")

	for _, workers := range []int{1, 4} {
		files, err := New(workers).Scan(context.Background(), root)
		require.NoError(t, err)
		require.Len(t, files, 3)

		rels := []string{files[0].Rel, files[1].Rel, files[2].Rel}
		assert.Equal(t, []string{"alpha/build.gradle", "build.gradle", "zeta/build.gradle"}, rels,
			"order must be stable with %d workers", workers)
	}
}

func TestScanContent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "build.gradle", "line one\nline two\n")
	writeFile(t, root, "app/build.gradle.kts", "plugins {}")

	files, err := New(2).Scan(context.Background(), root)
	require.NoError(t, err)
	require.Len(t, files, 2)

	kts := files[0]
	assert.Equal(t, "app/build.gradle.kts", kts.Rel)
	assert.True(t, kts.IsKotlinDSL())
	assert.Equal(t, 1, kts.Lines)

	groovy := files[1]
	assert.False(t, groovy.IsKotlinDSL())
	assert.Equal(t, "line one\nline two\n", groovy.Content)
	assert.Equal(t, 2, groovy.Lines)
}

func TestHasExcludedSegment(t *testing.T) {
	tests := []struct {
		rel      string
		excluded bool
	}{
		{"build.gradle", false},
		{"app/build.gradle", false},
		{"build/generated/build.gradle", true},
		{".gradle/8.0/build.gradle", true},
		{"sub/build/build.gradle", true},
		{"buildSrc/build.gradle", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.excluded, hasExcludedSegment(tt.rel), tt.rel)
	}
}
