// Package scanner enumerates the Gradle configuration files of a project
// tree, skipping build output and tool caches.
package scanner

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
)

// configFileNames are the exact file names the analysis cares about, in
// both the Groovy and Kotlin DSL variants. Near-matches like
// "my-build.gradle" or "build.gradle.bak" are never picked up.
var configFileNames = map[string]bool{
	"build.gradle":        true,
	"build.gradle.kts":    true,
	"settings.gradle":     true,
	"settings.gradle.kts": true,
}

// excludedSegments are directory names that mark generated output or tool
// caches. Exclusion is decided per normalized path segment, so a file
// *named* build.gradle is unaffected while anything *inside* a build/
// directory is skipped.
var excludedSegments = map[string]bool{
	"build":        true,
	".gradle":      true,
	".git":         true,
	"out":          true,
	"node_modules": true,
}

// File is one scanned configuration file.
type File struct {
	Path    string // absolute path
	Rel     string // path relative to the scanned root
	Content string
	Lines   int
}

// IsKotlinDSL reports whether the file uses the typed Kotlin dialect.
func (f File) IsKotlinDSL() bool {
	return strings.HasSuffix(f.Path, ".kts")
}

// Scanner walks a project tree and reads its Gradle configuration files.
type Scanner struct {
	workers int
}

// New creates a Scanner. workers <= 0 means one worker per CPU.
func New(workers int) *Scanner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Scanner{workers: workers}
}

// CollectPaths returns the relevant file paths under root in sorted
// order. Enumeration is separated from reading so the downstream Finding
// order stays deterministic regardless of read parallelism.
func (s *Scanner) CollectPaths(root string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal.
			return nil
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			name := d.Name()
			if excludedSegments[name] || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}
		if !configFileNames[d.Name()] {
			return nil
		}
		if rel, err := filepath.Rel(root, path); err == nil && hasExcludedSegment(rel) {
			return nil
		}

		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}

// Scan enumerates and reads configuration files. Reads fan out across a
// worker pool; results merge back in collection order.
func (s *Scanner) Scan(ctx context.Context, root string) ([]File, error) {
	paths, err := s.CollectPaths(root)
	if err != nil {
		return nil, err
	}

	jobs := make(chan string, len(paths))
	results := make(chan File, len(paths))
	var wg sync.WaitGroup

	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}

				data, err := os.ReadFile(path)
				if err != nil {
					continue
				}
				rel, _ := filepath.Rel(root, path)
				content := string(data)
				results <- File{
					Path:    path,
					Rel:     filepath.ToSlash(rel),
					Content: content,
					Lines:   countLines(content),
				}
			}
		}()
	}

	for _, p := range paths {
		jobs <- p
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	byPath := make(map[string]File, len(paths))
	for f := range results {
		byPath[f.Path] = f
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stable merge: iterate the sorted path slice, not the map.
	files := make([]File, 0, len(byPath))
	for _, p := range paths {
		if f, ok := byPath[p]; ok {
			files = append(files, f)
		}
	}
	return files, nil
}

// hasExcludedSegment checks every directory segment of a relative path
// against the exclusion set. Substring matching on the whole path would
// wrongly reject build.gradle itself.
func hasExcludedSegment(rel string) bool {
	segments := strings.Split(filepath.ToSlash(rel), "/")
	for _, seg := range segments[:len(segments)-1] {
		if excludedSegments[seg] || strings.HasPrefix(seg, ".") {
			return true
		}
	}
	return false
}

func countLines(content string) int {
	if content == "" {
		return 0
	}
	n := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		n++
	}
	return n
}
