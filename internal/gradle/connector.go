package gradle

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/petrelhq/petrel/internal/execx"
)

// Environment holds the metadata returned by Gradle's model query.
type Environment struct {
	GradleVersion string
	JavaRuntime   string
}

// ConnectionError reports that a model-query session against the build
// could not be established or used.
type ConnectionError struct {
	Path string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("cannot connect to Gradle build at %s: %v", e.Path, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Session is a scoped connection to one Gradle build. Every query is
// read-only; Close must run on every exit path.
type Session struct {
	root   string
	bin    string
	exec   *execx.Executor
	closed bool
}

// ErrSessionClosed is returned by queries issued after Close.
var ErrSessionClosed = fmt.Errorf("gradle session already closed")

var (
	gradleVersionRe = regexp.MustCompile(`(?m)^Gradle (\d+\.\d+(?:\.\d+)?)`)
	jvmLineRe       = regexp.MustCompile(`(?m)^JVM:\s+(.+)$`)
	projectLineRe   = regexp.MustCompile(`(?m)^[\\+| -]*--- Project '`)
)

// Connect opens a session against the project's Gradle entry point: the
// checked-in wrapper when present, otherwise gradle on PATH. A missing
// entry point is a ConnectionError, which callers recover from exactly
// once via the wrapper-properties fallback.
func Connect(ctx context.Context, root string) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, &ConnectionError{Path: root, Err: err}
	}

	bin, err := resolveBinary(root)
	if err != nil {
		return nil, &ConnectionError{Path: root, Err: err}
	}

	return &Session{
		root: root,
		bin:  bin,
		exec: execx.NewExecutor(&execx.Options{
			Dir:    root,
			Stderr: os.Stderr,
		}),
	}, nil
}

// Executor exposes the session's executor so tests can stub process
// creation.
func (s *Session) Executor() *execx.Executor {
	return s.exec
}

// Environment issues a single version model query and parses the tool
// version and Java runtime out of the response.
func (s *Session) Environment(ctx context.Context) (Environment, error) {
	if s.closed {
		return Environment{}, ErrSessionClosed
	}
	out, err := s.exec.Output(ctx, s.bin, "--version", "--quiet")
	if err != nil {
		return Environment{}, &ConnectionError{Path: s.root, Err: err}
	}

	env := Environment{}
	if m := gradleVersionRe.FindStringSubmatch(out); m != nil {
		env.GradleVersion = m[1]
	}
	if m := jvmLineRe.FindStringSubmatch(out); m != nil {
		env.JavaRuntime = strings.TrimSpace(m[1])
	}

	if env.GradleVersion == "" {
		return env, &VersionParseError{Raw: firstLine(out)}
	}
	return env, nil
}

// ModuleCount queries the project hierarchy and counts modules, root
// project included.
func (s *Session) ModuleCount(ctx context.Context) (int, error) {
	if s.closed {
		return 0, ErrSessionClosed
	}
	out, err := s.exec.Output(ctx, s.bin, "projects", "--quiet", "--console=plain")
	if err != nil {
		return 0, &ConnectionError{Path: s.root, Err: err}
	}
	return len(projectLineRe.FindAllString(out, -1)) + 1, nil
}

// Close releases the session scope. Safe to call more than once.
func (s *Session) Close() error {
	s.closed = true
	return nil
}

// resolveBinary prefers the project's wrapper script over a system
// install so queries run against the pinned distribution.
func resolveBinary(root string) (string, error) {
	wrapper := "gradlew"
	if runtime.GOOS == "windows" {
		wrapper = "gradlew.bat"
	}
	candidate := filepath.Join(root, wrapper)
	if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
		return candidate, nil
	}

	path, err := exec.LookPath("gradle")
	if err != nil {
		return "", fmt.Errorf("no gradle wrapper in project and no gradle on PATH: %w", err)
	}
	return path, nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
