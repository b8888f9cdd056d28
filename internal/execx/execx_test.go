package execx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCommand returns a command that re-runs the test binary as a helper
// process with predetermined behavior.
func mockCommand(name string, args ...string) *exec.Cmd {
	cs := []string{"-test.run=TestHelperProcess", "--", name}
	cs = append(cs, args...)
	cmd := exec.Command(os.Args[0], cs...)
	cmd.Env = []string{"GO_WANT_HELPER_PROCESS=1"}
	return cmd
}

// TestHelperProcess is the mock command executor.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	args := os.Args
	for i, arg := range args {
		if arg == "--" {
			args = args[i+1:]
			break
		}
	}

	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "no command specified\n")
		os.Exit(1)
	}

	switch args[0] {
	case "echo":
		if len(args) > 1 {
			fmt.Println(strings.Join(args[1:], " "))
		}
		os.Exit(0)
	case "gradle-version":
		fmt.Println("Gradle 8.5")
		fmt.Println()
		fmt.Println("Build time:    2023-11-29 14:08:57 UTC")
		fmt.Println("JVM:           17.0.9 (Eclipse Adoptium 17.0.9+9)")
		os.Exit(0)
	case "sleep":
		time.Sleep(10 * time.Second)
		os.Exit(0)
	case "error":
		fmt.Fprintf(os.Stderr, "error occurred\n")
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		os.Exit(1)
	}
}

func TestNewExecutorDefaults(t *testing.T) {
	executor := NewExecutor(nil)
	assert.NotNil(t, executor)
	assert.Equal(t, os.Stdout, executor.stdout)
	assert.Equal(t, os.Stderr, executor.stderr)
	assert.NotNil(t, executor.commandFunc)
}

func TestRun(t *testing.T) {
	var stdout bytes.Buffer
	executor := NewExecutor(&Options{Stdout: &stdout})
	executor.SetCommandFunc(mockCommand)

	err := executor.Run(context.Background(), "echo", "hello", "world")
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "hello world")
}

func TestRunError(t *testing.T) {
	var stderr bytes.Buffer
	executor := NewExecutor(&Options{Stderr: &stderr})
	executor.SetCommandFunc(mockCommand)

	err := executor.Run(context.Background(), "error")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error failed")
	assert.Contains(t, stderr.String(), "error occurred")
}

func TestRunCancelled(t *testing.T) {
	executor := NewExecutor(&Options{Stdout: io.Discard, Stderr: io.Discard})
	executor.SetCommandFunc(mockCommand)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := executor.Run(ctx, "sleep")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cancelled")
}

func TestOutput(t *testing.T) {
	executor := NewExecutor(&Options{Stderr: io.Discard})
	executor.SetCommandFunc(mockCommand)

	out, err := executor.Output(context.Background(), "gradle-version")
	require.NoError(t, err)
	assert.Contains(t, out, "Gradle 8.5")
	assert.Contains(t, out, "JVM:")
}

func TestRunWithSpinner(t *testing.T) {
	// Basic smoke test; the spinner degrades gracefully without a terminal.
	var stderr bytes.Buffer
	executor := NewExecutor(&Options{Stdout: io.Discard, Stderr: &stderr})
	executor.SetCommandFunc(mockCommand)

	err := executor.RunWithSpinner(context.Background(), "Testing", "echo", "test")
	assert.NoError(t, err)
}
