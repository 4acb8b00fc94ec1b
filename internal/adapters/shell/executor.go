// Package shell provides the command executor adapter.
package shell

import (
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/gunchamalik/wheelhouse/internal/core/domain"
	"github.com/gunchamalik/wheelhouse/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Run executes cmd with the process environment plus cmd.Env overrides.
// Standard output is captured and returned; both streams are mirrored to
// the logger line by line. A non-zero exit returns an error carrying the
// exit code and the tail of standard error.
func (e *Executor) Run(ctx context.Context, command domain.Command) (string, error) {
	if command.Name == "" {
		return "", zerr.New("empty command")
	}

	cmdEnv := mergeEnvironment(os.Environ(), command.Env)

	// Resolve against the merged PATH rather than the parent's, so Env
	// overrides of PATH take effect.
	executable := command.Name
	if !filepath.IsAbs(command.Name) {
		if lp, err := lookPath(command.Name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, command.Args...) //nolint:gosec // caller provided command
	if len(cmd.Args) > 0 {
		cmd.Args[0] = command.Name
	}
	if command.Dir != "" {
		cmd.Dir = command.Dir
	}
	cmd.Env = cmdEnv

	var stdout strings.Builder
	var stderrTail lineWriter
	stderrTail.logger = e.logger
	stderrTail.level = "error"
	stderrTail.keepTail = true

	cmd.Stdout = io.MultiWriter(&stdout, &lineWriter{logger: e.logger, level: "info"})
	cmd.Stderr = &stderrTail

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		runErr := zerr.Wrap(err, "command failed")
		runErr = zerr.With(runErr, "command", command.Name)
		runErr = zerr.With(runErr, "exit_code", exitCode)
		return stdout.String(), zerr.With(runErr, "stderr", stderrTail.tail())
	}

	return stdout.String(), nil
}

// lineWriter forwards complete lines to the logger, keeping the last few
// for error reporting when keepTail is set.
type lineWriter struct {
	logger   ports.Logger
	level    string
	keepTail bool
	lines    []string
}

const tailLines = 20

func (w *lineWriter) Write(p []byte) (n int, err error) {
	msg := strings.TrimSuffix(string(p), "\n")
	if msg == "" {
		return len(p), nil
	}
	for _, line := range strings.Split(msg, "\n") {
		if w.level == "info" {
			w.logger.Info(line)
		} else {
			w.logger.Error(zerr.New(line))
		}
		if w.keepTail {
			w.lines = append(w.lines, line)
			if len(w.lines) > tailLines {
				w.lines = w.lines[1:]
			}
		}
	}
	return len(p), nil
}

func (w *lineWriter) tail() string {
	return strings.Join(w.lines, "\n")
}

// mergeEnvironment applies overrides on top of the base environment.
func mergeEnvironment(base []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(base)+len(overrides))
	keys := make([]string, 0, len(base)+len(overrides))
	for _, entry := range base {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, seen := envMap[k]; !seen {
			keys = append(keys, k)
		}
		envMap[k] = v
	}
	for k, v := range overrides {
		if _, seen := envMap[k]; !seen {
			keys = append(keys, k)
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(keys))
	for _, k := range keys {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH
// entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
