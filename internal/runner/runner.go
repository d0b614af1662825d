// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package runner locates external command-line tools and runs them to
// completion, capturing their output.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// Output holds what a finished process wrote.
type Output struct {
	Stdout string
	Stderr string
}

// Runner runs an external tool with the given arguments and waits for it
// to exit.
type Runner interface {
	// Name returns the tool name used in messages ("pandoc", "pdflatex").
	Name() string

	// Run executes the tool. A non-zero exit yields a *ProcessError that
	// carries both output streams.
	Run(ctx context.Context, args ...string) (Output, error)
}

// ProcessError reports a tool that could not be started or exited non-zero.
type ProcessError struct {
	Tool   string
	Args   []string
	Stdout string
	Stderr string
	Err    error
}

func (e *ProcessError) Error() string {
	msg := fmt.Sprintf("%s %s: %v", e.Tool, strings.Join(e.Args, " "), e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *ProcessError) Unwrap() error { return e.Err }

// ExitCode returns the process exit code, or -1 if the process never ran
// to completion.
func (e *ProcessError) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Exists(path string) bool
	Run(ctx context.Context, name string, args []string) (stdout, stderr string, err error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (o *osExecutor) Run(ctx context.Context, name string, args []string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// Tool is an external binary resolved to a concrete path.
type Tool struct {
	name string
	path string
	exec executor
}

// New returns a Tool that runs the binary at path without resolving it.
func New(name, path string) *Tool {
	return &Tool{name: name, path: path, exec: defaultExec}
}

func (t *Tool) Name() string { return t.name }

// Path returns the binary the tool executes.
func (t *Tool) Path() string { return t.path }

func (t *Tool) Run(ctx context.Context, args ...string) (Output, error) {
	stdout, stderr, err := t.exec.Run(ctx, t.path, args)
	out := Output{Stdout: stdout, Stderr: stderr}
	if err != nil {
		return out, &ProcessError{
			Tool:   t.name,
			Args:   args,
			Stdout: stdout,
			Stderr: stderr,
			Err:    err,
		}
	}
	return out, nil
}

// Version runs the tool with --version and returns the first line printed.
func (t *Tool) Version(ctx context.Context) (string, error) {
	out, err := t.Run(ctx, "--version")
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(strings.TrimSpace(out.Stdout), "\n")
	return strings.TrimSpace(line), nil
}

var defaultExec executor = &osExecutor{}

// Resolve locates the named tool. An explicit value is used first: a value
// containing a path separator must name an existing file, anything else is
// looked up on PATH. With no explicit value, name is looked up on PATH and
// then each candidate path is tried in order.
func Resolve(name, explicit string, candidates []string) (*Tool, error) {
	return resolve(defaultExec, name, explicit, candidates)
}

func resolve(exec executor, name, explicit string, candidates []string) (*Tool, error) {
	if explicit != "" {
		if strings.ContainsAny(explicit, `/\`) {
			if exec.Exists(explicit) {
				return &Tool{name: name, path: explicit, exec: exec}, nil
			}
			return nil, errors.Wrapf(ErrToolNotFound, "%s at %s", name, explicit)
		}
		path, err := exec.LookPath(explicit)
		if err != nil {
			return nil, errors.Wrapf(ErrToolNotFound, "%s (%s) on PATH", name, explicit)
		}
		return &Tool{name: name, path: path, exec: exec}, nil
	}

	if path, err := exec.LookPath(name); err == nil {
		return &Tool{name: name, path: path, exec: exec}, nil
	}

	for _, c := range candidates {
		if exec.Exists(c) {
			return &Tool{name: name, path: c, exec: exec}, nil
		}
	}

	return nil, errors.Wrapf(ErrToolNotFound,
		"%s: not on PATH or in %d default location(s)", name, len(candidates))
}
