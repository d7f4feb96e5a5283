package utils

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"kfpl/pkg/logging"
)

// Command describes a single external process invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory; empty means the current directory.
	Dir string
}

// Cmd builds a Command for name with args.
func Cmd(name string, args ...string) Command {
	return Command{Name: name, Args: args}
}

// In returns a copy of c that runs inside dir.
func (c Command) In(dir string) Command {
	c.Dir = dir
	return c
}

// String renders the command line the way an operator would type it.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Runner runs external commands. Every probe and every action in kfpl is
// expressed as one or more calls through a Runner.
type Runner interface {
	// Run executes the command attached to the terminal and returns an
	// error if it cannot be started or exits non-zero.
	Run(ctx context.Context, c Command) error
	// Output executes the command and returns its captured stdout. A
	// non-zero exit yields the stdout together with an *exec.ExitError
	// (see IsExitError); any other error means the process never ran.
	Output(ctx context.Context, c Command) (string, error)
	// LookPath resolves an executable name on the search path.
	LookPath(name string) (string, error)
}

// ExecRunner is the os/exec backed Runner.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns a Runner wired to the process' own stdio, so that
// installers which prompt (sudo, apt-get) can interact with the operator.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, c Command) error {
	logging.Debug("Exec", "Running %q (dir: %q)", c.String(), c.Dir)

	// #nosec G204 -- commands are assembled from fixed recipes and validated config
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	start := time.Now()
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("'%s' exited with status %d: %w", c.String(), exitErr.ExitCode(), err)
		}
		return fmt.Errorf("failed to execute '%s': %w", c.String(), err)
	}
	logging.Debug("Exec", "%q finished in %s", c.String(), time.Since(start).Round(time.Millisecond))
	return nil
}

// Output implements Runner.
func (r *ExecRunner) Output(ctx context.Context, c Command) (string, error) {
	logging.Debug("Exec", "Capturing output of %q", c.String())

	// #nosec G204 -- commands are assembled from fixed recipes and validated config
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err := cmd.Run()
	stdout := stdoutBuf.String()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// Include stderr in the error message for better diagnostics
			return stdout, fmt.Errorf("'%s' exited with status %d: %w. Stderr: %s", c.String(), exitErr.ExitCode(), err, strings.TrimSpace(stderrBuf.String()))
		}
		return stdout, fmt.Errorf("failed to execute '%s': %w", c.String(), err)
	}
	return stdout, nil
}

// LookPath implements Runner.
func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// IsExitError reports whether err comes from a process that ran and exited
// with a non-zero status, as opposed to one that could not be started.
func IsExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}

// Sleep pauses for d or until ctx is done, whichever comes first.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
