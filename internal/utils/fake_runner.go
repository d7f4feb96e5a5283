package utils

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
)

// FakeResult is a scripted response of a FakeRunner.
type FakeResult struct {
	Stdout string
	Err    error
}

// ExitStatus returns a FakeResult that looks like a process exiting non-zero.
func ExitStatus(stdout string) FakeResult {
	return FakeResult{Stdout: stdout, Err: fmt.Errorf("exit status 1: %w", &exec.ExitError{})}
}

type fakeRule struct {
	prefix  string
	results []FakeResult
	served  int
}

// FakeRunner is a Runner for tests. It records every command and answers
// with scripted results: the first rule whose prefix matches the rendered
// command line wins, its results are served in order and the last one
// repeats. Unmatched commands succeed with empty output.
type FakeRunner struct {
	mu    sync.Mutex
	rules []*fakeRule
	calls []Command
	// Paths lists executables LookPath resolves; everything else is missing.
	Paths map[string]string
}

// NewFakeRunner returns an empty FakeRunner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{Paths: map[string]string{}}
}

// On scripts the results for commands starting with prefix.
func (f *FakeRunner) On(prefix string, results ...FakeResult) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rules = append(f.rules, &fakeRule{prefix: prefix, results: results})
	return f
}

// Calls returns the commands executed so far, in order.
func (f *FakeRunner) Calls() []Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Command(nil), f.calls...)
}

// CommandLines returns Calls rendered as strings.
func (f *FakeRunner) CommandLines() []string {
	var lines []string
	for _, c := range f.Calls() {
		lines = append(lines, c.String())
	}
	return lines
}

func (f *FakeRunner) next(c Command) FakeResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)

	line := c.String()
	for _, r := range f.rules {
		if !strings.HasPrefix(line, r.prefix) || len(r.results) == 0 {
			continue
		}
		idx := r.served
		if idx >= len(r.results) {
			idx = len(r.results) - 1
		}
		r.served++
		return r.results[idx]
	}
	return FakeResult{}
}

// Run implements Runner.
func (f *FakeRunner) Run(ctx context.Context, c Command) error {
	return f.next(c).Err
}

// Output implements Runner.
func (f *FakeRunner) Output(ctx context.Context, c Command) (string, error) {
	res := f.next(c)
	return res.Stdout, res.Err
}

// LookPath implements Runner.
func (f *FakeRunner) LookPath(name string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.Paths[name]; ok {
		return p, nil
	}
	return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
}
