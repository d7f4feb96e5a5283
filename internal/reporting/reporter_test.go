package reporting

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleReporter_EnsureLines(t *testing.T) {
	var buf bytes.Buffer
	r := NewConsoleReporter(&buf)

	r.Report(Update{Capability: "k3d", Phase: PhaseChecking})
	r.Report(Update{Capability: "k3d", Phase: PhaseAbsent})
	r.Report(Update{Capability: "k3d", Phase: PhaseInstalling})
	r.Report(Update{Capability: "k3d", Phase: PhaseInstalled})

	// A bytes.Buffer is not a terminal, so no escape sequences are emitted.
	assert.Equal(t, "Checking if `k3d` is present ... ✘!\n"+
		"  Ensuring presence of `k3d` (you may need to interact with the execution) ...\n"+
		"  Successfully ensured `k3d`.\n", buf.String())
}

func TestConsoleReporter_OtherPhases(t *testing.T) {
	var buf bytes.Buffer
	r := NewConsoleReporter(&buf)

	r.Report(Update{Capability: "git", Phase: PhaseChecking})
	r.Report(Update{Capability: "git", Phase: PhasePresent})
	r.Report(Update{Capability: "k3d cluster", Phase: PhaseNotRunning})
	r.Report(Update{Capability: "kfp", Phase: PhaseDeclined})
	r.Report(Update{Capability: "kfp", Phase: PhaseFailed, Err: errors.New("boom")})

	out := buf.String()
	assert.Contains(t, out, "Checking if `git` is present ... 💯!\n")
	assert.Contains(t, out, "  `k3d cluster` is not running!\n")
	assert.Contains(t, out, "  Skipping ...\n")
	assert.Contains(t, out, "`kfp` failed: boom")
}

func TestConsoleReporter_Heading(t *testing.T) {
	var buf bytes.Buffer
	NewConsoleReporter(&buf).Heading("Ensuring proper", "dependencies", "...")
	assert.Equal(t, "Ensuring proper dependencies ...\n", buf.String())
}

func TestRecorder(t *testing.T) {
	rec := &Recorder{}
	rec.Report(Update{Capability: "a", Phase: PhaseChecking})
	rec.Report(Update{Capability: "a", Phase: PhasePresent})
	assert.Equal(t, []Phase{PhaseChecking, PhasePresent}, rec.Phases())
}
