package orchestrator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kfpl/internal/capability"
	"kfpl/internal/reporting"
)

// fakeCapability answers probes from a script; the last answer repeats.
type fakeCapability struct {
	name       string
	probes     []bool
	probeErr   error
	installErr error
	removeErr  error
	foreground bool

	probeCalls   int
	installCalls int
	removeCalls  int
}

func (f *fakeCapability) Name() string { return f.name }

func (f *fakeCapability) IsPresent(ctx context.Context) (bool, error) {
	f.probeCalls++
	if f.probeErr != nil {
		return false, f.probeErr
	}
	i := f.probeCalls - 1
	if i >= len(f.probes) {
		i = len(f.probes) - 1
	}
	return f.probes[i], nil
}

func (f *fakeCapability) MakePresent(ctx context.Context) error {
	f.installCalls++
	return f.installErr
}

func (f *fakeCapability) MakeNotPresent(ctx context.Context) error {
	f.removeCalls++
	return f.removeErr
}

func (f *fakeCapability) Foreground() bool { return f.foreground }

type scriptedConfirmer struct {
	answer  bool
	err     error
	prompts []string
}

func (s *scriptedConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	s.prompts = append(s.prompts, prompt)
	return s.answer, s.err
}

func newEngine(confirm bool, c Confirmer) (*Engine, *reporting.Recorder) {
	rec := &reporting.Recorder{}
	return New(Config{Confirm: confirm, Confirmer: c, Reporter: rec}), rec
}

func TestEnsure_AlreadyPresent(t *testing.T) {
	confirmer := &scriptedConfirmer{answer: true}
	engine, rec := newEngine(true, confirmer)
	c := &fakeCapability{name: "git", probes: []bool{true}}

	outcome, err := engine.Ensure(context.Background(), c)

	require.NoError(t, err)
	assert.Equal(t, OutcomePresent, outcome)
	assert.Equal(t, 1, c.probeCalls)
	assert.Zero(t, c.installCalls)
	assert.Empty(t, confirmer.prompts)
	assert.Equal(t, []reporting.Phase{reporting.PhaseChecking, reporting.PhasePresent}, rec.Phases())
}

func TestEnsure_InstallsAndVerifies(t *testing.T) {
	confirmer := &scriptedConfirmer{answer: true}
	engine, rec := newEngine(true, confirmer)
	c := &fakeCapability{name: "k3d", probes: []bool{false, true}}

	outcome, err := engine.Ensure(context.Background(), c)

	require.NoError(t, err)
	assert.Equal(t, OutcomeInstalled, outcome)
	assert.Equal(t, 2, c.probeCalls)
	assert.Equal(t, 1, c.installCalls)
	assert.Equal(t, []string{"`k3d` is not present: do you want me to make it so?"}, confirmer.prompts)
	assert.Equal(t, []reporting.Phase{
		reporting.PhaseChecking,
		reporting.PhaseAbsent,
		reporting.PhaseInstalling,
		reporting.PhaseInstalled,
	}, rec.Phases())
}

func TestEnsure_Declined(t *testing.T) {
	confirmer := &scriptedConfirmer{answer: false}
	engine, rec := newEngine(true, confirmer)
	c := &fakeCapability{name: "kfctl", probes: []bool{false}}

	outcome, err := engine.Ensure(context.Background(), c)

	require.NoError(t, err)
	assert.Equal(t, OutcomeDeclined, outcome)
	assert.Zero(t, c.installCalls)
	assert.Equal(t, 1, c.probeCalls)
	assert.Equal(t, reporting.PhaseDeclined, rec.Phases()[len(rec.Phases())-1])
}

func TestEnsure_GateInactiveSkipsPrompt(t *testing.T) {
	confirmer := &scriptedConfirmer{answer: false}
	engine, _ := newEngine(false, confirmer)
	c := &fakeCapability{name: "curl", probes: []bool{false, true}}

	outcome, err := engine.Ensure(context.Background(), c)

	require.NoError(t, err)
	assert.Equal(t, OutcomeInstalled, outcome)
	assert.Empty(t, confirmer.prompts)
	assert.Equal(t, 1, c.installCalls)
}

func TestEnsure_VerificationFailure(t *testing.T) {
	engine, rec := newEngine(false, nil)
	c := &fakeCapability{name: "kfp", probes: []bool{false, false}}

	_, err := engine.Ensure(context.Background(), c)

	require.Error(t, err)
	assert.True(t, capability.IsVerificationFailure(err))
	assert.Equal(t, 1, c.installCalls)
	assert.Equal(t, 2, c.probeCalls)
	assert.Equal(t, reporting.PhaseFailed, rec.Phases()[len(rec.Phases())-1])
}

func TestEnsure_ProbeErrorAbortsBeforePrompt(t *testing.T) {
	confirmer := &scriptedConfirmer{answer: true}
	engine, _ := newEngine(true, confirmer)
	c := &fakeCapability{name: "k3d cluster", probeErr: errors.New("docker: not found")}

	_, err := engine.Ensure(context.Background(), c)

	require.Error(t, err)
	assert.True(t, capability.IsProbeError(err))
	assert.Empty(t, confirmer.prompts)
	assert.Zero(t, c.installCalls)
}

func TestEnsure_ActionFailurePropagates(t *testing.T) {
	engine, _ := newEngine(false, nil)
	c := &fakeCapability{
		name:       "kubectl",
		probes:     []bool{false},
		installErr: &capability.StepFailure{Step: "Unable to curl the kubectl binary.", Err: errors.New("exit status 6")},
	}

	_, err := engine.Ensure(context.Background(), c)

	require.Error(t, err)
	step, ok := capability.FailedStep(err)
	require.True(t, ok)
	assert.Equal(t, "Unable to curl the kubectl binary.", step)
	assert.Equal(t, 1, c.probeCalls)
}

func TestEnsure_ConfirmerError(t *testing.T) {
	confirmer := &scriptedConfirmer{err: errors.New("not a terminal")}
	engine, _ := newEngine(true, confirmer)
	c := &fakeCapability{name: "k9s", probes: []bool{false}}

	_, err := engine.Ensure(context.Background(), c)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a terminal")
	assert.Zero(t, c.installCalls)
}

func TestEnsure_ForegroundSkipsVerification(t *testing.T) {
	engine, _ := newEngine(false, nil)
	c := &fakeCapability{name: "Port Forward", probes: []bool{false}, foreground: true}

	outcome, err := engine.Ensure(context.Background(), c)

	require.NoError(t, err)
	assert.Equal(t, OutcomeInstalled, outcome)
	assert.Equal(t, 1, c.probeCalls)
	assert.Equal(t, 1, c.installCalls)
}

func TestEnsure_NilConfirmerDeclines(t *testing.T) {
	engine, _ := newEngine(true, nil)
	c := &fakeCapability{name: "docker", probes: []bool{false}}

	outcome, err := engine.Ensure(context.Background(), c)

	require.NoError(t, err)
	assert.Equal(t, OutcomeDeclined, outcome)
	assert.Zero(t, c.installCalls)
}

func TestRemove_AbsentIsNoOp(t *testing.T) {
	confirmer := &scriptedConfirmer{answer: true}
	engine, rec := newEngine(true, confirmer)
	c := &fakeCapability{name: "k3d cluster", probes: []bool{false}}

	outcome, err := engine.Remove(context.Background(), c)

	require.NoError(t, err)
	assert.Equal(t, OutcomeAbsent, outcome)
	assert.Zero(t, c.removeCalls)
	assert.Empty(t, confirmer.prompts)
	assert.Equal(t, []reporting.Phase{reporting.PhaseNotRunning}, rec.Phases())
}

func TestRemove_PresentRemoves(t *testing.T) {
	confirmer := &scriptedConfirmer{answer: true}
	engine, rec := newEngine(true, confirmer)
	c := &fakeCapability{name: "k3d cluster", probes: []bool{true}}

	outcome, err := engine.Remove(context.Background(), c)

	require.NoError(t, err)
	assert.Equal(t, OutcomeRemoved, outcome)
	assert.Equal(t, 1, c.removeCalls)
	assert.Equal(t, 1, c.probeCalls)
	assert.Equal(t, []string{"`k3d cluster` is present: do you want me to remove it?"}, confirmer.prompts)
	assert.Equal(t, []reporting.Phase{reporting.PhaseRemoving, reporting.PhaseRemoved}, rec.Phases())
}

func TestRemove_Declined(t *testing.T) {
	engine, _ := newEngine(true, &scriptedConfirmer{answer: false})
	c := &fakeCapability{name: "k3d cluster", probes: []bool{true}}

	outcome, err := engine.Remove(context.Background(), c)

	require.NoError(t, err)
	assert.Equal(t, OutcomeDeclined, outcome)
	assert.Zero(t, c.removeCalls)
}

func TestRemove_FailurePropagates(t *testing.T) {
	engine, _ := newEngine(false, nil)
	c := &fakeCapability{name: "k3d cluster", probes: []bool{true}, removeErr: errors.New("exit status 1")}

	_, err := engine.Remove(context.Background(), c)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "k3d cluster")
}

func TestEnsureAll_StopsAtFirstError(t *testing.T) {
	engine, _ := newEngine(false, nil)
	first := &fakeCapability{name: "curl", probes: []bool{true}}
	broken := &fakeCapability{name: "git", probes: []bool{false, false}}
	never := &fakeCapability{name: "k3d", probes: []bool{true}}

	err := engine.EnsureAll(context.Background(), first, broken, never)

	require.Error(t, err)
	assert.Zero(t, never.probeCalls)
}
