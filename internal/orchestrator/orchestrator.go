package orchestrator

import (
	"context"
	"fmt"
	"time"

	"kfpl/internal/capability"
	"kfpl/internal/reporting"
	"kfpl/pkg/logging"
)

const subsystem = "Engine"

// Confirmer asks the operator to approve a mutating action.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

// Confirm implements Confirmer.
func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// Outcome is how an Ensure or Remove call completed successfully.
type Outcome string

const (
	// OutcomePresent: Ensure found the capability already present.
	OutcomePresent Outcome = "present"
	// OutcomeAbsent: Remove found the capability already absent.
	OutcomeAbsent Outcome = "absent"
	// OutcomeDeclined: the operator skipped the action.
	OutcomeDeclined Outcome = "declined"
	// OutcomeInstalled: the install action ran and was verified.
	OutcomeInstalled Outcome = "installed"
	// OutcomeRemoved: the removal action ran.
	OutcomeRemoved Outcome = "removed"
)

// Config holds the engine's collaborators. Confirm is the Confirmation
// Gate and stays constant for the lifetime of the engine.
type Config struct {
	Confirm   bool
	Confirmer Confirmer
	Reporter  reporting.Reporter
}

// Engine runs the ensure/remove workflows.
type Engine struct {
	confirm   bool
	confirmer Confirmer
	reporter  reporting.Reporter
}

// New creates an Engine. A nil Reporter discards updates; a nil Confirmer
// with an active gate declines every action.
func New(cfg Config) *Engine {
	e := &Engine{
		confirm:   cfg.Confirm,
		confirmer: cfg.Confirmer,
		reporter:  cfg.Reporter,
	}
	if e.reporter == nil {
		e.reporter = reporting.NopReporter{}
	}
	if e.confirmer == nil {
		e.confirmer = ConfirmFunc(func(context.Context, string) (bool, error) { return false, nil })
	}
	return e
}

func (e *Engine) report(name string, phase reporting.Phase, err error) {
	e.reporter.Report(reporting.Update{
		Timestamp:  time.Now(),
		Capability: name,
		Phase:      phase,
		Err:        err,
	})
}

func (e *Engine) probe(ctx context.Context, c capability.Capability) (bool, error) {
	present, err := c.IsPresent(ctx)
	if err != nil {
		return false, &capability.ProbeError{Name: c.Name(), Err: err}
	}
	return present, nil
}

// approved asks the operator unless the gate is inactive.
func (e *Engine) approved(ctx context.Context, prompt string) (bool, error) {
	if !e.confirm {
		return true, nil
	}
	ok, err := e.confirmer.Confirm(ctx, prompt)
	if err != nil {
		return false, fmt.Errorf("failed to get confirmation: %w", err)
	}
	return ok, nil
}

// Ensure makes c present. It never runs the install action when the probe
// already reports c as present.
func (e *Engine) Ensure(ctx context.Context, c capability.Capability) (Outcome, error) {
	name := c.Name()
	e.report(name, reporting.PhaseChecking, nil)

	present, err := e.probe(ctx, c)
	if err != nil {
		e.report(name, reporting.PhaseFailed, err)
		return "", err
	}
	if present {
		logging.Debug(subsystem, "%s is already present", name)
		e.report(name, reporting.PhasePresent, nil)
		return OutcomePresent, nil
	}
	e.report(name, reporting.PhaseAbsent, nil)

	ok, err := e.approved(ctx, fmt.Sprintf("`%s` is not present: do you want me to make it so?", name))
	if err != nil {
		e.report(name, reporting.PhaseFailed, err)
		return "", err
	}
	if !ok {
		logging.Info(subsystem, "Operator declined installing %s", name)
		e.report(name, reporting.PhaseDeclined, nil)
		return OutcomeDeclined, nil
	}

	e.report(name, reporting.PhaseInstalling, nil)
	logging.Info(subsystem, "Installing %s", name)
	if err := c.MakePresent(ctx); err != nil {
		e.report(name, reporting.PhaseFailed, err)
		return "", fmt.Errorf("failed to ensure `%s`: %w", name, err)
	}

	if capability.IsForeground(c) {
		logging.Debug(subsystem, "%s ran in the foreground; nothing left to verify", name)
		e.report(name, reporting.PhaseInstalled, nil)
		return OutcomeInstalled, nil
	}

	present, err = e.probe(ctx, c)
	if err != nil {
		e.report(name, reporting.PhaseFailed, err)
		return "", err
	}
	if !present {
		verr := &capability.VerificationFailure{Name: name}
		e.report(name, reporting.PhaseFailed, verr)
		return "", verr
	}

	e.report(name, reporting.PhaseInstalled, nil)
	return OutcomeInstalled, nil
}

// Remove makes c absent. It never runs the removal action when the probe
// already reports c as absent.
func (e *Engine) Remove(ctx context.Context, c capability.Remover) (Outcome, error) {
	name := c.Name()

	present, err := e.probe(ctx, c)
	if err != nil {
		e.report(name, reporting.PhaseFailed, err)
		return "", err
	}
	if !present {
		e.report(name, reporting.PhaseNotRunning, nil)
		return OutcomeAbsent, nil
	}

	ok, err := e.approved(ctx, fmt.Sprintf("`%s` is present: do you want me to remove it?", name))
	if err != nil {
		e.report(name, reporting.PhaseFailed, err)
		return "", err
	}
	if !ok {
		logging.Info(subsystem, "Operator declined removing %s", name)
		e.report(name, reporting.PhaseDeclined, nil)
		return OutcomeDeclined, nil
	}

	e.report(name, reporting.PhaseRemoving, nil)
	logging.Info(subsystem, "Removing %s", name)
	if err := c.MakeNotPresent(ctx); err != nil {
		e.report(name, reporting.PhaseFailed, err)
		return "", fmt.Errorf("failed to remove `%s`: %w", name, err)
	}

	e.report(name, reporting.PhaseRemoved, nil)
	return OutcomeRemoved, nil
}

// EnsureAll ensures each capability in order and stops at the first error.
func (e *Engine) EnsureAll(ctx context.Context, caps ...capability.Capability) error {
	for _, c := range caps {
		if _, err := e.Ensure(ctx, c); err != nil {
			return err
		}
	}
	return nil
}
