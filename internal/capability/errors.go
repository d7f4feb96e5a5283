package capability

import (
	"errors"
	"fmt"
)

// ProbeError means a presence check could not be executed at all.
type ProbeError struct {
	Name string
	Err  error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("unable to check whether `%s` is present: %v", e.Name, e.Err)
}

func (e *ProbeError) Unwrap() error { return e.Err }

// StepFailure means one step of an action failed. Step is the human-readable
// description of that step.
type StepFailure struct {
	Step string
	Err  error
}

func (e *StepFailure) Error() string {
	if e.Err == nil {
		return e.Step
	}
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepFailure) Unwrap() error { return e.Err }

// VerificationFailure means an action claimed success but a fresh probe
// still reports the capability as absent.
type VerificationFailure struct {
	Name string
}

func (e *VerificationFailure) Error() string {
	return fmt.Sprintf("unable to verify that `%s` is present after a successful install", e.Name)
}

// IsProbeError reports whether err contains a ProbeError.
func IsProbeError(err error) bool {
	var pe *ProbeError
	return errors.As(err, &pe)
}

// IsStepFailure reports whether err contains a StepFailure.
func IsStepFailure(err error) bool {
	var sf *StepFailure
	return errors.As(err, &sf)
}

// IsVerificationFailure reports whether err contains a VerificationFailure.
func IsVerificationFailure(err error) bool {
	var vf *VerificationFailure
	return errors.As(err, &vf)
}

// FailedStep returns the description of the failed step in err, if any.
func FailedStep(err error) (string, bool) {
	var sf *StepFailure
	if errors.As(err, &sf) {
		return sf.Step, true
	}
	return "", false
}
