// Package capability defines the contract every installable or manageable
// entity in kfpl implements, and the error taxonomy shared by all of them.
//
// # Contract
//
// A Capability has a stable display name, a presence probe and an
// installation action:
//
//	type Capability interface {
//	    Name() string
//	    IsPresent(ctx context.Context) (bool, error)
//	    MakePresent(ctx context.Context) error
//	}
//
// Capabilities that can be torn down also implement Remover. The probe
// never mutates anything and its result is never cached: every call
// re-observes the host or the cluster.
//
// # Errors
//
//   - ProbeError: the probe itself could not run (spawn or I/O failure).
//   - StepFailure: one step of an action failed; it names the step.
//   - VerificationFailure: the action reported success, but a fresh probe
//     disagrees.
//
// # Steps
//
// Actions are ordered lists of Step values run by RunSteps, which stops at
// the first failing step and wraps the cause in a StepFailure carrying the
// step's description. Nothing is rolled back.
//
// # Binary probe
//
// BinaryPresent is the default probe for plain executables. Any resolution
// failure counts as "absent"; it never produces a ProbeError.
package capability
