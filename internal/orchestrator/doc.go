// Package orchestrator provides the idempotent ensure and remove workflows
// kfpl runs for every capability.
//
// # State machine
//
// Each call is a small state machine with no memory across invocations:
//
//	Checking -> Present (done) | Absent
//	Absent   -> Declined (done) | Acting
//	Acting   -> Verified (done) | Failed
//
// Ensure probes first. A probe that cannot run aborts before any operator
// interaction. A present capability is left alone. An absent one is
// installed, after confirmation when the gate is active, and then probed
// again: an install that exits cleanly but leaves the capability absent is a
// VerificationFailure.
//
// Remove mirrors Ensure: an absent capability is a no-op, a present one is
// removed after confirmation. There is no engine-level re-probe after a
// removal.
//
// A declined confirmation is not an error. The call reports OutcomeDeclined
// with a nil error.
//
// # Usage Example
//
//	engine := orchestrator.New(orchestrator.Config{
//	    Confirm:   true,
//	    Confirmer: prompt.NewHuhConfirmer(),
//	    Reporter:  reporting.NewConsoleReporter(os.Stdout),
//	})
//	if _, err := engine.Ensure(ctx, installers.Curl(runner)); err != nil {
//	    return err
//	}
//
// The engine never runs two capabilities at once and never orders them:
// callers invoke Ensure in dependency order.
package orchestrator
