package reporting

import (
	"fmt"
	"time"
)

// Phase is a step of the ensure/remove state machine as seen by an operator.
type Phase string

const (
	PhaseChecking   Phase = "Checking"
	PhasePresent    Phase = "Present"
	PhaseAbsent     Phase = "Absent"
	PhaseNotRunning Phase = "NotRunning"
	PhaseDeclined   Phase = "Declined"
	PhaseInstalling Phase = "Installing"
	PhaseInstalled  Phase = "Installed"
	PhaseRemoving   Phase = "Removing"
	PhaseRemoved    Phase = "Removed"
	PhaseFailed     Phase = "Failed"
)

// String makes Phase satisfy the fmt.Stringer interface.
func (p Phase) String() string {
	return string(p)
}

// Update carries one state transition of a capability.
type Update struct {
	Timestamp time.Time
	// Capability is the display name of the capability.
	Capability string
	Phase      Phase
	// Err is set for PhaseFailed.
	Err error
}

// String provides a simple string representation for debugging the update itself.
func (u Update) String() string {
	return fmt.Sprintf("Update(TS: %s, Capability: %s, Phase: %s, Err: %v)",
		u.Timestamp.Format(time.RFC3339), u.Capability, u.Phase, u.Err)
}

// Reporter receives capability state transitions.
type Reporter interface {
	Report(update Update)
}

// NopReporter discards every update.
type NopReporter struct{}

// Report implements Reporter.
func (NopReporter) Report(Update) {}

// Recorder keeps every update in memory. Useful in tests.
type Recorder struct {
	Updates []Update
}

// Report implements Reporter.
func (r *Recorder) Report(u Update) {
	r.Updates = append(r.Updates, u)
}

// Phases returns the recorded phases in order.
func (r *Recorder) Phases() []Phase {
	phases := make([]Phase, 0, len(r.Updates))
	for _, u := range r.Updates {
		phases = append(phases, u.Phase)
	}
	return phases
}
