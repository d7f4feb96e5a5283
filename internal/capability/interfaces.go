package capability

import "context"

// Capability is the uniform interface of every installable or manageable
// entity: host binaries, the local cluster, the pipeline services and the
// UI tunnel.
type Capability interface {
	// Name is the display name used in prompts and reports.
	Name() string

	// IsPresent observes whether the capability's effect currently exists.
	// It must not mutate anything. An error means the check could not run.
	IsPresent(ctx context.Context) (bool, error)

	// MakePresent performs the installation action.
	MakePresent(ctx context.Context) error
}

// Remover is implemented by capabilities that can also be torn down.
type Remover interface {
	Capability

	// MakeNotPresent performs the removal action.
	MakeNotPresent(ctx context.Context) error
}

// Foreground is implemented by capabilities whose action blocks until its
// effect has ended (e.g. a relay terminated by the operator). A probe after
// such an action has nothing left to observe, so it is not re-verified.
type Foreground interface {
	Foreground() bool
}

// IsForeground reports whether c declares itself as a foreground capability.
func IsForeground(c Capability) bool {
	fg, ok := c.(Foreground)
	return ok && fg.Foreground()
}
