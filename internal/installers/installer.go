// Package installers holds the recipes kfpl init uses to put the host
// tools in place. Every recipe is a capability probed by resolving its
// binary on PATH and installed by an ordered list of external commands.
package installers

import (
	"context"

	"kfpl/internal/capability"
	"kfpl/internal/utils"
)

const subsystem = "Installer"

// Installer is a host binary dependency.
type Installer struct {
	name   string
	binary string
	runner utils.Runner
	steps  []capability.Step
}

// New creates an Installer probing for binary and running steps to install it.
func New(name, binary string, r utils.Runner, steps ...capability.Step) *Installer {
	return &Installer{name: name, binary: binary, runner: r, steps: steps}
}

// Name implements capability.Capability.
func (i *Installer) Name() string { return i.name }

// Binary is the executable looked up on PATH.
func (i *Installer) Binary() string { return i.binary }

// Steps returns the installation steps in execution order.
func (i *Installer) Steps() []capability.Step {
	return append([]capability.Step(nil), i.steps...)
}

// IsPresent implements capability.Capability. It never fails: a binary that
// cannot be resolved is simply absent.
func (i *Installer) IsPresent(ctx context.Context) (bool, error) {
	return capability.BinaryPresent(i.runner, i.binary), nil
}

// MakePresent implements capability.Capability.
func (i *Installer) MakePresent(ctx context.Context) error {
	return capability.RunSteps(ctx, subsystem, i.steps...)
}

// All returns every host dependency in the order kfpl init ensures them.
func All(r utils.Runner) []capability.Capability {
	return []capability.Capability{
		Curl(r),
		Git(r),
		K3d(r),
		Kubectl(r),
		Kfctl(r),
		K9s(r),
		Pip3(r),
		Kfp(r),
		Docker(r),
	}
}
