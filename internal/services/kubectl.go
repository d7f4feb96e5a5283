package services

import (
	"context"
	"time"

	"kfpl/internal/capability"
	"kfpl/internal/config"
	"kfpl/internal/utils"
)

// WaitSpec describes a kubectl wait invocation.
type WaitSpec struct {
	Condition string // e.g. "available", "complete", "established"
	Resource  string // e.g. "deploy/ml-pipeline"
	Namespace string // empty for cluster-scoped resources
	Timeout   time.Duration
}

// Command renders the kubectl wait command line.
func (w WaitSpec) Command() utils.Command {
	args := []string{
		"wait",
		"--for=condition=" + w.Condition,
		"--timeout=" + config.Seconds(w.Timeout),
		w.Resource,
	}
	if w.Namespace != "" {
		args = append(args, "-n", w.Namespace)
	}
	return utils.Cmd("kubectl", args...)
}

// KubectlWait returns a step blocking until w is satisfied or kubectl gives up.
func KubectlWait(r utils.Runner, description string, w WaitSpec) capability.Step {
	return capability.Exec(r, description, w.Command())
}

// KubectlApplyKustomize returns a step applying a kustomize target.
func KubectlApplyKustomize(r utils.Runner, description, target string) capability.Step {
	return capability.Exec(r, description, utils.Cmd("kubectl", "apply", "-k", target))
}

// Settle returns a step pausing for d. sleep is injectable for tests.
func Settle(description string, sleep func(ctx context.Context, d time.Duration) error, d time.Duration) capability.Step {
	return capability.Func(description, func(ctx context.Context) error {
		return sleep(ctx, d)
	})
}
