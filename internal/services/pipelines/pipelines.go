// Package pipelines deploys the pipeline service into the local cluster,
// either standalone Kubeflow Pipelines (KFP) or the full Kubeflow platform.
// Both are considered present once an ml-pipeline pod shows up in the pod
// listing.
package pipelines

import (
	"context"
	"time"

	"kfpl/internal/capability"
	"kfpl/internal/config"
	"kfpl/internal/services"
	"kfpl/internal/utils"
)

const (
	// Workload is the name looked for in the pod listing.
	Workload = "ml-pipeline"
	// Namespace hosts the ml-pipeline deployment in both variants.
	Namespace = "kubeflow"

	kustomizeBase = "github.com/kubeflow/pipelines/manifests/kustomize/"
)

// New returns the KFP variant when cfg.Pipelines.KFPOnly is set and the
// Kubeflow variant otherwise.
func New(cfg config.KfplConfig, r utils.Runner) capability.Capability {
	if cfg.Pipelines.KFPOnly {
		return NewKFP(cfg.Pipelines, r)
	}
	return NewKubeflow(cfg.Pipelines, r)
}

// probe is shared by both variants.
func probe(ctx context.Context, r utils.Runner) (bool, error) {
	return services.OutputContains(ctx, r, utils.Cmd("kubectl", "get", "pods", "--all-namespaces"), Workload)
}

func waitForWorkload(r utils.Runner, timeout time.Duration) capability.Step {
	return services.KubectlWait(r, "Unable to wait for the ml-pipeline deployment to come up.", services.WaitSpec{
		Condition: "available",
		Resource:  "deploy/" + Workload,
		Namespace: Namespace,
		Timeout:   timeout,
	})
}

// verify re-probes after a successful action.
func verify(ctx context.Context, r utils.Runner, name string) error {
	present, err := probe(ctx, r)
	if err != nil {
		return &capability.ProbeError{Name: name, Err: err}
	}
	if !present {
		return &capability.VerificationFailure{Name: name}
	}
	return nil
}
