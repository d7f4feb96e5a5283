package pipelines

import (
	"context"
	"time"

	"kfpl/internal/capability"
	"kfpl/internal/config"
	"kfpl/internal/services"
	"kfpl/internal/utils"
	"kfpl/pkg/logging"
)

// KFPName is the display name of the standalone KFP capability.
const KFPName = "KFP Service"

// KFP installs standalone Kubeflow Pipelines from the upstream kustomize
// manifests at a given git ref.
type KFP struct {
	cfg    config.PipelinesConfig
	runner utils.Runner

	sleep func(ctx context.Context, d time.Duration) error
}

// NewKFP creates the standalone KFP capability.
func NewKFP(cfg config.PipelinesConfig, r utils.Runner) *KFP {
	return &KFP{cfg: cfg, runner: r, sleep: utils.Sleep}
}

// Name implements capability.Capability.
func (k *KFP) Name() string { return KFPName }

// IsPresent implements capability.Capability.
func (k *KFP) IsPresent(ctx context.Context) (bool, error) {
	return probe(ctx, k.runner)
}

// ClusterScopedTarget is the kustomize target holding the CRDs.
func (k *KFP) ClusterScopedTarget() string {
	return kustomizeBase + "cluster-scoped-resources?ref=" + k.cfg.KFPVersion
}

// PlatformAgnosticTarget is the kustomize target holding the workloads.
func (k *KFP) PlatformAgnosticTarget() string {
	return kustomizeBase + "env/platform-agnostic-pns?ref=" + k.cfg.KFPVersion
}

// MakePresent implements capability.Capability. The workloads are only
// applied once the application CRD is established.
func (k *KFP) MakePresent(ctx context.Context) error {
	logging.Info("KFP", "Deploying Kubeflow Pipelines %s", k.cfg.KFPVersion)

	err := capability.RunSteps(ctx, "KFP",
		services.KubectlApplyKustomize(k.runner, "Unable to apply the KFP cluster scoped resources.", k.ClusterScopedTarget()),
		services.KubectlWait(k.runner, "Unable to wait for KFP CRD deployment.", services.WaitSpec{
			Condition: "established",
			Resource:  "crd/applications.app.k8s.io",
			Timeout:   k.cfg.CRDWaitTimeout,
		}),
		services.KubectlApplyKustomize(k.runner, "Unable to apply the KFP platform agnostic deployment.", k.PlatformAgnosticTarget()),
		services.Settle("Unable to wait for the KFP resources to settle.", k.sleep, k.cfg.SettleInterval),
		waitForWorkload(k.runner, k.cfg.WaitTimeout),
	)
	if err != nil {
		return err
	}
	return verify(ctx, k.runner, KFPName)
}
