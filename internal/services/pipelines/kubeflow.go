package pipelines

import (
	"context"
	"fmt"
	"os"
	"time"

	"kfpl/internal/capability"
	"kfpl/internal/config"
	"kfpl/internal/services"
	"kfpl/internal/utils"
	"kfpl/pkg/logging"
)

// KubeflowName is the display name of the full Kubeflow capability.
const KubeflowName = "KF Service"

// Kubeflow installs the full platform with kfctl. kfctl writes its
// generated kustomize tree into the working directory, so it runs inside a
// throwaway staging directory.
type Kubeflow struct {
	cfg    config.PipelinesConfig
	runner utils.Runner

	sleep   func(ctx context.Context, d time.Duration) error
	mkdir   func(dir, pattern string) (string, error)
	cleanup func(path string) error
}

// NewKubeflow creates the full Kubeflow capability.
func NewKubeflow(cfg config.PipelinesConfig, r utils.Runner) *Kubeflow {
	return &Kubeflow{
		cfg:     cfg,
		runner:  r,
		sleep:   utils.Sleep,
		mkdir:   os.MkdirTemp,
		cleanup: os.RemoveAll,
	}
}

// Name implements capability.Capability.
func (k *Kubeflow) Name() string { return KubeflowName }

// IsPresent implements capability.Capability.
func (k *Kubeflow) IsPresent(ctx context.Context) (bool, error) {
	return probe(ctx, k.runner)
}

// MakePresent implements capability.Capability. The staging directory is
// removed before the final verification and left behind when a step fails.
func (k *Kubeflow) MakePresent(ctx context.Context) error {
	logging.Info("Kubeflow", "Deploying Kubeflow from %s", k.cfg.KFManifest)

	var workDir string
	err := capability.RunSteps(ctx, "Kubeflow",
		capability.Func("Unable to create a KubeFlow temp directory.", func(ctx context.Context) error {
			dir, err := k.mkdir(k.cfg.WorkDir, "kfpl-kf-")
			if err != nil {
				return err
			}
			workDir = dir
			logging.Debug("Kubeflow", "Staging kfctl output in %s", workDir)
			return nil
		}),
		capability.Func("Unable to apply the KF kustomize script.", func(ctx context.Context) error {
			return k.runner.Run(ctx, utils.Cmd("kfctl", "apply", "-V", "-f", k.cfg.KFManifest).In(workDir))
		}),
		services.Settle("Unable to wait for the KF resources to settle.", k.sleep, k.cfg.SettleInterval),
		waitForWorkload(k.runner, k.cfg.WaitTimeout),
		capability.Func("Unable to remove the KF temp directory.", func(ctx context.Context) error {
			if err := k.cleanup(workDir); err != nil {
				return fmt.Errorf("failed to remove %s: %w", workDir, err)
			}
			return nil
		}),
	)
	if err != nil {
		return err
	}
	return verify(ctx, k.runner, KubeflowName)
}
