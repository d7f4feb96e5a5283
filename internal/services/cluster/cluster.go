// Package cluster manages the local k3d cluster kfpl deploys into.
package cluster

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"kfpl/internal/capability"
	"kfpl/internal/config"
	"kfpl/internal/services"
	"kfpl/internal/utils"
	"kfpl/pkg/logging"
)

const (
	subsystem = "Cluster"

	// Name is the display name of the cluster capability.
	Name = "k3d cluster"

	// wildcardAddress is what k3d writes into the kubeconfig for a load
	// balancer bound to all interfaces.
	wildcardAddress = "0.0.0.0"
)

// Cluster is the k3d cluster capability.
type Cluster struct {
	cfg     config.ClusterConfig
	runtime config.RuntimeConfig
	runner  utils.Runner

	// For mocking in tests
	sleep          func(ctx context.Context, d time.Duration) error
	inContainer    func(cgroupPath string) (bool, error)
	kubeconfigPath func() string
}

// New creates the cluster capability for cfg.
func New(cfg config.KfplConfig, r utils.Runner) *Cluster {
	return &Cluster{
		cfg:            cfg.Cluster,
		runtime:        cfg.Runtime,
		runner:         r,
		sleep:          utils.Sleep,
		inContainer:    utils.InContainer,
		kubeconfigPath: utils.DefaultKubeconfigPath,
	}
}

// Name implements capability.Capability.
func (c *Cluster) Name() string { return Name }

// IsPresent implements capability.Capability. It looks for the cluster name
// in the docker ps listing filtered by that name.
func (c *Cluster) IsPresent(ctx context.Context) (bool, error) {
	return services.OutputContains(ctx, c.runner, c.psCommand(), c.cfg.Name)
}

func (c *Cluster) psCommand() utils.Command {
	return utils.Cmd("docker", "ps", "--filter", "name="+c.cfg.Name)
}

// CreateCommand is the k3d invocation creating the cluster.
func (c *Cluster) CreateCommand() utils.Command {
	apiPort := c.cfg.APIAddress + ":" + strconv.Itoa(c.cfg.APIPort)
	return utils.Cmd("k3d", "cluster", "create", c.cfg.Name, "--image", c.cfg.Image, "--api-port", apiPort)
}

// MakePresent implements capability.Capability.
func (c *Cluster) MakePresent(ctx context.Context) error {
	logging.Info(subsystem, "Creating cluster %s from %s", c.cfg.Name, c.cfg.Image)

	err := capability.RunSteps(ctx, subsystem,
		capability.Exec(c.runner, "Unable to start the k3d k8s cluster.", c.CreateCommand()),
		services.Settle("Unable to wait for the k3d cluster to settle.", c.sleep, c.cfg.SettleInterval),
		capability.Func("Unable to patch the kubeconfig for access from inside a container.", c.patchKubeconfig),
		services.KubectlWait(c.runner, "Unable to wait for the traefik deployment to complete.", services.WaitSpec{
			Condition: "complete",
			Resource:  "job/helm-install-traefik",
			Namespace: "kube-system",
			Timeout:   c.cfg.WaitTimeout,
		}),
		services.KubectlWait(c.runner, "Unable to wait for the traefik deployment to come up.", services.WaitSpec{
			Condition: "available",
			Resource:  "deploy/traefik",
			Namespace: "kube-system",
			Timeout:   c.cfg.WaitTimeout,
		}),
	)
	if err != nil {
		return err
	}

	present, err := c.IsPresent(ctx)
	if err != nil {
		return &capability.ProbeError{Name: Name, Err: err}
	}
	if !present {
		return &capability.VerificationFailure{Name: Name}
	}
	return nil
}

// patchKubeconfig points the kubeconfig at the host alias when kfpl runs in
// a container, where the wildcard address is not reachable.
func (c *Cluster) patchKubeconfig(ctx context.Context) error {
	inContainer, err := c.inContainer(c.runtime.CgroupPath)
	if err != nil {
		return fmt.Errorf("unable to check if inside a docker container: %w", err)
	}
	if !inContainer {
		logging.Debug(subsystem, "Not running in a container; leaving the kubeconfig alone")
		return nil
	}

	path := c.runtime.Kubeconfig
	if path == "" {
		path = c.kubeconfigPath()
	}
	n, err := utils.ReplaceInFile(path, wildcardAddress, c.cfg.HostAlias)
	if err != nil {
		return err
	}
	logging.Info(subsystem, "Replaced %d occurrence(s) of %s with %s in %s", n, wildcardAddress, c.cfg.HostAlias, path)
	return nil
}

// MakeNotPresent implements capability.Remover.
func (c *Cluster) MakeNotPresent(ctx context.Context) error {
	logging.Info(subsystem, "Deleting cluster %s", c.cfg.Name)
	return capability.RunSteps(ctx, subsystem,
		capability.Exec(c.runner, "Unable to stop the k3d k8s cluster.", utils.Cmd("k3d", "cluster", "delete", c.cfg.Name)),
	)
}
