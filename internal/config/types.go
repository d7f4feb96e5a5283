package config

import (
	"time"
)

// KfplConfig is the top-level configuration structure for kfpl.
type KfplConfig struct {
	Cluster   ClusterConfig   `yaml:"cluster"`
	Pipelines PipelinesConfig `yaml:"pipelines"`
	Tunnel    TunnelConfig    `yaml:"tunnel"`
	Runtime   RuntimeConfig   `yaml:"runtime"`
}

// ClusterConfig defines the local k3d cluster.
type ClusterConfig struct {
	Name       string `yaml:"name,omitempty"`       // k3d cluster name, also the docker ps filter
	Image      string `yaml:"image,omitempty"`      // k3s image serving the cluster
	APIAddress string `yaml:"apiAddress,omitempty"` // Bind address of the API load balancer
	APIPort    int    `yaml:"apiPort,omitempty"`
	// HostAlias replaces APIAddress in the kubeconfig when kfpl runs inside a container.
	HostAlias      string        `yaml:"hostAlias,omitempty"`
	SettleInterval time.Duration `yaml:"settleInterval,omitempty"` // Pause after creation before touching the kubeconfig
	WaitTimeout    time.Duration `yaml:"waitTimeout,omitempty"`    // Ceiling for the traefik readiness waits
}

// PipelinesConfig defines the pipeline service deployed into the cluster.
type PipelinesConfig struct {
	KFPVersion string `yaml:"kfpVersion,omitempty"` // Git ref of the KFP kustomize manifests
	KFManifest string `yaml:"kfManifest,omitempty"` // KfDef manifest applied by kfctl
	// KFPOnly deploys standalone Kubeflow Pipelines instead of full Kubeflow.
	KFPOnly        bool          `yaml:"kfpOnly,omitempty"`
	CRDWaitTimeout time.Duration `yaml:"crdWaitTimeout,omitempty"`
	SettleInterval time.Duration `yaml:"settleInterval,omitempty"`
	WaitTimeout    time.Duration `yaml:"waitTimeout,omitempty"`
	WorkDir        string        `yaml:"workDir,omitempty"` // Parent of the kfctl staging directory (os.TempDir when empty)
}

// TunnelConfig defines the port forward to the UI.
type TunnelConfig struct {
	Port    int    `yaml:"port,omitempty"`
	Address string `yaml:"address,omitempty"`
	// KFPOnly forwards to the KFP UI service instead of the istio ingress gateway.
	KFPOnly bool `yaml:"kfpOnly,omitempty"`
}

// RuntimeConfig describes the host kfpl runs on.
type RuntimeConfig struct {
	CgroupPath string `yaml:"cgroupPath,omitempty"` // Inspected to detect a container
	Kubeconfig string `yaml:"kubeconfig,omitempty"` // Patched when inside a container (client-go default when empty)
}
