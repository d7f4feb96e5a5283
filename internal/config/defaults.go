package config

import (
	"time"

	"kfpl/internal/utils"
)

const (
	DefaultClusterName    = "kfp-local"
	DefaultClusterImage   = "rancher/k3s:v1.19.2-k3s1"
	DefaultAPIAddress     = "0.0.0.0"
	DefaultAPIPort        = 6443
	DefaultHostAlias      = "host.docker.internal"
	DefaultKFPVersion     = "1.0.4"
	DefaultKFManifest     = "https://raw.githubusercontent.com/kubeflow/manifests/v1.1-branch/kfdef/kfctl_k8s_istio.v1.1.0.yaml"
	DefaultTunnelPort     = 8080
	DefaultTunnelAddress  = "0.0.0.0"
	DefaultCgroupPath     = utils.DefaultCgroupPath
	DefaultSettleInterval = 10 * time.Second
	DefaultWaitTimeout    = 600 * time.Second
	DefaultCRDWaitTimeout = 60 * time.Second
)

// GetDefaultConfig returns the configuration kfpl runs with when no file or
// flag overrides anything.
func GetDefaultConfig() KfplConfig {
	return KfplConfig{
		Cluster: ClusterConfig{
			Name:           DefaultClusterName,
			Image:          DefaultClusterImage,
			APIAddress:     DefaultAPIAddress,
			APIPort:        DefaultAPIPort,
			HostAlias:      DefaultHostAlias,
			SettleInterval: DefaultSettleInterval,
			WaitTimeout:    DefaultWaitTimeout,
		},
		Pipelines: PipelinesConfig{
			KFPVersion:     DefaultKFPVersion,
			KFManifest:     DefaultKFManifest,
			CRDWaitTimeout: DefaultCRDWaitTimeout,
			SettleInterval: DefaultSettleInterval,
			WaitTimeout:    DefaultWaitTimeout,
		},
		Tunnel: TunnelConfig{
			Port:    DefaultTunnelPort,
			Address: DefaultTunnelAddress,
		},
		Runtime: RuntimeConfig{
			CgroupPath: DefaultCgroupPath,
		},
	}
}
