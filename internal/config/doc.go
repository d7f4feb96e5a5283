// Package config provides configuration management for kfpl.
//
// This package implements a layered configuration system that allows users to
// customize kfpl's behavior through YAML files. Configuration is loaded from
// multiple sources and merged in a specific order, with later sources overriding
// earlier ones.
//
// # Configuration Layers
//
//  1. Default Configuration (compiled in, see GetDefaultConfig)
//  2. User Configuration (~/.config/kfpl/config.yaml)
//  3. Project Configuration (./.kfpl/config.yaml)
//
// Command line flags are applied by the cmd package after loading and win
// over every file. An explicit --config file replaces layers 2 and 3.
//
// # Configuration Structure
//
//	cluster:
//	  name: kfp-local
//	  image: rancher/k3s:v1.19.2-k3s1
//	  apiAddress: 0.0.0.0
//	  apiPort: 6443
//	  hostAlias: host.docker.internal
//	  settleInterval: 10s
//	  waitTimeout: 600s
//	pipelines:
//	  kfpVersion: 1.0.4
//	  kfManifest: https://raw.githubusercontent.com/kubeflow/manifests/v1.1-branch/kfdef/kfctl_k8s_istio.v1.1.0.yaml
//	  kfpOnly: false
//	  crdWaitTimeout: 60s
//	  settleInterval: 10s
//	  waitTimeout: 600s
//	tunnel:
//	  port: 8080
//	  address: 0.0.0.0
//	  kfpOnly: false
//	runtime:
//	  cgroupPath: /proc/1/cgroup
//	  kubeconfig: ""   # defaults to $KUBECONFIG or ~/.kube/config
//
// Zero values in a file never override a lower layer, except for the settle
// intervals: "settleInterval: 0s" set in a file turns the pause off. Durations
// use Go duration syntax.
//
// The loaded value is copied into every capability constructor; nothing
// mutates it afterwards.
package config
