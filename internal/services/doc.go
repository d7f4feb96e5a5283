// Package services provides the building blocks shared by kfpl's long
// running services: the k3d cluster, the pipeline service deployed into it
// and the port forward to its UI.
//
// # Service Types
//
//   - cluster: the local k3d cluster (create, wait for traefik, delete)
//   - pipelines: standalone Kubeflow Pipelines or the full Kubeflow platform
//   - portforward: kubectl port-forward to the UI
//
// Every service is a capability.Capability driven by the orchestrator.
// State is never parsed from structured output: probes run one command and
// look for a known name in its raw stdout (see OutputContains). This is a
// plain substring match, so a cluster named "kfp" is also reported present
// while only "kfp-local" is running.
//
// Readiness is delegated to kubectl wait (see KubectlWait). kfpl enforces no
// timeouts of its own beyond the --timeout passed to kubectl.
package services
