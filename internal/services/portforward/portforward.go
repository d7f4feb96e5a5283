// Package portforward exposes the pipeline UI on a local port through
// kubectl port-forward.
package portforward

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"kfpl/internal/capability"
	"kfpl/internal/config"
	"kfpl/internal/utils"
	"kfpl/pkg/logging"
)

const (
	subsystem = "PortForward"

	// Name is the display name of the tunnel capability.
	Name = "Port Forward"

	remotePort = 80
)

// Endpoint is a cluster service the tunnel can target.
type Endpoint struct {
	Namespace string
	Service   string
}

var (
	// KFPUIEndpoint is the standalone KFP UI.
	KFPUIEndpoint = Endpoint{Namespace: "kubeflow", Service: "ml-pipeline-ui"}
	// IngressEndpoint is the Kubeflow dashboard behind the istio ingress.
	IngressEndpoint = Endpoint{Namespace: "istio-system", Service: "istio-ingressgateway"}
)

// Tunnel is the port forward capability. MakePresent blocks until kubectl
// exits, normally when the operator interrupts it.
type Tunnel struct {
	cfg    config.TunnelConfig
	runner utils.Runner
}

// New creates the tunnel capability.
func New(cfg config.TunnelConfig, r utils.Runner) *Tunnel {
	return &Tunnel{cfg: cfg, runner: r}
}

// Name implements capability.Capability.
func (t *Tunnel) Name() string { return Name }

// IsPresent implements capability.Capability. An existing listener on the
// port is not detected, so the tunnel is always started.
func (t *Tunnel) IsPresent(ctx context.Context) (bool, error) {
	return false, nil
}

// Foreground implements capability.Foreground.
func (t *Tunnel) Foreground() bool { return true }

// Endpoint returns the service the tunnel targets.
func (t *Tunnel) Endpoint() Endpoint {
	if t.cfg.KFPOnly {
		return KFPUIEndpoint
	}
	return IngressEndpoint
}

// Command is the kubectl invocation running the tunnel.
func (t *Tunnel) Command() utils.Command {
	ep := t.Endpoint()
	return utils.Cmd("kubectl", "port-forward",
		"--address", t.cfg.Address,
		"-n", ep.Namespace,
		"svc/"+ep.Service,
		fmt.Sprintf("%d:%d", t.cfg.Port, remotePort),
	)
}

// URL is where the UI is reachable from this host once the tunnel runs.
func (t *Tunnel) URL() string {
	host := t.cfg.Address
	if ip := net.ParseIP(host); ip != nil && ip.IsUnspecified() {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(t.cfg.Port))
}

// MakePresent implements capability.Capability.
func (t *Tunnel) MakePresent(ctx context.Context) error {
	ep := t.Endpoint()
	logging.Info(subsystem, "Forwarding %s:%d to %s/svc/%s", t.cfg.Address, t.cfg.Port, ep.Namespace, ep.Service)
	return capability.RunSteps(ctx, subsystem,
		capability.Exec(t.runner, "Unable to start the port-forward.", t.Command()),
	)
}
