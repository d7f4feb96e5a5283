package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"k8s.io/apimachinery/pkg/util/validation"
)

// Validate checks that every value is usable before any capability runs.
// All problems are reported together.
func (c KfplConfig) Validate() error {
	var errs []error

	for _, msg := range validation.IsDNS1123Label(c.Cluster.Name) {
		errs = append(errs, fmt.Errorf("cluster.name %q: %s", c.Cluster.Name, msg))
	}
	errs = appendIfEmpty(errs, "cluster.image", c.Cluster.Image)
	errs = appendIfEmpty(errs, "cluster.apiAddress", c.Cluster.APIAddress)
	errs = appendPort(errs, "cluster.apiPort", c.Cluster.APIPort)
	errs = appendIfEmpty(errs, "cluster.hostAlias", c.Cluster.HostAlias)
	errs = appendDuration(errs, "cluster.settleInterval", c.Cluster.SettleInterval, false)
	errs = appendDuration(errs, "cluster.waitTimeout", c.Cluster.WaitTimeout, true)

	errs = appendIfEmpty(errs, "pipelines.kfpVersion", c.Pipelines.KFPVersion)
	errs = appendIfEmpty(errs, "pipelines.kfManifest", c.Pipelines.KFManifest)
	errs = appendDuration(errs, "pipelines.crdWaitTimeout", c.Pipelines.CRDWaitTimeout, true)
	errs = appendDuration(errs, "pipelines.settleInterval", c.Pipelines.SettleInterval, false)
	errs = appendDuration(errs, "pipelines.waitTimeout", c.Pipelines.WaitTimeout, true)

	errs = appendPort(errs, "tunnel.port", c.Tunnel.Port)
	errs = appendIfEmpty(errs, "tunnel.address", c.Tunnel.Address)

	errs = appendIfEmpty(errs, "runtime.cgroupPath", c.Runtime.CgroupPath)

	return errors.Join(errs...)
}

func appendIfEmpty(errs []error, field, value string) []error {
	if strings.TrimSpace(value) == "" {
		return append(errs, fmt.Errorf("%s must not be empty", field))
	}
	return errs
}

func appendPort(errs []error, field string, port int) []error {
	for _, msg := range validation.IsValidPortNum(port) {
		errs = append(errs, fmt.Errorf("%s %d: %s", field, port, msg))
	}
	return errs
}

func appendDuration(errs []error, field string, d time.Duration, positive bool) []error {
	switch {
	case d < 0:
		return append(errs, fmt.Errorf("%s must not be negative", field))
	case positive && d == 0:
		return append(errs, fmt.Errorf("%s must be greater than zero", field))
	}
	return errs
}

// Seconds renders d the way kubectl wait expects its --timeout value.
// Partial seconds round up: kubectl reads 0s as "check once".
func Seconds(d time.Duration) string {
	secs := int64(d / time.Second)
	if d%time.Second > 0 {
		secs++
	}
	return fmt.Sprintf("%ds", secs)
}
