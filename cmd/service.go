package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"kfpl/internal/config"
	"kfpl/internal/reporting"
	"kfpl/internal/services/cluster"
	"kfpl/internal/services/pipelines"
)

func newServiceCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "service",
		Short: "Commands to interact with the k3d cluster, and the KFP service.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("please use a subcommand (check out `kfpl service -h` for help)")
		},
	}
	cmd.AddCommand(newServiceStartCmd(opts))
	cmd.AddCommand(newServiceStopCmd(opts))
	return cmd
}

// clusterFlags are shared by service start and service stop.
type clusterFlags struct {
	name string
}

func (f *clusterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.name, "k3d-cluster-name", "n", config.DefaultClusterName, "The `name` assigned to the cluster created by k3d.")
}

func (f *clusterFlags) apply(cmd *cobra.Command, cfg *config.KfplConfig) {
	if cmd.Flags().Changed("k3d-cluster-name") {
		cfg.Cluster.Name = f.name
	}
}

type serviceStartFlags struct {
	clusterFlags
	image      string
	apiAddress string
	apiPort    int
	kfpOnly    bool
	kfpVersion string
	kfManifest string
}

func newServiceStartCmd(opts *globalOptions) *cobra.Command {
	flags := &serviceStartFlags{}

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Starts the k8s cluster, and the KFP service.",
		Long: `Ensures the k3d cluster is running, then deploys either the full Kubeflow
platform with kfctl or, with --kfp-only, standalone Kubeflow Pipelines.

Readiness waits are bounded by the configured timeouts (10 minutes by default).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			flags.apply(cmd, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			reporter := reporting.NewConsoleReporter(cmd.OutOrStdout())
			reporter.Heading("Ensuring", "services", "are running ...")

			runner := newRunner()
			engine := opts.newEngine(reporter)
			return engine.EnsureAll(cmd.Context(),
				cluster.New(cfg, runner),
				pipelines.New(cfg, runner),
			)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&flags.image, "k3d-image", "i", config.DefaultClusterImage, "The `k3s` image used to serve the k3d cluster.")
	cmd.Flags().StringVarP(&flags.apiAddress, "k3d-api-address", "a", config.DefaultAPIAddress, "The address to which the k3d load balancer for the kubernetes API is bound (e.g., if you don't want outside connections, use `127.0.0.1`).")
	cmd.Flags().IntVarP(&flags.apiPort, "k3d-api-port", "p", config.DefaultAPIPort, "The port to which the k3d load balancer for the kubernetes API is bound.")
	cmd.Flags().BoolVar(&flags.kfpOnly, "kfp-only", false, "Deploys only KubeFlow Pipelines (KFP), rather than all of KubeFlow.")
	cmd.Flags().StringVar(&flags.kfpVersion, "kfp-version", config.DefaultKFPVersion, "The specific version of KFP to install (only works with the `--kfp-only` option).")
	cmd.Flags().StringVar(&flags.kfManifest, "kf-yaml", config.DefaultKFManifest, "The specific YAML manifest used to deploy KF (is ignored when `--kfp-only` is set).")

	return cmd
}

func (f *serviceStartFlags) apply(cmd *cobra.Command, cfg *config.KfplConfig) {
	f.clusterFlags.apply(cmd, cfg)
	changed := cmd.Flags().Changed
	if changed("k3d-image") {
		cfg.Cluster.Image = f.image
	}
	if changed("k3d-api-address") {
		cfg.Cluster.APIAddress = f.apiAddress
	}
	if changed("k3d-api-port") {
		cfg.Cluster.APIPort = f.apiPort
	}
	if changed("kfp-only") {
		cfg.Pipelines.KFPOnly = f.kfpOnly
	}
	if changed("kfp-version") {
		cfg.Pipelines.KFPVersion = f.kfpVersion
	}
	if changed("kf-yaml") {
		cfg.Pipelines.KFManifest = f.kfManifest
	}
}

func newServiceStopCmd(opts *globalOptions) *cobra.Command {
	flags := &clusterFlags{}

	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stops the k8s cluster, and the KFP service.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			flags.apply(cmd, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			reporter := reporting.NewConsoleReporter(cmd.OutOrStdout())
			reporter.Heading("Stopping", "services", "...")

			engine := opts.newEngine(reporter)
			_, err := engine.Remove(cmd.Context(), cluster.New(cfg, newRunner()))
			return err
		},
	}
	flags.register(cmd)
	return cmd
}
