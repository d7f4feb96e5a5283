package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"kfpl/internal/config"
	"kfpl/internal/reporting"
	"kfpl/internal/services/portforward"
	"kfpl/pkg/logging"
)

// For mocking in tests
var clipboardWriteAll = clipboard.WriteAll

type uiFlags struct {
	kfpOnly bool
	port    int
	address string
	copyURL bool
}

func newUICmd(opts *globalOptions) *cobra.Command {
	flags := &uiFlags{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Starts the port forwarding to the KFP UI via `kubectl`.",
		Long: `Runs kubectl port-forward in the foreground until interrupted (Ctrl+C).

By default the Kubeflow dashboard is exposed through the istio ingress
gateway. With --kfp-only the standalone KFP UI service is forwarded instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			flags.apply(cmd, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			tunnel := portforward.New(cfg.Tunnel, newRunner())
			out := cmd.OutOrStdout()

			reporter := reporting.NewConsoleReporter(out)
			reporter.Heading("Starting the", "port forward", "to the UI ...")
			fmt.Fprintf(out, "  The UI will be available at %s\n", tunnel.URL())
			if flags.copyURL {
				if err := clipboardWriteAll(tunnel.URL()); err != nil {
					logging.Warn("PortForward", "Could not copy the URL to the clipboard: %v", err)
				} else {
					fmt.Fprintln(out, "  URL copied to the clipboard.")
				}
			}

			engine := opts.newEngine(reporter)
			if _, err := engine.Ensure(ctx, tunnel); err != nil {
				if errors.Is(ctx.Err(), context.Canceled) {
					fmt.Fprintln(out, "  Port forward stopped.")
					return nil
				}
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.kfpOnly, "kfp-only", false, "Port forwards only the KubeFlow Pipelines (KFP) UI, rather than the KubeFlow UI.")
	cmd.Flags().IntVarP(&flags.port, "port", "p", config.DefaultTunnelPort, "The localhost port to which you want to bind the port forward.")
	cmd.Flags().StringVarP(&flags.address, "address", "a", config.DefaultTunnelAddress, "The address to which the port forwarding proxy is bound (e.g., if you don't want outside connections, use `127.0.0.1`).")
	cmd.Flags().BoolVar(&flags.copyURL, "copy-url", false, "Copy the UI URL to the clipboard before starting the port forward.")

	return cmd
}

func (f *uiFlags) apply(cmd *cobra.Command, cfg *config.KfplConfig) {
	changed := cmd.Flags().Changed
	if changed("kfp-only") {
		cfg.Tunnel.KFPOnly = f.kfpOnly
	}
	if changed("port") {
		cfg.Tunnel.Port = f.port
	}
	if changed("address") {
		cfg.Tunnel.Address = f.address
	}
}
