package cmd

import (
	"github.com/spf13/cobra"

	"kfpl/internal/installers"
	"kfpl/internal/reporting"
)

func newInitCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Ensures the dependencies are met (may need to be run as sudo).",
		Long: `Checks for every host tool kfpl relies on and installs the missing ones,
in this order: curl, git, k3d, kubectl, kfctl, k9s, pip3, kfp, docker.

Installation uses apt-get, upstream install scripts and release downloads
into /usr/local/bin, so it usually needs to run as root.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reporter := reporting.NewConsoleReporter(cmd.OutOrStdout())
			reporter.Heading("Ensuring proper", "dependencies", "...")

			engine := opts.newEngine(reporter)
			return engine.EnsureAll(cmd.Context(), installers.All(newRunner())...)
		},
	}
}
