package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kfpl/internal/config"
	"kfpl/internal/orchestrator"
	"kfpl/internal/prompt"
	"kfpl/internal/reporting"
	"kfpl/internal/utils"
	"kfpl/pkg/logging"
)

// globalOptions holds the persistent flags and the configuration loaded from
// them before any subcommand runs.
type globalOptions struct {
	assumeYes  bool
	debug      bool
	logLevel   string
	configPath string

	cfg config.KfplConfig
}

// For mocking in tests
var newRunner = func() utils.Runner { return utils.NewExecRunner() }
var newConfirmer = func() orchestrator.Confirmer { return prompt.NewHuhConfirmer() }

// rootCmd represents the base command when called without any subcommands
var rootCmd *cobra.Command

func init() {
	rootCmd = newRootCmd()
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "kfpl",
		Short: "Automates running KubeFlow Pipelines (KFP) locally.",
		Long: `kfpl bootstraps a local Kubeflow Pipelines environment:

  kfpl init           installs the host tools (curl, git, k3d, kubectl, kfctl, k9s, pip3, kfp, docker)
  kfpl service start  creates a k3d cluster and deploys KFP or the full Kubeflow platform
  kfpl ui             port forwards the UI to this machine
  kfpl service stop   deletes the cluster

Every step checks first and only acts on what is missing, asking before
each change unless --yes is given.`,
		// SilenceUsage is set to true to prevent printing usage message on errors
		// handled by us (e.g. failed installs, declined prompts)
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	root.PersistentFlags().BoolVarP(&opts.assumeYes, "yes", "y", false, "Answers all of the prompts with 'yes', resulting in a no-touch execution.")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging (same as --log-level=debug).")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Diagnostic log level: debug, info, warn or error.")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Explicit config file (default layers ~/.config/kfpl/config.yaml and ./.kfpl/config.yaml)")

	root.AddCommand(newInitCmd(opts))
	root.AddCommand(newServiceCmd(opts))
	root.AddCommand(newUICmd(opts))
	root.AddCommand(newStatusCmd(opts))
	root.AddCommand(newVersionCmd())
	root.AddCommand(newSelfUpdateCmd())

	return root
}

// setup initializes logging and loads the configuration files.
func (o *globalOptions) setup(cmd *cobra.Command) error {
	level, err := logging.ParseLevel(o.logLevel)
	if err != nil {
		return err
	}
	if o.debug {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, cmd.ErrOrStderr())

	if o.configPath != "" {
		o.cfg, err = config.LoadConfigFromPath(o.configPath)
	} else {
		o.cfg, err = config.LoadConfig()
	}
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	return nil
}

// newEngine wires the orchestrator for one command invocation.
func (o *globalOptions) newEngine(reporter reporting.Reporter) *orchestrator.Engine {
	return orchestrator.New(orchestrator.Config{
		Confirm:   !o.assumeYes,
		Confirmer: newConfirmer(),
		Reporter:  reporter,
	})
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "kfpl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error chain, we just exit non-zero
		os.Exit(1)
	}
}
