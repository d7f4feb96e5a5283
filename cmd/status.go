package cmd

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"kfpl/internal/capability"
	"kfpl/internal/installers"
	"kfpl/internal/services/cluster"
	"kfpl/internal/services/pipelines"
)

// statusRow is one line of the status table.
type statusRow struct {
	kind    string
	name    string
	status  string
	present bool
}

func newStatusCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Shows which dependencies and services are present, without changing anything.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			if err := cfg.Validate(); err != nil {
				return err
			}

			runner := newRunner()
			var rows []statusRow
			for _, c := range installers.All(runner) {
				row := probeRow(cmd, "dependency", c)
				if inst, ok := c.(*installers.Installer); ok && row.present {
					if path, err := runner.LookPath(inst.Binary()); err == nil {
						row.status += " (" + path + ")"
					}
				}
				rows = append(rows, row)
			}
			rows = append(rows, probeRow(cmd, "service", cluster.New(cfg, runner)))
			rows = append(rows, probeRow(cmd, "service", pipelines.New(cfg, runner)))

			printStatusTable(cmd.OutOrStdout(), rows)
			return nil
		},
	}
}

// probeRow only observes: a probe that cannot run is shown, not returned.
func probeRow(cmd *cobra.Command, kind string, c capability.Capability) statusRow {
	row := statusRow{kind: kind, name: c.Name()}
	present, err := c.IsPresent(cmd.Context())
	switch {
	case err != nil:
		row.status = "⚠️ unknown (" + err.Error() + ")"
	case present:
		row.status = "💯 present"
		row.present = true
	default:
		row.status = "✘ absent"
	}
	return row
}

func printStatusTable(out io.Writer, rows []statusRow) {
	kindWidth, nameWidth := runewidth.StringWidth("KIND"), runewidth.StringWidth("NAME")
	for _, r := range rows {
		kindWidth = max(kindWidth, runewidth.StringWidth(r.kind))
		nameWidth = max(nameWidth, runewidth.StringWidth(r.name))
	}

	fmt.Fprintf(out, "%s  %s  %s\n", runewidth.FillRight("KIND", kindWidth), runewidth.FillRight("NAME", nameWidth), "STATUS")
	for _, r := range rows {
		fmt.Fprintf(out, "%s  %s  %s\n", runewidth.FillRight(r.kind, kindWidth), runewidth.FillRight(r.name, nameWidth), r.status)
	}
}
