package reporting

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"kfpl/internal/color"
	"kfpl/pkg/logging"
)

const tab = "  "

// ConsoleReporter prints operator-facing progress lines. Colours follow the
// capabilities of the writer: a pipe or a buffer gets plain text.
type ConsoleReporter struct {
	out    io.Writer
	styles color.Styles
}

// NewConsoleReporter creates a ConsoleReporter writing to out.
func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{
		out:    out,
		styles: color.NewStyles(lipgloss.NewRenderer(out)),
	}
}

// Heading prints a section heading such as "Ensuring proper dependencies ...".
func (c *ConsoleReporter) Heading(prefix, highlighted, suffix string) {
	fmt.Fprintf(c.out, "%s %s %s\n", prefix, c.styles.Highlight.Render(highlighted), suffix)
}

// Report implements Reporter.
func (c *ConsoleReporter) Report(u Update) {
	if u.Timestamp.IsZero() {
		u.Timestamp = time.Now()
	}
	logging.Debug("Reporter", "%s", u)

	name := "`" + c.styles.Highlight.Render(u.Capability) + "`"

	switch u.Phase {
	case PhaseChecking:
		fmt.Fprintf(c.out, "Checking if %s is present ... ", name)
	case PhasePresent:
		fmt.Fprintln(c.out, "💯!")
	case PhaseAbsent:
		fmt.Fprintf(c.out, "%s!\n", c.styles.Failure.Render("✘"))
	case PhaseNotRunning:
		fmt.Fprintf(c.out, "%s%s is not running!\n", tab, name)
	case PhaseDeclined:
		fmt.Fprintf(c.out, "%sSkipping ...\n", tab)
	case PhaseInstalling:
		fmt.Fprintf(c.out, "%sEnsuring presence of %s (%s) ...\n", tab, name, c.styles.Caution.Render("you may need to interact with the execution"))
	case PhaseInstalled:
		fmt.Fprintf(c.out, "%s%s ensured %s.\n", tab, c.styles.Success.Render("Successfully"), name)
	case PhaseRemoving:
		fmt.Fprintf(c.out, "%sRemoving presence of %s (%s) ...\n", tab, name, c.styles.Caution.Render("you may need to interact with the execution [and sudo]"))
	case PhaseRemoved:
		fmt.Fprintf(c.out, "%s%s removed %s.\n", tab, c.styles.Success.Render("Successfully"), name)
	case PhaseFailed:
		fmt.Fprintf(c.out, "%s%s %s failed: %v\n", tab, c.styles.Failure.Render("✘"), name, u.Err)
	default:
		logging.Warn("Reporter", "Unknown phase %q for %s", u.Phase, u.Capability)
	}
}
