package color

import "github.com/charmbracelet/lipgloss"

var (
	Highlight = lipgloss.AdaptiveColor{Light: "4", Dark: "12"}
	Success   = lipgloss.AdaptiveColor{Light: "2", Dark: "10"}
	Caution   = lipgloss.AdaptiveColor{Light: "3", Dark: "11"}
	Failure   = lipgloss.AdaptiveColor{Light: "1", Dark: "9"}
)

// Styles is the set of text styles bound to one renderer.
type Styles struct {
	Highlight lipgloss.Style
	Success   lipgloss.Style
	Caution   lipgloss.Style
	Failure   lipgloss.Style
}

// NewStyles returns the palette rendered through r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Highlight: r.NewStyle().Foreground(Highlight),
		Success:   r.NewStyle().Foreground(Success),
		Caution:   r.NewStyle().Foreground(Caution),
		Failure:   r.NewStyle().Foreground(Failure),
	}
}
