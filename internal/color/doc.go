// Package color holds the palette kfpl uses for operator-facing output.
//
// Colors are lipgloss adaptive colors: the renderer picks the light or dark
// variant from the terminal background and drops styling entirely when the
// output is not a terminal or NO_COLOR is set.
//
// # Semantic Colors
//
//   - Highlight: capability and section names
//   - Success: completed actions
//   - Caution: notes asking the operator to pay attention
//   - Failure: absent capabilities and errors
package color
