// Package prompt implements operator confirmation for the ensure/remove
// engine.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// ErrNotInteractive is returned when a confirmation is needed but stdin is
// not a terminal. Pass --yes to run unattended.
var ErrNotInteractive = errors.New("confirmation required but stdin is not a terminal (use --yes to skip confirmations)")

// ErrAborted is returned when the operator interrupts the prompt.
var ErrAborted = errors.New("aborted by operator")

// HuhConfirmer asks yes/no questions with a huh confirm field.
type HuhConfirmer struct {
	isTerminal func() bool
	ask        func(ctx context.Context, title string, answer *bool) error
}

// NewHuhConfirmer creates a HuhConfirmer bound to the process terminal.
func NewHuhConfirmer() *HuhConfirmer {
	return &HuhConfirmer{
		isTerminal: isInteractiveTTY,
		ask:        askHuh,
	}
}

func isInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

func askHuh(ctx context.Context, title string, answer *bool) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(answer),
		),
	).RunWithContext(ctx)
}

// Confirm implements orchestrator.Confirmer.
func (h *HuhConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	if !h.isTerminal() {
		return false, ErrNotInteractive
	}

	answer := false
	if err := h.ask(ctx, prompt, &answer); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, ErrAborted
		}
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	return answer, nil
}

// Scripted replays fixed answers. It is used by tests and by callers that
// already know the operator's choice.
type Scripted struct {
	Answers []bool
	Prompts []string
}

// Confirm implements orchestrator.Confirmer. Once the answers run out every
// further prompt is declined.
func (s *Scripted) Confirm(ctx context.Context, prompt string) (bool, error) {
	s.Prompts = append(s.Prompts, prompt)
	if len(s.Answers) == 0 {
		return false, nil
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer, nil
}

// AlwaysYes approves every prompt.
type AlwaysYes struct{}

// Confirm implements orchestrator.Confirmer.
func (AlwaysYes) Confirm(context.Context, string) (bool, error) {
	return true, nil
}
