package capability

import (
	"context"

	"kfpl/internal/utils"
	"kfpl/pkg/logging"
)

// Step is one ordered sub-step of an action.
type Step struct {
	// Description is reported as the failure context when the step fails.
	Description string
	Do          func(ctx context.Context) error
	// IgnoreFailure lets the sequence continue when this step fails.
	IgnoreFailure bool
}

// Exec returns a Step running c through r.
func Exec(r utils.Runner, description string, c utils.Command) Step {
	return Step{
		Description: description,
		Do: func(ctx context.Context) error {
			return r.Run(ctx, c)
		},
	}
}

// Func returns a Step running fn.
func Func(description string, fn func(ctx context.Context) error) Step {
	return Step{Description: description, Do: fn}
}

// Optional marks s so that its failure does not abort the sequence.
func Optional(s Step) Step {
	s.IgnoreFailure = true
	return s
}

// RunSteps executes steps in order and stops at the first failure, which is
// returned as a *StepFailure. Steps already executed are not undone.
func RunSteps(ctx context.Context, subsystem string, steps ...Step) error {
	for i, s := range steps {
		logging.Debug(subsystem, "Step %d/%d: %s", i+1, len(steps), s.Description)
		if err := s.Do(ctx); err != nil {
			if s.IgnoreFailure {
				logging.Warn(subsystem, "Ignoring failed step %q: %v", s.Description, err)
				continue
			}
			logging.Error(subsystem, err, "Step %d/%d failed: %s", i+1, len(steps), s.Description)
			return &StepFailure{Step: s.Description, Err: err}
		}
	}
	return nil
}
