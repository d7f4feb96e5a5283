package services

import (
	"context"
	"strings"

	"kfpl/internal/utils"
)

// OutputContains runs c and reports whether its stdout contains needle.
// A non-zero exit is not an error: whatever was printed is still searched.
// Only a command that cannot be run at all fails the probe.
func OutputContains(ctx context.Context, r utils.Runner, c utils.Command, needle string) (bool, error) {
	out, err := r.Output(ctx, c)
	if err != nil && !utils.IsExitError(err) {
		return false, err
	}
	return strings.Contains(out, needle), nil
}
