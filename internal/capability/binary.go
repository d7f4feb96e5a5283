package capability

import (
	"kfpl/internal/utils"
	"kfpl/pkg/logging"
)

// BinaryPresent reports whether the executable name resolves on the search
// path. Inability to check (lookup error, permission problem) is reported
// as "not present" and never surfaces as an error.
func BinaryPresent(r utils.Runner, name string) bool {
	path, err := r.LookPath(name)
	if err != nil {
		logging.Debug("Probe", "%s not found on PATH: %v", name, err)
		return false
	}
	logging.Debug("Probe", "%s resolved to %s", name, path)
	return true
}
