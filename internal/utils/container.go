package utils

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// DefaultCgroupPath is the control-group membership file of the init
// process. Inside a docker container its entries name docker scopes.
const DefaultCgroupPath = "/proc/1/cgroup"

// InContainer reports whether the current process runs inside a docker
// container, judged by the cgroup membership listed in cgroupPath. A
// missing file (non-Linux hosts) means "not in a container".
func InContainer(cgroupPath string) (bool, error) {
	if cgroupPath == "" {
		cgroupPath = DefaultCgroupPath
	}
	data, err := os.ReadFile(cgroupPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read cgroup membership from %s: %w", cgroupPath, err)
	}
	return strings.Contains(string(data), "docker"), nil
}
