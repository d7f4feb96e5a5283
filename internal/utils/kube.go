package utils

import (
	"fmt"
	"os"
	"strings"

	"k8s.io/client-go/tools/clientcmd"
)

// DefaultKubeconfigPath returns the kubeconfig file k3d writes the cluster
// credentials into: the first entry of $KUBECONFIG if set, ~/.kube/config
// otherwise.
func DefaultKubeconfigPath() string {
	pathOptions := clientcmd.NewDefaultPathOptions()
	if pathOptions.IsExplicitFile() {
		return pathOptions.GetExplicitFile()
	}
	return pathOptions.GetDefaultFilename()
}

// ReplaceInFile substitutes every occurrence of old with new in the file at
// path, keeping its permissions. It returns the number of replacements.
// The file is treated as plain text: nothing is parsed.
func ReplaceInFile(path, old, new string) (int, error) {
	if old == "" {
		return 0, fmt.Errorf("refusing to replace an empty string in %s", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}

	content := string(data)
	n := strings.Count(content, old)
	if n == 0 {
		return 0, nil
	}

	if err := os.WriteFile(path, []byte(strings.ReplaceAll(content, old, new)), info.Mode().Perm()); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return n, nil
}
