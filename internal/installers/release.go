package installers

import (
	"fmt"

	"kfpl/internal/capability"
	"kfpl/internal/utils"
)

const (
	KubectlVersion = "v1.19.2"
	K9sVersion     = "v0.22.1"
	KfctlVersion   = "v1.1.0"

	kfctlBuild = "0-g9a3621e"
	binDir     = "/usr/local/bin"
)

// Kubectl downloads the kubectl release binary.
func Kubectl(r utils.Runner) *Installer {
	url := fmt.Sprintf("https://storage.googleapis.com/kubernetes-release/release/%s/bin/linux/amd64/kubectl", KubectlVersion)
	return New("kubectl", "kubectl", r,
		capability.Exec(r, "Unable to curl the kubectl binary.", utils.Cmd("curl", "-LO", url)),
		capability.Exec(r, "Unable to change executable permissions on the kubectl binary.", utils.Cmd("chmod", "+x", "./kubectl")),
		capability.Exec(r, "Unable to copy the kubectl binary (might need sudo).", utils.Cmd("mv", "./kubectl", binDir+"/kubectl")),
		capability.Exec(r, "Unable to use kubectl after supposed install.", utils.Cmd("kubectl", "version", "--client")),
	)
}

// K9s downloads and unpacks the k9s release tarball.
func K9s(r utils.Runner) *Installer {
	tarball := "k9s_Linux_x86_64.tar.gz"
	url := fmt.Sprintf("https://github.com/derailed/k9s/releases/download/%s/%s", K9sVersion, tarball)
	return New("k9s", "k9s", r, tarballSteps(r, "k9s", url, tarball, "LICENSE", "README.md")...)
}

// Kfctl downloads and unpacks the kfctl release tarball.
func Kfctl(r utils.Runner) *Installer {
	tarball := fmt.Sprintf("kfctl_%s-%s_linux.tar.gz", KfctlVersion, kfctlBuild)
	url := fmt.Sprintf("https://github.com/kubeflow/kfctl/releases/download/%s/%s", KfctlVersion, tarball)
	return New("kfctl", "kfctl", r, tarballSteps(r, "kfctl", url, tarball)...)
}

// tarballSteps fetches url, unpacks the binary, drops the archive and any
// extra files, then moves the binary to /usr/local/bin and runs it.
func tarballSteps(r utils.Runner, binary, url, tarball string, extra ...string) []capability.Step {
	return []capability.Step{
		capability.Exec(r, fmt.Sprintf("Unable to curl the %s tarball.", binary), utils.Cmd("curl", "-LO", url)),
		capability.Exec(r, fmt.Sprintf("Unable to untar the %s tarball.", binary), utils.Cmd("tar", "-xvf", "./"+tarball)),
		capability.Exec(r, fmt.Sprintf("Unable to remove the %s tarball.", binary), utils.Cmd("rm", append([]string{"-f", tarball}, extra...)...)),
		capability.Exec(r, fmt.Sprintf("Unable to change executable permissions on the %s binary.", binary), utils.Cmd("chmod", "+x", "./"+binary)),
		capability.Exec(r, fmt.Sprintf("Unable to copy the %s binary (might need sudo).", binary), utils.Cmd("mv", "./"+binary, binDir+"/"+binary)),
		capability.Exec(r, fmt.Sprintf("Unable to use %s after supposed install.", binary), utils.Cmd(binary, "version")),
	}
}
