package installers

import (
	"kfpl/internal/capability"
	"kfpl/internal/utils"
)

const (
	k3dInstallScriptURL = "https://raw.githubusercontent.com/rancher/k3d/main/install.sh"
	dockerScriptURL     = "https://get.docker.com"
)

// K3d runs the upstream k3d install script.
func K3d(r utils.Runner) *Installer {
	return New("k3d", "k3d", r,
		capability.Exec(r, "Unable to curl the k3d convenience script.", utils.Cmd("curl", "-fsSL", k3dInstallScriptURL, "-o", "k3d-install.sh")),
		capability.Exec(r, "Failed to run the k3d install script.", utils.Cmd("bash", "k3d-install.sh")),
		capability.Exec(r, "Failed to delete the k3d install script.", utils.Cmd("rm", "-f", "k3d-install.sh")),
	)
}

// Docker runs the get.docker.com convenience script. Adding the user to the
// docker group may fail inside a container and is ignored.
func Docker(r utils.Runner) *Installer {
	return New("docker", "docker", r,
		capability.Exec(r, "Unable to curl the docker convenience script.", utils.Cmd("curl", "-fsSL", dockerScriptURL, "-o", "get-docker.sh")),
		capability.Exec(r, "Unable to run the docker install script (might need sudo).", utils.Cmd("sh", "get-docker.sh")),
		capability.Optional(capability.Exec(r, "Unable to add the current user to the docker group.", utils.Cmd("sh", "-c", "usermod -aG docker $USER"))),
		capability.Exec(r, "Failed to delete the docker install script.", utils.Cmd("rm", "-f", "get-docker.sh")),
	)
}
