package installers

import (
	"kfpl/internal/capability"
	"kfpl/internal/utils"
)

func aptUpdate(r utils.Runner) capability.Step {
	return capability.Exec(r, "Unable to update apt-get.", utils.Cmd("apt-get", "update"))
}

// Curl installs curl with apt-get.
func Curl(r utils.Runner) *Installer {
	return New("curl", "curl", r,
		aptUpdate(r),
		capability.Exec(r, "Unable to install curl via apt-get.  You can install curl manually, and try `kfpl init` again.",
			utils.Cmd("apt-get", "-y", "install", "curl")),
		capability.Exec(r, "Unable to verify curl installation.", utils.Cmd("which", "curl")),
	)
}

// Git installs git with apt-get.
func Git(r utils.Runner) *Installer {
	return New("git", "git", r,
		aptUpdate(r),
		capability.Exec(r, "Unable to install git via apt-get.  You can install git manually, and try again.",
			utils.Cmd("apt-get", "-y", "install", "git")),
		capability.Exec(r, "Unable to verify git installation.", utils.Cmd("which", "git")),
	)
}

// Pip3 installs python3 and pip3 with apt-get.
func Pip3(r utils.Runner) *Installer {
	return New("pip3", "pip3", r,
		aptUpdate(r),
		capability.Exec(r, "Unable to install pip3 via apt-get.  You can install python3 and pip3 manually, and try again.",
			utils.Cmd("apt-get", "-y", "install", "python3", "python3-pip")),
		capability.Exec(r, "Unable to verify pip3 installation.", utils.Cmd("pip3", "--version")),
	)
}

// Kfp installs the KFP SDK with pip3 and copies its entry points to
// /usr/local/bin.
func Kfp(r utils.Runner) *Installer {
	return New("kfp", "kfp", r,
		capability.Exec(r, "Unable to install kfp cli.",
			utils.Cmd("pip3", "install", "urllib3==1.24.2", "kfp", "kfp-server-api", "--upgrade", "--user")),
		capability.Exec(r, "Unable to copy the kfp binary.",
			utils.Cmd("sh", "-c", "cp $HOME/.local/bin/kfp /usr/local/bin/kfp")),
		capability.Exec(r, "Unable to copy the dsl-compile binary.",
			utils.Cmd("sh", "-c", "cp $HOME/.local/bin/dsl-compile /usr/local/bin/dsl-compile")),
		capability.Exec(r, "Unable to verify dsl-compile install.", utils.Cmd("which", "dsl-compile")),
		capability.Exec(r, "Unable to verify kfp install.", utils.Cmd("which", "kfp")),
	)
}
