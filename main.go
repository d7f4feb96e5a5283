package main

import "kfpl/cmd"

// version is set at build time with -ldflags "-X main.version=...".
var version = "1.2.0"

func main() {
	cmd.SetVersion(version)
	cmd.Execute()
}
