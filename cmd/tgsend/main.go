package main

import (
	"github.com/Dynom/listkit/cli"
	"github.com/Dynom/listkit/cmd/tgsend/commands"
)

// Version contains the app version, the value is changed during compile time to the appropriate Git tag
var Version = "dev"

func main() {
	commands.SetVersion(Version)
	cli.Execute(commands.NewRootCmd())
}
