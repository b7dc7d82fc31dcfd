// smwallet is a command line Spacemesh wallet.
package main

import (
	"os"

	"github.com/spacemeshos/smwallet/cmd"
	"github.com/spacemeshos/smwallet/node"
)

var (
	version string
	commit  string
	branch  string
)

func main() {
	cmd.Version = version
	cmd.Commit = commit
	cmd.Branch = branch
	if err := node.GetCommand().Execute(); err != nil {
		// cobra already printed the error
		os.Exit(1)
	}
}
