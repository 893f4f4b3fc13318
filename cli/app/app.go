package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/omni-box/omnibox-go/cli/derive"
	"github.com/omni-box/omnibox-go/cli/signature"
	"github.com/omni-box/omnibox-go/cli/signer"
	"github.com/omni-box/omnibox-go/pkg/config"
	"github.com/urfave/cli"
)

func versionPrinter(c *cli.Context) {
	_, _ = fmt.Fprintf(c.App.Writer, "OmniBox\nVersion: %s\nGoVersion: %s\n",
		config.Version,
		runtime.Version(),
	)
}

// New creates an omnibox instance of [cli.App] with all commands included.
func New() *cli.App {
	cli.VersionPrinter = versionPrinter
	ctl := cli.NewApp()
	ctl.Name = "omnibox"
	ctl.Version = config.Version
	ctl.Usage = "Chain signatures toolkit: derived keys, addresses and MPC signer access"
	ctl.ErrWriter = os.Stdout

	ctl.Commands = append(ctl.Commands, derive.NewCommands()...)
	ctl.Commands = append(ctl.Commands, signature.NewCommands()...)
	ctl.Commands = append(ctl.Commands, signer.NewCommands()...)
	return ctl
}
