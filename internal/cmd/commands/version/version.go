package version

import (
	"github.com/endpoints-sh/endpoints-cli/internal/cmd/base"
	"github.com/endpoints-sh/endpoints-cli/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the CLI version"
}

func (c *Command) Help() string {
	return `Usage: endpoints version`
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.Version)
	return 0
}
