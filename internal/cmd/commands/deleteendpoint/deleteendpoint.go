package deleteendpoint

import (
	"flag"
	"fmt"

	"github.com/endpoints-sh/endpoints-cli/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Delete an endpoint and its stored files"
}

func (c *Command) Help() string {
	return `Usage: endpoints delete <path>

  Deletes the endpoint at path together with every file stored for it, and
  prints the outcome for each file. A file that could not be removed is
  reported but does not fail the command.`
}

func (c *Command) Flags() *base.FlagSet {
	return base.NewFlagSet(flag.NewFlagSet("delete", flag.ContinueOnError))
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if f.NArg() < 1 {
		return c.Usage("Usage: endpoints delete <path>")
	}
	path := f.Arg(0)

	client, err := c.Client()
	if err != nil {
		return c.Fail(err)
	}

	resp, err := client.DeleteEndpoint(c.Context(), path)
	if err != nil {
		return c.Fail(err)
	}

	c.UI.Output(fmt.Sprintf("Deleted endpoint: %s", path))
	c.UI.Output(fmt.Sprintf("Files deleted: %d", resp.DeletedFiles))
	for _, r := range resp.FileResults {
		if r.Success {
			c.UI.Output("  ✓ " + r.Key)
			continue
		}
		c.UI.Warn(fmt.Sprintf("  ✗ %s: %s", r.Key, r.Error))
	}

	return 0
}
