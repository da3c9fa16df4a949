package deleteitem

import (
	"flag"
	"fmt"

	"github.com/endpoints-sh/endpoints-cli/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Delete a single item from an endpoint"
}

func (c *Command) Help() string {
	return `Usage: endpoints delete-item <item-id> <path>

  Deletes one item, and its stored file if it has one, from the endpoint at
  path. Removing the last item also removes the endpoint.`
}

func (c *Command) Flags() *base.FlagSet {
	return base.NewFlagSet(flag.NewFlagSet("delete-item", flag.ContinueOnError))
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if f.NArg() < 2 {
		return c.Usage("Usage: endpoints delete-item <item-id> <path>")
	}

	client, err := c.Client()
	if err != nil {
		return c.Fail(err)
	}

	resp, err := client.DeleteItem(c.Context(), f.Arg(0), f.Arg(1))
	if err != nil {
		return c.Fail(err)
	}

	c.UI.Output(fmt.Sprintf("Deleted item: %s", resp.Deleted.ItemID))
	if resp.Deleted.HadFile {
		if resp.Deleted.FileDeleted {
			c.UI.Output("  ✓ stored file removed")
		} else {
			c.UI.Warn("  ✗ stored file could not be removed")
		}
	}
	c.UI.Output(fmt.Sprintf("Remaining items: %d", resp.RemainingItems))
	if resp.EndpointDeleted {
		c.UI.Output("Endpoint removed (no items left)")
	}

	return 0
}
