package appenditems

import (
	"flag"
	"fmt"

	"github.com/endpoints-sh/endpoints-cli/internal/cmd/base"
	"github.com/endpoints-sh/endpoints-cli/internal/cmd/commands/create"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Append items to an existing endpoint"
}

func (c *Command) Help() string {
	return `Usage: endpoints append <path> <items-json>

  Appends items to the endpoint at path. Items are a JSON array of
  {"data": {...}} objects.

  Example:

    $ endpoints append /job-tracker/january-2026 '[{"data":{"company":"Acme"}}]'`
}

func (c *Command) Flags() *base.FlagSet {
	return base.NewFlagSet(flag.NewFlagSet("append", flag.ContinueOnError))
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if f.NArg() < 2 {
		return c.Usage("Usage: endpoints append <path> <items-json>")
	}

	items, err := create.ParseItems(f.Arg(1))
	if err != nil {
		return c.Fail(err)
	}

	client, err := c.Client()
	if err != nil {
		return c.Fail(err)
	}

	resp, err := client.AppendItems(c.Context(), f.Arg(0), items)
	if err != nil {
		return c.Fail(err)
	}

	c.UI.Output(fmt.Sprintf("✓ Appended to: %s", resp.Endpoint.Path))
	c.UI.Output(fmt.Sprintf("Items added: %d", resp.ItemsAdded))
	c.UI.Output(fmt.Sprintf("Total items: %d", resp.TotalItems))
	return 0
}
