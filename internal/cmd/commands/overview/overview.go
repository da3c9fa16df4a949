package overview

import (
	"flag"
	"fmt"
	"strings"

	"github.com/endpoints-sh/endpoints-cli/internal/cmd/base"
)

var rule = strings.Repeat("─", 50)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "List all endpoints grouped by category"
}

func (c *Command) Help() string {
	return `Usage: endpoints overview

  Lists every endpoint as a tree under its category, followed by totals.`
}

func (c *Command) Flags() *base.FlagSet {
	return base.NewFlagSet(flag.NewFlagSet("overview", flag.ContinueOnError))
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	client, err := c.Client()
	if err != nil {
		return c.Fail(err)
	}

	categories, err := client.ListEndpoints(c.Context())
	if err != nil {
		return c.Fail(err)
	}

	c.UI.Output("Endpoints Overview")
	c.UI.Output(rule)

	total := 0
	for _, category := range categories {
		c.UI.Output("")
		c.UI.Output(category.Name + "/")
		for _, ep := range category.Endpoints {
			c.UI.Output("  └─ " + ep.Slug)
			total++
		}
	}

	c.UI.Output("")
	c.UI.Output(rule)
	c.UI.Output(fmt.Sprintf("Total: %d categories, %d endpoints", len(categories), total))

	return 0
}
