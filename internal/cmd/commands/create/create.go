package create

import (
	"encoding/json"
	"flag"
	"fmt"

	"github.com/endpoints-sh/endpoints-cli/internal/cmd/base"
	"github.com/endpoints-sh/endpoints-cli/pkg/endpoints"
)

type Command struct {
	*base.Command

	flagItems string
}

func (c *Command) Synopsis() string {
	return "Create an endpoint, optionally with initial items"
}

func (c *Command) Help() string {
	return `Usage: endpoints create <path> [options]

  Creates an endpoint at path. Items are a JSON array of {"data": {...}}
  objects.

  Example:

    $ endpoints create /projects/q1-2026 --items '[{"data":{"name":"kickoff"}}]'` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("create", flag.ContinueOnError))

	f.StringVar(
		&c.flagItems, "items", "",
		"Initial items as a JSON array",
	)

	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if f.NArg() < 1 {
		return c.Usage("Usage: endpoints create <path> [--items JSON]")
	}

	var opts endpoints.CreateEndpointOptions
	if c.flagItems != "" {
		items, err := ParseItems(c.flagItems)
		if err != nil {
			return c.Fail(err)
		}
		opts.Items = items
	}

	client, err := c.Client()
	if err != nil {
		return c.Fail(err)
	}

	resp, err := client.CreateEndpoint(c.Context(), f.Arg(0), opts)
	if err != nil {
		return c.Fail(err)
	}

	c.UI.Output(fmt.Sprintf("✓ Created endpoint: %s (id %d)", resp.Endpoint.Path, resp.Endpoint.ID))
	c.UI.Output(fmt.Sprintf("Items added: %d", resp.ItemsAdded))
	return 0
}

// ParseItems decodes a JSON array of items as accepted by create and append.
func ParseItems(s string) ([]endpoints.Item, error) {
	var items []endpoints.Item
	if err := json.Unmarshal([]byte(s), &items); err != nil {
		return nil, fmt.Errorf("invalid items JSON: %w", err)
	}
	return items, nil
}
