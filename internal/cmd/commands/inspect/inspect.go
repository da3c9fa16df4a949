package inspect

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/endpoints-sh/endpoints-cli/internal/cmd/base"
	"github.com/endpoints-sh/endpoints-cli/pkg/endpoints"
)

// recentItems is how many new metadata items the text view shows.
const recentItems = 3

var rule = strings.Repeat("─", 50)

type Command struct {
	*base.Command

	flagFormat string
}

func (c *Command) Synopsis() string {
	return "Show an endpoint's details and recent metadata"
}

func (c *Command) Help() string {
	return `Usage: endpoints inspect <path> [options]

  Shows an endpoint's identity, item counts and its most recent metadata.

  Example:

    $ endpoints inspect /job-tracker/january-2026 -format yaml` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("inspect", flag.ContinueOnError))

	f.StringVar(
		&c.flagFormat, "format", "text",
		"Output format: text, json or yaml",
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
		return c.Usage("Usage: endpoints inspect <path>")
	}

	switch c.flagFormat {
	case "text", "json", "yaml":
	default:
		return c.Usage(fmt.Sprintf("unsupported format %q: use text, json or yaml", c.flagFormat))
	}

	client, err := c.Client()
	if err != nil {
		return c.Fail(err)
	}

	raw, err := client.GetEndpointRaw(c.Context(), f.Arg(0))
	if err != nil {
		return c.Fail(err)
	}

	switch c.flagFormat {
	case "json":
		var out bytes.Buffer
		if err := json.Indent(&out, raw, "", "  "); err != nil {
			return c.Fail(fmt.Errorf("failed to format endpoint: %w", err))
		}
		c.UI.Output(out.String())
	case "yaml":
		out, err := toYAML(raw)
		if err != nil {
			return c.Fail(fmt.Errorf("failed to format endpoint: %w", err))
		}
		c.UI.Output(out)
	default:
		var details endpoints.EndpointDetails
		if err := json.Unmarshal(raw, &details); err != nil {
			return c.Fail(fmt.Errorf("failed to decode response: %w", err))
		}
		c.printText(&details)
	}

	return 0
}

func (c *Command) printText(details *endpoints.EndpointDetails) {
	ep := details.Endpoint
	c.UI.Output("Endpoint Details")
	c.UI.Output(rule)
	c.UI.Output(fmt.Sprintf("Path:     %s", ep.Path))
	c.UI.Output(fmt.Sprintf("Category: %s", ep.Category))
	c.UI.Output(fmt.Sprintf("Slug:     %s", ep.Slug))
	c.UI.Output(fmt.Sprintf("ID:       %d", ep.ID))
	c.UI.Output(rule)
	c.UI.Output(fmt.Sprintf("Total Items: %d", details.TotalItems))
	c.UI.Output(fmt.Sprintf("  Old Metadata: %d", len(details.Metadata.OldMetadata)))
	c.UI.Output(fmt.Sprintf("  New Metadata: %d", len(details.Metadata.NewMetadata)))

	recent := details.Metadata.NewMetadata
	if len(recent) == 0 {
		return
	}
	if len(recent) > recentItems {
		recent = recent[:recentItems]
	}

	c.UI.Output("")
	c.UI.Output("Recent Metadata:")
	for _, item := range recent {
		c.UI.Output("")
		c.printItem(item)
	}
}

func (c *Command) printItem(item endpoints.MetadataItem) {
	c.UI.Output(fmt.Sprintf("  ID: %s", item.ID()))
	c.UI.Output(fmt.Sprintf("  Created: %s", item.CreatedAt()))

	if s, ok := item.AsSimple(); ok {
		data, err := json.MarshalIndent(s.Data, "  ", "  ")
		if err != nil {
			c.Log.Warn("failed to render item data", "id", s.ID, "error", err)
			return
		}
		c.UI.Output("  Data: " + string(data))
		return
	}

	if e, ok := item.AsExtracted(); ok {
		source := "text"
		if e.FilePath != nil {
			source = *e.FilePath
		}
		c.UI.Output(fmt.Sprintf("  Source: %s (%s)", source, e.FileType))
		if e.Summary != "" {
			c.UI.Output(fmt.Sprintf("  Summary: %s", e.Summary))
		}
		for _, entity := range e.Entities {
			if entity.Role != "" {
				c.UI.Output(fmt.Sprintf("  - %s (%s, %s)", entity.Name, entity.Type, entity.Role))
			} else {
				c.UI.Output(fmt.Sprintf("  - %s (%s)", entity.Name, entity.Type))
			}
		}
	}
}

// toYAML converts the server's JSON document to YAML, keeping its keys and
// numeric values as sent.
func toYAML(raw []byte) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var generic interface{}
	if err := dec.Decode(&generic); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}

	return strings.TrimRight(buf.String(), "\n"), nil
}
