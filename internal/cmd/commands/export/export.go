package export

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/endpoints-sh/endpoints-cli/internal/cmd/base"
	"github.com/endpoints-sh/endpoints-cli/pkg/endpoints"
)

type Command struct {
	*base.Command

	flagOutputDir string
}

func (c *Command) Synopsis() string {
	return "Export an endpoint's details as JSON"
}

func (c *Command) Help() string {
	return `Usage: endpoints export <path> [options]

  Writes the endpoint's full details to <output-dir>/<category>-<slug>.json.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("export", flag.ContinueOnError))

	f.StringVar(
		&c.flagOutputDir, "output-dir", "",
		"[ENDPOINTS_RESULTS_DIR] Directory to write the export to",
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
		return c.Usage("Usage: endpoints export <path>")
	}

	client, err := c.Client()
	if err != nil {
		return c.Fail(err)
	}

	raw, err := client.GetEndpointRaw(c.Context(), f.Arg(0))
	if err != nil {
		return c.Fail(err)
	}

	var details endpoints.EndpointDetails
	if err := json.Unmarshal(raw, &details); err != nil {
		return c.Fail(fmt.Errorf("failed to decode response: %w", err))
	}

	// The file holds the server's document as sent, only reindented.
	var data bytes.Buffer
	if err := json.Indent(&data, raw, "", "  "); err != nil {
		return c.Fail(fmt.Errorf("failed to format endpoint: %w", err))
	}
	data.WriteByte('\n')

	name := fmt.Sprintf("%s-%s.json", details.Endpoint.Category, details.Endpoint.Slug)
	outPath := c.OutputPath(c.flagOutputDir, name)

	if err := c.Fs.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return c.Fail(fmt.Errorf("failed to create output directory: %w", err))
	}
	if err := afero.WriteFile(c.Fs, outPath, data.Bytes(), 0o644); err != nil {
		return c.Fail(fmt.Errorf("failed to write %s: %w", outPath, err))
	}

	c.Log.Debug("endpoint exported", "path", details.Endpoint.Path, "file", outPath)
	c.UI.Output(fmt.Sprintf("Exported to: %s", outPath))
	return 0
}
