package scan

import (
	"flag"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"

	"github.com/endpoints-sh/endpoints-cli/internal/cmd/base"
	"github.com/endpoints-sh/endpoints-cli/pkg/endpoints"
)

const usage = `Usage: endpoints scan <prompt> (--text <text> | --file <path>[,<path>...]) [--target <endpoint>]`

type Command struct {
	*base.Command

	flagText   string
	flagFiles  []string
	flagTarget string
}

func (c *Command) Synopsis() string {
	return "Extract structured records from text or files with AI"
}

func (c *Command) Help() string {
	return usage + `

  Sends text or one or more files to the extraction service with a prompt
  describing what to extract. The extracted records are stored in a new
  endpoint, or appended to an existing one with --target. All files are
  sent in a single request.

  Examples:

    $ endpoints scan "Extract company names" --text "Acme Corp hired Jane"
    $ endpoints scan "Extract totals" --file a.pdf,b.pdf --target /receipts/2026-q1` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("scan", flag.ContinueOnError))

	c.flagFiles = nil

	f.StringVar(
		&c.flagText, "text", "",
		"Text to extract from",
	)
	f.StringSliceVar(
		&c.flagFiles, "file",
		"File to extract from; repeatable or comma-separated",
	)
	f.StringVar(
		&c.flagTarget, "target", "",
		"Existing endpoint path to append results to",
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
		return c.Usage(usage)
	}
	prompt := f.Arg(0)

	if (c.flagText == "") == (len(c.flagFiles) == 0) {
		return c.Usage(usage)
	}

	client, err := c.Client()
	if err != nil {
		return c.Fail(err)
	}

	opts := endpoints.ScanOptions{TargetEndpoint: c.flagTarget}

	var resp *endpoints.ScanResponse
	if c.flagText != "" {
		resp, err = client.ScanText(c.Context(), prompt, c.flagText, opts)
	} else {
		resp, err = c.scanFiles(client, prompt, opts)
	}
	if err != nil {
		return c.Fail(err)
	}

	c.UI.Output("✓ Scan complete")
	c.UI.Output(fmt.Sprintf("Endpoint:      %s", resp.Endpoint.Path))
	c.UI.Output(fmt.Sprintf("Entries added: %d", resp.EntriesAdded))
	c.UI.Output(fmt.Sprintf("Total entries: %d", resp.TotalEntries))
	return 0
}

func (c *Command) scanFiles(client *endpoints.Client, prompt string, opts endpoints.ScanOptions) (*endpoints.ScanResponse, error) {
	uploads := make([]endpoints.FileUpload, 0, len(c.flagFiles))
	opened := make([]afero.File, 0, len(c.flagFiles))
	defer func() {
		for _, fh := range opened {
			fh.Close()
		}
	}()

	// Report every unreadable file at once.
	var result *multierror.Error
	for _, name := range c.flagFiles {
		fh, err := c.Fs.Open(name)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("failed to open %s: %w", name, err))
			continue
		}
		opened = append(opened, fh)
		uploads = append(uploads, endpoints.FileUpload{
			Name:    filepath.Base(name),
			Content: fh,
		})
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	c.Log.Debug("scanning files", "count", len(uploads), "target", opts.TargetEndpoint)
	return client.ScanFiles(c.Context(), prompt, uploads, opts)
}
