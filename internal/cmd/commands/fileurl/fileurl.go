package fileurl

import (
	"flag"
	"fmt"

	"github.com/pkg/browser"

	"github.com/endpoints-sh/endpoints-cli/internal/cmd/base"
)

type Command struct {
	*base.Command

	flagExpiresIn int
	flagOpen      bool

	// openURL launches the system browser.
	openURL func(url string) error
}

func (c *Command) Synopsis() string {
	return "Print a presigned URL for a stored file"
}

func (c *Command) Help() string {
	return `Usage: endpoints url <key> [options]

  Resolves the file stored under key to a short-lived presigned URL.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("url", flag.ContinueOnError))

	f.IntVar(
		&c.flagExpiresIn, "expires-in", 0,
		"URL lifetime in seconds; the server default is one hour",
	)
	f.BoolVar(
		&c.flagOpen, "open", false,
		"Open the URL in the default browser",
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
		return c.Usage("Usage: endpoints url <key> [-expires-in N] [-open]")
	}
	if c.flagExpiresIn < 0 {
		return c.Usage("-expires-in must not be negative")
	}

	client, err := c.Client()
	if err != nil {
		return c.Fail(err)
	}

	var expiresIn *int
	if c.flagExpiresIn > 0 {
		expiresIn = &c.flagExpiresIn
	}

	resp, err := client.GetFileURL(c.Context(), f.Arg(0), expiresIn)
	if err != nil {
		return c.Fail(err)
	}

	c.UI.Output(resp.URL)
	c.Log.Debug("presigned URL issued", "key", f.Arg(0), "expires_in", resp.ExpiresIn)

	if c.flagOpen {
		open := c.openURL
		if open == nil {
			open = browser.OpenURL
		}
		if err := open(resp.URL); err != nil {
			return c.Fail(fmt.Errorf("failed to open browser: %w", err))
		}
	}

	return 0
}
