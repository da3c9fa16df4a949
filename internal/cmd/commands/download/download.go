package download

import (
	"flag"
	"fmt"
	"path"

	"github.com/endpoints-sh/endpoints-cli/internal/cmd/base"
)

type Command struct {
	*base.Command

	flagOutputDir string
}

func (c *Command) Synopsis() string {
	return "Download a stored file by key"
}

func (c *Command) Help() string {
	return `Usage: endpoints download <key> [options]

  Downloads the file stored under key (for example "123/job-tracker/file.pdf")
  into the output directory, keeping its base name.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("download", flag.ContinueOnError))

	f.StringVar(
		&c.flagOutputDir, "output-dir", "",
		"[ENDPOINTS_RESULTS_DIR] Directory to save the file in",
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
		return c.Usage("Usage: endpoints download <key>")
	}
	key := f.Arg(0)

	client, err := c.Client()
	if err != nil {
		return c.Fail(err)
	}

	c.UI.Output(fmt.Sprintf("Downloading: %s", key))

	saved, err := client.DownloadFile(c.Context(), key, c.OutputPath(c.flagOutputDir, path.Base(key)))
	if err != nil {
		return c.Fail(err)
	}

	c.UI.Output(fmt.Sprintf("✓ Saved to: %s", saved))
	return 0
}
