// Package base holds the plumbing shared by every endpoints subcommand.
package base

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/endpoints-sh/endpoints-cli/pkg/endpoints"
)

// Command is embedded by each subcommand.
type Command struct {
	UI  cli.Ui
	Log hclog.Logger

	// Fs is where commands read scan inputs and write exports.
	Fs afero.Fs

	// ResultsDir is the default output directory for download and export.
	ResultsDir string

	// Clients hands out the shared API client.
	Clients *endpoints.Accessor
}

// NewCommand returns a Command with an OS filesystem and the default results
// directory.
func NewCommand(ui cli.Ui, log hclog.Logger, clients *endpoints.Accessor) *Command {
	return &Command{
		UI:         ui,
		Log:        log,
		Fs:         afero.NewOsFs(),
		ResultsDir: endpoints.DefaultResultsDir,
		Clients:    clients,
	}
}

// Client returns the shared API client, building it on first use.
func (c *Command) Client() (*endpoints.Client, error) {
	return c.Clients.Client()
}

// Context is the context API calls run under. No deadline is set.
func (c *Command) Context() context.Context {
	return context.Background()
}

// OutputDir returns dir if set, else the configured results directory.
func (c *Command) OutputDir(dir string) string {
	if dir != "" {
		return dir
	}
	return c.ResultsDir
}

// OutputPath joins name onto OutputDir(dir).
func (c *Command) OutputPath(dir, name string) string {
	return filepath.Join(c.OutputDir(dir), name)
}

// Fail reports err as "Error: <message>" and returns exit code 1.
func (c *Command) Fail(err error) int {
	c.UI.Error(fmt.Sprintf("Error: %s", err))
	return 1
}

// Usage reports a usage line and returns exit code 1.
func (c *Command) Usage(usage string) int {
	c.UI.Error(usage)
	return 1
}
