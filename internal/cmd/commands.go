package cmd

import (
	"github.com/mitchellh/cli"

	"github.com/endpoints-sh/endpoints-cli/internal/cmd/base"
	"github.com/endpoints-sh/endpoints-cli/internal/cmd/commands/appenditems"
	"github.com/endpoints-sh/endpoints-cli/internal/cmd/commands/create"
	"github.com/endpoints-sh/endpoints-cli/internal/cmd/commands/deleteendpoint"
	"github.com/endpoints-sh/endpoints-cli/internal/cmd/commands/deleteitem"
	"github.com/endpoints-sh/endpoints-cli/internal/cmd/commands/download"
	"github.com/endpoints-sh/endpoints-cli/internal/cmd/commands/export"
	"github.com/endpoints-sh/endpoints-cli/internal/cmd/commands/fileurl"
	"github.com/endpoints-sh/endpoints-cli/internal/cmd/commands/inspect"
	"github.com/endpoints-sh/endpoints-cli/internal/cmd/commands/overview"
	"github.com/endpoints-sh/endpoints-cli/internal/cmd/commands/scan"
	"github.com/endpoints-sh/endpoints-cli/internal/cmd/commands/stats"
	"github.com/endpoints-sh/endpoints-cli/internal/cmd/commands/version"
)

// noConfigCommands run without API settings.
var noConfigCommands = map[string]bool{
	"version": true,
}

func requiresConfig(name string) bool {
	return !noConfigCommands[name]
}

// initCommands builds the command registry around the shared base command.
func initCommands(b *base.Command) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"overview": func() (cli.Command, error) {
			return &overview.Command{Command: b}, nil
		},
		"inspect": func() (cli.Command, error) {
			return &inspect.Command{Command: b}, nil
		},
		"download": func() (cli.Command, error) {
			return &download.Command{Command: b}, nil
		},
		"export": func() (cli.Command, error) {
			return &export.Command{Command: b}, nil
		},
		"scan": func() (cli.Command, error) {
			return &scan.Command{Command: b}, nil
		},
		"delete": func() (cli.Command, error) {
			return &deleteendpoint.Command{Command: b}, nil
		},
		"delete-item": func() (cli.Command, error) {
			return &deleteitem.Command{Command: b}, nil
		},
		"create": func() (cli.Command, error) {
			return &create.Command{Command: b}, nil
		},
		"append": func() (cli.Command, error) {
			return &appenditems.Command{Command: b}, nil
		},
		"stats": func() (cli.Command, error) {
			return &stats.Command{Command: b}, nil
		},
		"url": func() (cli.Command, error) {
			return &fileurl.Command{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}
}
