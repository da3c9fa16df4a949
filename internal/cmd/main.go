package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/endpoints-sh/endpoints-cli/internal/cmd/base"
	"github.com/endpoints-sh/endpoints-cli/internal/config"
	"github.com/endpoints-sh/endpoints-cli/internal/version"
	"github.com/endpoints-sh/endpoints-cli/pkg/endpoints"
)

// Main runs the CLI with the given arguments and returns the exit code.
func Main(args []string) int {
	ui := &cli.BasicUi{
		Reader:      bufio.NewReader(os.Stdin),
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	return Run(args, &Env{
		UI:     ui,
		Lookup: os.LookupEnv,
		Fs:     afero.NewOsFs(),
	})
}

// Env is everything Run takes from the outside world.
type Env struct {
	UI     cli.Ui
	Lookup config.LookupFunc
	Fs     afero.Fs

	// Logger overrides the logger built from settings.
	Logger hclog.Logger
}

// Run dispatches args against env and returns the exit code.
func Run(args []string, env *Env) int {
	cliName := filepath.Base(args[0])
	ui := env.UI

	if len(args) == 2 &&
		(args[1] == "-version" ||
			args[1] == "--version" ||
			args[1] == "-v") {
		args = []string{args[0], "version"}
	}

	settings, settingsErr := config.Load(env.Lookup)
	if settings == nil {
		settings = &config.Settings{
			ResultsDir: config.DefaultResultsDir,
			LogLevel:   config.DefaultLogLevel,
		}
	}

	log := env.Logger
	if log == nil {
		log = hclog.New(&hclog.LoggerOptions{
			Name:   cliName,
			Output: os.Stderr,
			Level:  hclog.LevelFromString(settings.LogLevel),
		})
	}

	clients := endpoints.NewAccessor(func() (*endpoints.Client, error) {
		return endpoints.NewClient(&endpoints.Config{
			BaseURL: settings.APIURL,
			APIKey:  settings.APIKey,
			Logger:  log,
			Fs:      env.Fs,
		})
	})

	b := base.NewCommand(ui, log, clients)
	b.Fs = env.Fs
	b.ResultsDir = settings.ResultsDir

	commands := initCommands(b)

	// Anything that is not a known command gets the help listing.
	if len(args) < 2 || !isCommand(commands, args[1]) {
		ui.Output(helpFunc(cliName)(commands))
		return 0
	}

	if requiresConfig(args[1]) && !wantsHelp(args[2:]) {
		if settingsErr != nil {
			log.Debug("configuration rejected", "error", settingsErr)
			return configError(ui, settingsErr)
		}
	}

	c := &cli.CLI{
		Name:        cliName,
		Args:        args[1:],
		Version:     version.Version,
		Commands:    commands,
		HelpFunc:    helpFunc(cliName),
		HelpWriter:  &cli.UiWriter{Ui: ui},
		ErrorWriter: &cli.UiWriter{Ui: ui},
	}

	exitCode, err := c.Run()
	if err != nil {
		ui.Error(fmt.Sprintf("Error: %s", err))
		return 1
	}

	return exitCode
}

func configError(ui cli.Ui, err error) int {
	ui.Error("Configuration Error:")

	var merr *multierror.Error
	if errors.As(err, &merr) {
		for _, e := range merr.Errors {
			ui.Error("- " + e.Error())
		}
		return 1
	}

	ui.Error("- " + err.Error())
	return 1
}

// helpFunc lists the commands and notes where configuration comes from.
func helpFunc(cliName string) cli.HelpFunc {
	basic := cli.BasicHelpFunc(cliName)
	return func(commands map[string]cli.CommandFactory) string {
		return basic(commands) + fmt.Sprintf(`

Configuration is read from %s and %s, optionally layered over
the HCL file named by %s. It is checked only when a command
that calls the API runs; help and version never need it.`,
			config.EnvAPIURL, config.EnvAPIKey, config.EnvConfigFile)
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--":
			return false
		case "-h", "-help", "--help":
			return true
		}
	}
	return false
}

func isCommand(commands map[string]cli.CommandFactory, name string) bool {
	_, ok := commands[name]
	return ok
}
