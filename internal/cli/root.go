package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/liststore"
)

// App carries what every subcommand needs once PersistentPreRunE has run.
type App struct {
	opt Options

	configFile string

	cfg     *config.Config
	logger  *log.Logger
	store   *liststore.Store
	closers []io.Closer
}

func NewRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "todolist",
		Short:         "An ordered to-do list (TUI + scriptable commands)",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive TUI
  todolist

  # Scriptable commands
  todolist add "Buy milk"
  todolist ls
  todolist mv 3 1
  todolist edit id-0 "Buy oat milk"
  todolist rm id-0
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		return app.setup(cmd)
	}
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return usageError{msg: err.Error()}
	})

	pf := cmd.PersistentFlags()
	pf.StringVar(&app.configFile, "config", "", "config file (TOML)")
	pf.String("backend", "", "storage backend: file, sqlite, redis or memory")
	pf.String("data-dir", "", "directory for the file and sqlite backends")
	pf.String("key", "", "storage key the list lives under")
	pf.String("id-scheme", "", "id scheme for new items: seq or uuid")
	pf.String("theme", "", "theme: classic, neon or mono")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-file", "", "append logs to this file")

	cmd.AddCommand(
		newAddCmd(app),
		newListCmd(app),
		newRemoveCmd(app),
		newMoveCmd(app),
		newEditCmd(app),
		newVersionCmd(),
	)
	return cmd
}

// changed returns the flag's value when it was given on the command line.
func changed(cmd *cobra.Command, name string) *string {
	f := cmd.Flags().Lookup(name)
	if f == nil {
		f = cmd.InheritedFlags().Lookup(name)
	}
	if f == nil || !f.Changed {
		return nil
	}
	v := f.Value.String()
	return &v
}

func overridesFrom(cmd *cobra.Command) config.Overrides {
	return config.Overrides{
		Backend:  changed(cmd, "backend"),
		DataDir:  changed(cmd, "data-dir"),
		Key:      changed(cmd, "key"),
		IDScheme: changed(cmd, "id-scheme"),
		Theme:    changed(cmd, "theme"),
		LogLevel: changed(cmd, "log-level"),
		LogFile:  changed(cmd, "log-file"),
	}
}
