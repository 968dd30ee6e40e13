package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"todo-cli/internal/format"
	"todo-cli/internal/store"
	"todo-cli/internal/tui"
)

type App struct {
	ConfigFile string
	ListsDir   string
	Glyphs     string
	Expand     string
	PrettyJSON bool
	Format     string

	Config store.Config
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "todo",
		Short:        "Terminal outline and todo list editor",
		SilenceUsage: true,
		Long: heredoc.Doc(`
			Edit nested todo lists in the terminal. Lists are TOML files with the
			.todo extension, kept in the lists directory (~/_todo_lists by default)
			or anywhere else.
		`),
		Example: heredoc.Doc(`
			# Pick a list interactively
			todo

			# Open a list directly (shortcut for: todo open groceries.todo)
			todo groceries.todo

			# Start a new list in the current directory
			todo init groceries
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app, "")
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.load(cmd)
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&app.ConfigFile, "config", "", "Config file (default is ~/.todo/config.toml)")
	pf.StringVar(&app.ListsDir, "lists-dir", "", "Directory scanned for lists (default ~/_todo_lists)")
	pf.StringVar(&app.Glyphs, "glyphs", "", "Glyph set: unicode|ascii")
	pf.StringVar(&app.Expand, "expand", "", "Which subtrees are shown: path|all")
	pf.BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	pf.StringVar(&app.Format, "format", envOr("TODO_FORMAT", "json"), "Output format (json|yaml|toml|markdown)")
	// glog's flags (-v, --log_dir, --logtostderr, ...).
	pf.AddGoFlagSet(flag.CommandLine)

	cmd.AddCommand(newOpenCmd(app))
	cmd.AddCommand(newInitCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newImportCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

// load resolves configuration from flags, TODO_* variables and config.toml,
// then points glog at the configured log directory.
func (app *App) load(cmd *cobra.Command) error {
	v := viper.New()
	for key, name := range map[string]string{
		"lists_dir": "lists-dir",
		"glyphs":    "glyphs",
		"expand":    "expand",
	} {
		if err := v.BindPFlag(key, cmd.Root().PersistentFlags().Lookup(name)); err != nil {
			return writeErr(cmd, err)
		}
	}
	cfg, err := store.LoadConfig(v, app.ConfigFile)
	if err != nil {
		return writeErr(cmd, err)
	}
	app.Config = cfg
	setupLogging(cmd, cfg.LogDir)
	glog.V(1).Infof("config: lists_dir=%s glyphs=%s expand=%s", cfg.ListsDir, cfg.Glyphs, cfg.Expand)
	return nil
}

func setupLogging(cmd *cobra.Command, logDir string) {
	if !flag.CommandLine.Parsed() {
		// The values were already set through pflag.
		_ = flag.CommandLine.Parse(nil)
	}
	if logDir == "" || flagChanged(cmd, "log_dir") {
		return
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return
	}
	_ = flag.Set("log_dir", logDir)
}

// flagChanged reports whether a flag, including glog's, was given on the
// command line.
func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flag(name)
	return f != nil && f.Changed
}

func runTUI(cmd *cobra.Command, app *App, path string) error {
	// Errors would otherwise be copied to stderr on top of the screen.
	if !flagChanged(cmd, "stderrthreshold") {
		_ = flag.Set("stderrthreshold", "FATAL")
	}
	recents := openRecents()
	defer recents.Close()

	cwd, err := os.Getwd()
	if err != nil {
		return writeErr(cmd, err)
	}
	err = tui.Run(tui.Options{
		Config:  app.Config,
		Files:   store.Files{},
		Recents: recents,
		Cwd:     cwd,
	}, path)
	if err != nil {
		return writeErr(cmd, explain(err))
	}
	return nil
}

// openRecents opens the recently-opened index. It is optional: on failure
// the returned nil index silently records nothing.
func openRecents() *store.Recents {
	path, err := store.RecentsPath()
	if err != nil {
		glog.Warningf("recent documents: %v", err)
		return nil
	}
	r, err := store.OpenRecents(context.Background(), path)
	if err != nil {
		glog.Warningf("recent documents: %v", err)
		return nil
	}
	return r
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
