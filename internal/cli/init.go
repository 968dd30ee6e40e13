package cli

import (
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"todo-cli/internal/store"
)

func newInitCmd(app *App) *cobra.Command {
	var dir string
	var noOpen bool

	cmd := &cobra.Command{
		Use:   "init <name>",
		Short: "Create a new, empty list and open it",
		Long: heredoc.Doc(`
			Create <dir>/<name>.todo (the current directory by default) and open it
			in the editor. An existing file is never overwritten.
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				wd, err := os.Getwd()
				if err != nil {
					return writeErr(cmd, err)
				}
				dir = wd
			}
			path, err := store.CanonicalPath(dir, args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			doc, err := (store.Files{}).Create(path, store.Stem(path))
			if err != nil {
				return writeErr(cmd, explain(err))
			}
			if noOpen {
				return writeOut(cmd, app, map[string]any{
					"data": map[string]any{
						"name": doc.Name,
						"path": doc.Path,
					},
				})
			}
			return runTUI(cmd, app, doc.Path)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Directory to create the list in (default: current directory)")
	cmd.Flags().BoolVar(&noOpen, "no-open", false, "Only create the file; print its path instead of opening the editor")
	return cmd
}
