package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"todo-cli/internal/store"
)

func newListCmd(app *App) *cobra.Command {
	var noRecent bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the lists the picker would offer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return writeErr(cmd, err)
			}
			found, err := store.Discover(app.Config.ListsDir, cwd)
			if err != nil {
				return writeErr(cmd, err)
			}
			var recent []store.RecentDocument
			if !noRecent {
				r := openRecents()
				defer r.Close()
				recent, err = r.List(context.Background(), app.Config.RecentLimit)
				if err != nil {
					return writeErr(cmd, err)
				}
			}
			cands := store.MergeRecent(recent, found)
			if cands == nil {
				cands = []store.Candidate{}
			}
			return writeOut(cmd, app, map[string]any{"data": cands})
		},
	}
	cmd.Flags().BoolVar(&noRecent, "no-recent", false, "Only list files found on disk")
	return cmd
}
