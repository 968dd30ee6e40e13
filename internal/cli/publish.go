package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"todo-cli/internal/publish"
	"todo-cli/internal/store"
)

func newExportCmd(app *App) *cobra.Command {
	var toPath string
	var overwrite bool
	var noProgress bool

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write a list as a Markdown task list",
		Example: heredoc.Doc(`
			todo export groceries.todo --to groceries.md
			todo export groceries.todo --to ./notes/
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toPath = strings.TrimSpace(toPath)
			if toPath == "" {
				return writeErr(cmd, errors.New("missing --to"))
			}
			doc, err := (store.Files{}).Load(store.ExpandHome(args[0]))
			if err != nil {
				return writeErr(cmd, explain(err))
			}
			res, err := publish.WriteDocument(doc, store.ExpandHome(toPath), publish.WriteOptions{
				Overwrite: overwrite,
				Render:    publish.RenderOptions{OmitProgress: noProgress},
			})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": res})
		},
	}
	cmd.Flags().StringVar(&toPath, "to", "", "Output file, or a directory to write <list>.md into")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing output file")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "Leave out the progress line")
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	var name string
	var dir string
	var force bool

	cmd := &cobra.Command{
		Use:   "import <markdown-file>",
		Short: "Create a list from the bullet and task lists of a Markdown file",
		Long: heredoc.Doc(`
			Nested bullets become children and "- [x]" items are ticked. The list is
			named by --name, else by the first level-1 heading, else by the file name,
			and written to <dir>/<name>.todo.
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := store.ExpandHome(args[0])
			b, err := os.ReadFile(src)
			if err != nil {
				return writeErr(cmd, err)
			}
			doc := publish.ImportMarkdown(b, strings.TrimSpace(name))
			if doc.Name == "" {
				doc.Name = store.Stem(src)
			}
			if dir == "" {
				if dir, err = os.Getwd(); err != nil {
					return writeErr(cmd, err)
				}
			}
			path, err := store.CanonicalPath(dir, fileName(doc.Name))
			if err != nil {
				return writeErr(cmd, err)
			}
			if _, err := os.Stat(path); err == nil && !force {
				return writeErr(cmd, overwriteError{path: path})
			}
			doc.Path = path
			if err := (store.Files{}).Save(doc); err != nil {
				return writeErr(cmd, err)
			}
			glog.Infof("imported %s into %s (%d items)", src, path, len(doc.Items))
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"name":  doc.Name,
					"path":  doc.Path,
					"items": len(doc.Items),
				},
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "List name")
	cmd.Flags().StringVar(&dir, "dir", "", "Directory to write the list to (default: current directory)")
	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing list")
	return cmd
}

// fileName makes a list name usable as a file name.
func fileName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.Map(func(r rune) rune {
		if r == filepath.Separator || r == '/' {
			return '-'
		}
		return r
	}, name)
	return name
}
