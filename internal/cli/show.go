package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"todo-cli/internal/publish"
	"todo-cli/internal/store"
	"todo-cli/internal/tui"
)

func newShowCmd(app *App) *cobra.Command {
	var noProgress bool

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print a list",
		Long: "Print a list as Markdown, rendered for the terminal when stdout is one.\n" +
			"With --format the document is written as json, yaml, toml or markdown instead.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := (store.Files{}).Load(store.ExpandHome(args[0]))
			if err != nil {
				return writeErr(cmd, explain(err))
			}
			if flagChanged(cmd, "format") {
				return writeOut(cmd, app, doc)
			}

			md := publish.RenderMarkdown(doc, publish.RenderOptions{OmitProgress: noProgress})
			out := cmd.OutOrStdout()
			if width, ok := terminalWidth(out); ok {
				_, err := fmt.Fprintln(out, tui.RenderMarkdown(md, width))
				return err
			}
			_, err = io.WriteString(out, md)
			return err
		},
	}
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "Leave out the progress line")
	return cmd
}

// terminalWidth reports the width of w when it is a terminal.
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}
	return width, true
}
