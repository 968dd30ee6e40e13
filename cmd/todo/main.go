package main

import (
	"os"
	"strings"

	"github.com/golang/glog"

	"todo-cli/internal/cli"
	"todo-cli/internal/store"
)

func isListFile(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasSuffix(s, store.Extension) && len(s) > len(store.Extension)
}

// rewriteOpenArgs turns `todo <file>.todo` into `todo open <file>.todo`.
//
// Cobra treats the first non-flag token as a subcommand, so argv is rewritten
// before parsing. Persistent flags may come first (`todo --glyphs ascii
// x.todo`), so the first positional token is searched for, not argv[1].
func rewriteOpenArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--config":    true,
		"--lists-dir": true,
		"--glyphs":    true,
		"--expand":    true,
		"--format":    true,
		"--log_dir":   true,
		"--v":         true,
		"-v":          true,
	}

	insertOpen := func(i int) []string {
		out := make([]string, 0, len(argv)+1)
		out = append(out, argv[:i]...)
		out = append(out, "open")
		out = append(out, argv[i:]...)
		return out
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			// Cobra stops looking for subcommands at "--", so open goes first.
			if i+1 < len(argv) && isListFile(argv[i+1]) {
				return insertOpen(i)
			}
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		}
		if isListFile(a) {
			return insertOpen(i)
		}
		return argv
	}
	return argv
}

func main() {
	os.Args = rewriteOpenArgs(os.Args)

	cmd := cli.NewRootCmd()
	err := cmd.Execute()
	glog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
