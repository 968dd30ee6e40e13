package publish

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"todo-cli/internal/model"
)

type WriteOptions struct {
	Overwrite bool
	Render    RenderOptions
}

type WriteResult struct {
	Written []string `json:"written" yaml:"written"`
}

// WriteDocument renders doc as Markdown into toPath. A directory target gets
// "<document file stem>.md" inside it.
func WriteDocument(doc *model.Document, toPath string, opt WriteOptions) (WriteResult, error) {
	if doc == nil {
		return WriteResult{}, errors.New("missing document")
	}
	toPath = strings.TrimSpace(toPath)
	if toPath == "" {
		return WriteResult{}, errors.New("missing --to")
	}
	toPath = filepath.Clean(toPath)
	if st, err := os.Stat(toPath); err == nil && st.IsDir() {
		stem := strings.TrimSuffix(filepath.Base(doc.Path), filepath.Ext(doc.Path))
		if stem == "" || stem == "." {
			stem = doc.Name
		}
		toPath = filepath.Join(toPath, stem+".md")
	}
	if err := os.MkdirAll(filepath.Dir(toPath), 0o755); err != nil {
		return WriteResult{}, err
	}
	md := RenderMarkdown(doc, opt.Render)
	if err := writeFile(toPath, []byte(md), opt.Overwrite); err != nil {
		return WriteResult{}, err
	}
	return WriteResult{Written: []string{toPath}}, nil
}

func writeFile(path string, b []byte, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.New("file exists (use --overwrite): " + path)
		}
	}
	return os.WriteFile(path, b, 0o644)
}
